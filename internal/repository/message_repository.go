package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/callbridge/callbridge/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Append inserts a transcript entry and fills in the generated id and seq.
func (r *messageRepository) Append(msg *models.Message) error {
	query := `
		INSERT INTO messages (conversation_id, direction, sender, body, provider_message_id, delivery_status, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, seq
	`

	var providerID sql.NullString
	if msg.ProviderMessageID.Valid {
		providerID = msg.ProviderMessageID
	}

	row := r.db.QueryRow(query, msg.ConversationID, msg.Direction, msg.Sender, msg.Body,
		providerID, msg.DeliveryStatus, msg.SentAt, time.Now())
	if err := row.Scan(&msg.ID, &msg.Seq); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// ListByConversation returns the transcript ordered by sent time with the
// insertion sequence as tie-break.
func (r *messageRepository) ListByConversation(conversationID string) ([]*models.Message, error) {
	query := `
		SELECT id, conversation_id, direction, sender, body, provider_message_id, delivery_status, sent_at, seq, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY sent_at ASC, seq ASC
	`

	var messages []*models.Message
	err := r.db.Select(&messages, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// UpdateDelivery stamps the dispatch outcome on a message.
func (r *messageRepository) UpdateDelivery(id int64, status models.DeliveryStatus, providerMessageID *string) error {
	query := `
		UPDATE messages
		SET delivery_status = $2,
		    provider_message_id = $3
		WHERE id = $1
	`

	var providerID sql.NullString
	if providerMessageID != nil {
		providerID = sql.NullString{String: *providerMessageID, Valid: true}
	}

	_, err := r.db.Exec(query, id, status, providerID)
	if err != nil {
		return fmt.Errorf("failed to update message delivery: %w", err)
	}

	return nil
}
