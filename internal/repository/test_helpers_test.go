package repository_test

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/callbridge/callbridge/internal/models"
)

func ptr[T any](v T) *T {
	return &v
}

func insertTestConversation(db *sqlx.DB, id string, status models.ConversationStatus, authority models.Authority, armToken int64) error {
	query := `
		INSERT INTO conversations (id, tenant_id, provider_call_id, customer_number, business_number,
		                           authority, status, arm_token)
		VALUES ($1, 'tenant-1', 'call-' || $1, '+12065550100', '+12065550199', $2, $3, $4)
	`
	_, err := db.Exec(query, id, authority, status, armToken)
	return err
}

func setConversationActivity(db *sqlx.DB, id string, lastMessageAt time.Time) error {
	_, err := db.Exec("UPDATE conversations SET last_message_at = $2 WHERE id = $1", id, lastMessageAt)
	return err
}

func insertTestCall(db *sqlx.DB, providerCallID string, status models.CallStatus, durationSeconds int, missedSignaled bool) error {
	query := `
		INSERT INTO calls (provider_call_id, tenant_id, customer_number, business_number, status,
		                   started_at, duration_seconds, missed_signaled)
		VALUES ($1, 'tenant-1', '+12065550100', '+12065550199', $2, NOW(), $3, $4)
	`
	_, err := db.Exec(query, providerCallID, status, durationSeconds, missedSignaled)
	return err
}

func insertTestMessage(db *sqlx.DB, conversationID string, direction models.MessageDirection, sender models.MessageSender, body string, sentAt time.Time) error {
	query := `
		INSERT INTO messages (conversation_id, direction, sender, body, delivery_status, sent_at)
		VALUES ($1, $2, $3, $4, 'sent', $5)
	`
	_, err := db.Exec(query, conversationID, direction, sender, body, sentAt)
	return err
}
