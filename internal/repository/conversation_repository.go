package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/callbridge/callbridge/internal/models"
)

// ErrConversationNotFound is returned when no conversation matches the lookup.
var ErrConversationNotFound = errors.New("conversation not found")

const conversationColumns = `
	id, tenant_id, provider_call_id, customer_number, business_number, authority, status,
	arm_token, emergency, last_message_at, last_human_at, message_count, automation_count,
	human_count, outcome, created_at, updated_at
`

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

func (r *conversationRepository) Create(conv *models.Conversation) error {
	query := `
		INSERT INTO conversations (id, tenant_id, provider_call_id, customer_number, business_number,
		                           authority, status, arm_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $8)
	`

	now := time.Now()
	conv.ArmToken = 0
	conv.CreatedAt = now
	conv.UpdatedAt = now

	_, err := r.db.Exec(query, conv.ID, conv.TenantID, conv.ProviderCallID, conv.CustomerNumber,
		conv.BusinessNumber, conv.Authority, conv.Status, now)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	return nil
}

func (r *conversationRepository) GetByID(id string) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1`

	var conv models.Conversation
	err := r.db.Get(&conv, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return &conv, nil
}

func (r *conversationRepository) GetByProviderCallID(providerCallID string) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE provider_call_id = $1`

	var conv models.Conversation
	err := r.db.Get(&conv, query, providerCallID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation by call: %w", err)
	}

	return &conv, nil
}

func (r *conversationRepository) FindLatestByNumbers(customerNumber, businessNumber string) (*models.Conversation, error) {
	query := `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE customer_number = $1 AND business_number = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var conv models.Conversation
	err := r.db.Get(&conv, query, customerNumber, businessNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation by pair: %w", err)
	}

	return &conv, nil
}

// BumpArmToken issues a fresh arm token. Any timer holding an older token is
// invalidated from this point on.
func (r *conversationRepository) BumpArmToken(id string) (int64, error) {
	query := `
		UPDATE conversations
		SET arm_token = arm_token + 1,
		    updated_at = $2
		WHERE id = $1 AND status = 'active'
		RETURNING arm_token
	`

	var token int64
	err := r.db.Get(&token, query, id, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrConversationNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to bump arm token: %w", err)
	}

	return token, nil
}

// PromoteAutomation is the timer-fire side of the race. The token equality and
// the authority guard make a stale or superseded fire a no-op.
func (r *conversationRepository) PromoteAutomation(id string, token int64) (bool, error) {
	query := `
		UPDATE conversations
		SET authority = 'automation',
		    updated_at = $3
		WHERE id = $1
		  AND arm_token = $2
		  AND authority <> 'human'
		  AND status = 'active'
	`

	result, err := r.db.Exec(query, id, token, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to promote automation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

// TakeOver is the human side of the race. Bumping the token in the same
// statement guarantees a concurrently firing timer can no longer match.
func (r *conversationRepository) TakeOver(id string, at time.Time) (bool, error) {
	query := `
		UPDATE conversations
		SET authority = 'human',
		    arm_token = arm_token + 1,
		    last_human_at = $2,
		    updated_at = $3
		WHERE id = $1 AND status = 'active'
	`

	result, err := r.db.Exec(query, id, at, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to take over conversation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *conversationRepository) Reopen(id string) (bool, error) {
	query := `
		UPDATE conversations
		SET status = 'active',
		    authority = 'none',
		    arm_token = arm_token + 1,
		    outcome = NULL,
		    updated_at = $2
		WHERE id = $1 AND status IN ('completed', 'abandoned')
	`

	result, err := r.db.Exec(query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to reopen conversation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

// Close moves the conversation to a terminal status and bumps the arm token so
// any armed timer becomes stale.
func (r *conversationRepository) Close(id string, status models.ConversationStatus, outcome string) (bool, error) {
	query := `
		UPDATE conversations
		SET status = $2,
		    outcome = $3,
		    arm_token = arm_token + 1,
		    updated_at = $4
		WHERE id = $1 AND status = 'active'
	`

	result, err := r.db.Exec(query, id, status, outcome, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to close conversation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *conversationRepository) SetEmergency(id string, emergency bool) error {
	query := `UPDATE conversations SET emergency = $2, updated_at = $3 WHERE id = $1`

	_, err := r.db.Exec(query, id, emergency, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set emergency flag: %w", err)
	}

	return nil
}

func (r *conversationRepository) TouchMessage(id string, sender models.MessageSender, at time.Time) error {
	query := `
		UPDATE conversations
		SET last_message_at = $2,
		    message_count = message_count + 1,
		    automation_count = automation_count + CASE WHEN $3 = 'automation' THEN 1 ELSE 0 END,
		    human_count = human_count + CASE WHEN $3 = 'human' THEN 1 ELSE 0 END,
		    updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, at, string(sender), time.Now())
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}

	return nil
}

func (r *conversationRepository) ListOverdueForPromotion(cutoff time.Time, limit int) ([]*models.Conversation, error) {
	query := `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE status = 'active'
		  AND authority <> 'human'
		  AND last_message_at IS NOT NULL
		  AND last_message_at < $1
		ORDER BY last_message_at ASC
		LIMIT $2
	`

	var convs []*models.Conversation
	err := r.db.Select(&convs, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue conversations: %w", err)
	}

	return convs, nil
}

func (r *conversationRepository) ListInactive(cutoff time.Time, limit int) ([]*models.Conversation, error) {
	query := `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE status = 'active'
		  AND COALESCE(last_message_at, created_at) < $1
		ORDER BY last_message_at ASC NULLS FIRST
		LIMIT $2
	`

	var convs []*models.Conversation
	err := r.db.Select(&convs, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inactive conversations: %w", err)
	}

	return convs, nil
}
