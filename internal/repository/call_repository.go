package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/callbridge/callbridge/internal/models"
)

// ErrCallNotFound is returned when no call exists for a provider call id.
var ErrCallNotFound = errors.New("call not found")

type callRepository struct {
	db *sqlx.DB
}

func NewCallRepository(db *sqlx.DB) CallRepository {
	return &callRepository{
		db: db,
	}
}

// CreateRinging inserts the call record on the first ringing event. A repeat
// delivery of the same event hits the unique provider_call_id and is ignored.
func (r *callRepository) CreateRinging(providerCallID, tenantID, customerNumber, businessNumber string, startedAt time.Time) error {
	query := `
		INSERT INTO calls (provider_call_id, tenant_id, customer_number, business_number, status, started_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (provider_call_id) DO NOTHING
	`

	_, err := r.db.Exec(query, providerCallID, tenantID, customerNumber, businessNumber, models.CallStatusRinging, startedAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create call record: %w", err)
	}

	return nil
}

func (r *callRepository) GetByProviderID(providerCallID string) (*models.Call, error) {
	query := `
		SELECT id, provider_call_id, tenant_id, customer_number, business_number, status,
		       started_at, ended_at, duration_seconds, missed_signaled, conversation_id, created_at, updated_at
		FROM calls
		WHERE provider_call_id = $1
	`

	var call models.Call
	err := r.db.Get(&call, query, providerCallID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call: %w", err)
	}

	return &call, nil
}

func (r *callRepository) MarkInProgress(providerCallID string) error {
	query := `
		UPDATE calls
		SET status = $2,
		    updated_at = $3
		WHERE provider_call_id = $1 AND status = 'ringing'
	`

	_, err := r.db.Exec(query, providerCallID, models.CallStatusInProgress, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark call in progress: %w", err)
	}

	return nil
}

// UpdateTerminal applies a terminal status only while the call is still
// non-terminal. A zero rows-affected means the call already reached a terminal
// status and the event is anomalous.
func (r *callRepository) UpdateTerminal(providerCallID string, status models.CallStatus, endedAt time.Time, durationSeconds int) (bool, error) {
	query := `
		UPDATE calls
		SET status = $2,
		    ended_at = $3,
		    duration_seconds = $4,
		    updated_at = $5
		WHERE provider_call_id = $1
		  AND status IN ('ringing', 'in_progress')
	`

	result, err := r.db.Exec(query, providerCallID, status, endedAt, durationSeconds, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to update call status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

// ClaimMissedSignal is the exactly-once gate for MissedCall emission. The
// conditional update succeeds for a single caller per call id.
func (r *callRepository) ClaimMissedSignal(providerCallID string) (bool, error) {
	query := `
		UPDATE calls
		SET missed_signaled = TRUE,
		    updated_at = $2
		WHERE provider_call_id = $1
		  AND missed_signaled = FALSE
		  AND status IN ('no_answer', 'busy', 'failed')
		  AND duration_seconds = 0
	`

	result, err := r.db.Exec(query, providerCallID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to claim missed signal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *callRepository) LinkConversation(providerCallID, conversationID string) error {
	query := `
		UPDATE calls
		SET conversation_id = $2,
		    updated_at = $3
		WHERE provider_call_id = $1
	`

	_, err := r.db.Exec(query, providerCallID, conversationID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to link conversation: %w", err)
	}

	return nil
}
