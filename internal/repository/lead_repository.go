package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/callbridge/callbridge/internal/models"
)

// ErrLeadNotFound is returned when no lead matches the lookup.
var ErrLeadNotFound = errors.New("lead not found")

const leadColumns = `
	id, tenant_id, conversation_id, provider_call_id, customer_number, customer_name,
	customer_address, problem_description, urgency, status, estimated_value,
	in_service_area, notes, created_at, updated_at
`

type leadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// Ensure inserts the lead unless one already exists for the conversation. The
// unique constraint on conversation_id makes concurrent calls converge on a
// single record, which is then read back.
func (r *leadRepository) Ensure(lead *models.Lead) (*models.Lead, error) {
	query := `
		INSERT INTO leads (id, tenant_id, conversation_id, provider_call_id, customer_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (conversation_id) DO NOTHING
	`

	_, err := r.db.Exec(query, lead.ID, lead.TenantID, lead.ConversationID, lead.ProviderCallID,
		lead.CustomerNumber, models.LeadStatusNew, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure lead: %w", err)
	}

	return r.GetByConversationID(lead.ConversationID)
}

func (r *leadRepository) GetByID(id string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead models.Lead
	err := r.db.Get(&lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

func (r *leadRepository) GetByConversationID(conversationID string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE conversation_id = $1`

	var lead models.Lead
	err := r.db.Get(&lead, query, conversationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead by conversation: %w", err)
	}

	return &lead, nil
}

func (r *leadRepository) UpdateStatus(id string, status models.LeadStatus, notes *string) error {
	query := `
		UPDATE leads
		SET status = $2,
		    notes = COALESCE($3, notes),
		    updated_at = $4
		WHERE id = $1
	`

	var noteVal sql.NullString
	if notes != nil {
		noteVal = sql.NullString{String: *notes, Valid: true}
	}

	result, err := r.db.Exec(query, id, status, noteVal, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func (r *leadRepository) UpdateDetails(id string, name, address, problem, urgency *string, estimatedValue *int64, inServiceArea *bool) error {
	query := `
		UPDATE leads
		SET customer_name = COALESCE($2, customer_name),
		    customer_address = COALESCE($3, customer_address),
		    problem_description = COALESCE($4, problem_description),
		    urgency = COALESCE($5, urgency),
		    estimated_value = COALESCE($6, estimated_value),
		    in_service_area = COALESCE($7, in_service_area),
		    updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, nullString(name), nullString(address), nullString(problem),
		nullString(urgency), nullInt64(estimatedValue), nullBool(inServiceArea), time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lead details: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
