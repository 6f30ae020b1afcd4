package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db           *sqlx.DB
	call         CallRepository
	conversation ConversationRepository
	message      MessageRepository
	lead         LeadRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:           db,
		call:         NewCallRepository(db),
		conversation: NewConversationRepository(db),
		message:      NewMessageRepository(db),
		lead:         NewLeadRepository(db),
	}
}

// Call returns the call repository.
func (r *repositoryImpl) Call() CallRepository {
	return r.call
}

// Conversation returns the conversation repository.
func (r *repositoryImpl) Conversation() ConversationRepository {
	return r.conversation
}

// Message returns the message repository.
func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

// Lead returns the lead repository.
func (r *repositoryImpl) Lead() LeadRepository {
	return r.lead
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
