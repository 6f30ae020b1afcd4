package service

import (
	"context"

	"github.com/callbridge/callbridge/internal/models"
)

// IngressService normalizes, validates and deduplicates gateway events before
// delegating to the call ledger or the conversation engine.
type IngressService interface {
	IngestCallEvent(ctx context.Context, ev models.CallEvent) (models.IngestResult, error)
	IngestMessageEvent(ctx context.Context, ev models.MessageEvent) (models.IngestResult, error)
}

// CallLedgerService tracks calls from ring to terminal status and emits the
// missed-call fact exactly once per call id.
type CallLedgerService interface {
	RecordCallEvent(ctx context.Context, ev models.CallEvent) (*models.Call, error)
}

// ConversationService is the conversation state machine. All authority
// transitions for a given conversation are linearized through it.
type ConversationService interface {
	HandleMissedCall(ctx context.Context, call *models.Call) error
	HandleInboundMessage(ctx context.Context, ev models.MessageEvent) error
	HandleTimerFire(ctx context.Context, conversationID string, token int64)
	HandleTakeover(ctx context.Context, conversationID, operatorID, body string) (*models.Conversation, error)
	Close(ctx context.Context, conversationID, resolution string) (*models.Conversation, error)
	Get(ctx context.Context, conversationID string) (*models.Conversation, error)
	Transcript(ctx context.Context, conversationID string) ([]*models.Message, error)
	SweepOnce(ctx context.Context) error
	StopTimers()
}

// LeadService manages the lead derived from a conversation.
type LeadService interface {
	EnsureLead(ctx context.Context, conv *models.Conversation) (*models.Lead, error)
	Get(ctx context.Context, leadID string) (*models.Lead, error)
	UpdateStatus(ctx context.Context, leadID string, status models.LeadStatus, notes *string) error
	UpdateDetails(ctx context.Context, leadID string, patch LeadDetailsPatch) error
	Finalize(ctx context.Context, conversationID string, status models.ConversationStatus) error
}

// Dispatcher wraps the telephony gateway send operation.
type Dispatcher interface {
	Send(ctx context.Context, to, from, body string) (string, error)
	BreakerStatus() (state BreakerState, requests uint32, failures uint32)
}

// Analyzer is the opaque NLU/response collaborator.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error)
}

// AreaValidator checks whether an address falls inside a tenant's service
// area. Used only to tag leads, never to gate conversation progress.
type AreaValidator interface {
	ValidateServiceArea(ctx context.Context, tenantID, address string) (bool, error)
}

// SweeperService controls the reconciliation loop lifecycle.
type SweeperService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

// HealthService reports component health.
type HealthService interface {
	GetHealth() *HealthStatus
}
