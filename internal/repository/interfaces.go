package repository

import (
	"time"

	"github.com/callbridge/callbridge/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Call returns call repository
	Call() CallRepository

	// Conversation returns conversation repository
	Conversation() ConversationRepository

	// Message returns message repository
	Message() MessageRepository

	// Lead returns lead repository
	Lead() LeadRepository
}

// CallRepository interface defines call ledger operations.
type CallRepository interface {
	// CreateRinging inserts a new call record with status ringing. It is a
	// no-op when the provider call id already exists.
	CreateRinging(providerCallID, tenantID, customerNumber, businessNumber string, startedAt time.Time) error

	GetByProviderID(providerCallID string) (*models.Call, error)

	// MarkInProgress moves a ringing call to in-progress.
	MarkInProgress(providerCallID string) error

	// UpdateTerminal moves a call to a terminal status. It returns false when
	// the call is already terminal, in which case the event is anomalous.
	UpdateTerminal(providerCallID string, status models.CallStatus, endedAt time.Time, durationSeconds int) (bool, error)

	// ClaimMissedSignal flips the missed-signaled flag. It returns true for
	// exactly one caller per call id; every later claim returns false.
	ClaimMissedSignal(providerCallID string) (bool, error)

	LinkConversation(providerCallID, conversationID string) error
}

// ConversationRepository interface defines conversation state operations.
// Authority and arm-token transitions are conditional single-row updates;
// a false return means the transition lost the race and must no-op.
type ConversationRepository interface {
	Create(conv *models.Conversation) error
	GetByID(id string) (*models.Conversation, error)
	GetByProviderCallID(providerCallID string) (*models.Conversation, error)
	// FindLatestByNumbers returns the most recent conversation for a
	// customer/business number pair. Inbound message events carry no tenant
	// id; the business number identifies the tenant.
	FindLatestByNumbers(customerNumber, businessNumber string) (*models.Conversation, error)

	// BumpArmToken atomically increments the arm token of an active
	// conversation and returns the fresh token value.
	BumpArmToken(id string) (int64, error)

	// PromoteAutomation sets authority to automation only when the token
	// still matches and a human has not taken over.
	PromoteAutomation(id string, token int64) (bool, error)

	// TakeOver sets authority to human and bumps the arm token so no
	// in-flight timer can match. Returns false when the conversation is not
	// active.
	TakeOver(id string, at time.Time) (bool, error)

	// Reopen transitions a terminal conversation back to active/none.
	Reopen(id string) (bool, error)

	// Close moves an active conversation to a terminal status.
	Close(id string, status models.ConversationStatus, outcome string) (bool, error)

	SetEmergency(id string, emergency bool) error

	// TouchMessage updates last-message bookkeeping and per-sender counters.
	TouchMessage(id string, sender models.MessageSender, at time.Time) error

	// ListOverdueForPromotion returns active conversations not held by a
	// human whose last message is older than the cutoff.
	ListOverdueForPromotion(cutoff time.Time, limit int) ([]*models.Conversation, error)

	// ListInactive returns active conversations idle since before the cutoff.
	ListInactive(cutoff time.Time, limit int) ([]*models.Conversation, error)
}

// MessageRepository interface defines transcript operations.
type MessageRepository interface {
	Append(msg *models.Message) error
	ListByConversation(conversationID string) ([]*models.Message, error)
	UpdateDelivery(id int64, status models.DeliveryStatus, providerMessageID *string) error
}

// LeadRepository interface defines lead operations.
type LeadRepository interface {
	// Ensure creates the lead for a conversation if it does not exist and
	// returns the surviving record either way.
	Ensure(lead *models.Lead) (*models.Lead, error)

	GetByID(id string) (*models.Lead, error)
	GetByConversationID(conversationID string) (*models.Lead, error)
	UpdateStatus(id string, status models.LeadStatus, notes *string) error
	UpdateDetails(id string, name, address, problem, urgency *string, estimatedValue *int64, inServiceArea *bool) error
}
