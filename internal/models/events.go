package models

import "time"

// EventKind tags the validated ingress event types. Gateway webhooks arrive as
// loosely-typed payloads; ingress classifies them into exactly one of these.
type EventKind string

const (
	EventKindCall     EventKind = "call"
	EventKindMessage  EventKind = "message"
	EventKindTakeover EventKind = "takeover"
	EventKindClose    EventKind = "close"
)

// IngestResult classifies the outcome of ingesting one gateway event.
type IngestResult string

const (
	IngestAccepted  IngestResult = "accepted"
	IngestDuplicate IngestResult = "duplicate"
	IngestInvalid   IngestResult = "invalid"
)

// CallEvent is a normalized call-status notification from the telephony gateway.
type CallEvent struct {
	ProviderEventID string     `json:"provider_event_id"`
	ProviderCallID  string     `json:"provider_call_id"`
	TenantID        string     `json:"tenant_id"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	Status          CallStatus `json:"status"`
	DurationSeconds int        `json:"duration_seconds"`
	Timestamp       time.Time  `json:"timestamp"`
}

// MessageEvent is a normalized inbound SMS notification.
type MessageEvent struct {
	ProviderEventID   string    `json:"provider_event_id"`
	ProviderMessageID string    `json:"provider_message_id"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Body              string    `json:"body"`
	Timestamp         time.Time `json:"timestamp"`
}

// GatewaySendRequest is the payload for the telephony gateway send operation.
type GatewaySendRequest struct {
	To   string `json:"to"`
	From string `json:"from"`
	Body string `json:"body"`
}

// GatewaySendResponse is the gateway's acknowledgment of a send.
type GatewaySendResponse struct {
	Message           string `json:"message"`
	ProviderMessageID string `json:"messageId"`
}

// TranscriptEntry is one message as presented to the NLU collaborator.
type TranscriptEntry struct {
	Sender MessageSender `json:"sender"`
	Body   string        `json:"body"`
	SentAt time.Time     `json:"sent_at"`
}

// AnalyzeRequest asks the NLU collaborator for the next automated reply.
type AnalyzeRequest struct {
	TenantID       string            `json:"tenant_id"`
	ConversationID string            `json:"conversation_id"`
	History        []TranscriptEntry `json:"history"`
}

// AnalyzeResponse carries the collaborator's reply plus its confidence metadata.
type AnalyzeResponse struct {
	ReplyText           string  `json:"reply_text"`
	Confidence          float64 `json:"confidence"`
	EmergencyDetected   bool    `json:"emergency_detected"`
	ExpectsFurtherReply bool    `json:"expects_further_reply"`
}

// ServiceAreaRequest asks the tenant validator whether an address is serviceable.
type ServiceAreaRequest struct {
	TenantID string `json:"tenant_id"`
	Address  string `json:"address"`
}

type ServiceAreaResponse struct {
	InServiceArea bool `json:"in_service_area"`
}
