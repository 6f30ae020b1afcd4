// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

type CallStatus string

const (
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in_progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusNoAnswer   CallStatus = "no_answer"
	CallStatusBusy       CallStatus = "busy"
	CallStatusFailed     CallStatus = "failed"
)

// IsTerminal reports whether the status ends a call's lifecycle.
func (s CallStatus) IsTerminal() bool {
	switch s {
	case CallStatusCompleted, CallStatusNoAnswer, CallStatusBusy, CallStatusFailed:
		return true
	}
	return false
}

// Call is one record per physical phone call, keyed by the provider call id.
type Call struct {
	ID              int64          `db:"id" json:"id"`
	ProviderCallID  string         `db:"provider_call_id" json:"provider_call_id"`
	TenantID        string         `db:"tenant_id" json:"tenant_id"`
	CustomerNumber  string         `db:"customer_number" json:"customer_number"`
	BusinessNumber  string         `db:"business_number" json:"business_number"`
	Status          CallStatus     `db:"status" json:"status"`
	StartedAt       time.Time      `db:"started_at" json:"started_at"`
	EndedAt         sql.NullTime   `db:"ended_at" json:"ended_at,omitempty"`
	DurationSeconds int            `db:"duration_seconds" json:"duration_seconds"`
	MissedSignaled  bool           `db:"missed_signaled" json:"missed_signaled"`
	ConversationID  sql.NullString `db:"conversation_id" json:"conversation_id,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Missed reports whether the call counts as missed: a terminal non-answer
// status with zero connected duration.
func (c *Call) Missed() bool {
	switch c.Status {
	case CallStatusNoAnswer, CallStatusBusy, CallStatusFailed:
		return c.DurationSeconds == 0
	}
	return false
}

type Authority string

const (
	AuthorityNone       Authority = "none"
	AuthorityAutomation Authority = "automation"
	AuthorityHuman      Authority = "human"
)

type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
	ConversationAbandoned ConversationStatus = "abandoned"
)

// Conversation is one customer-business SMS thread. Authority is the single
// source of truth for who replies next; ArmToken is the monotonic value that
// invalidates stale handoff timers. Both change only through conditional
// updates on this row.
type Conversation struct {
	ID              string             `db:"id" json:"id"`
	TenantID        string             `db:"tenant_id" json:"tenant_id"`
	ProviderCallID  string             `db:"provider_call_id" json:"provider_call_id"`
	CustomerNumber  string             `db:"customer_number" json:"customer_number"`
	BusinessNumber  string             `db:"business_number" json:"business_number"`
	Authority       Authority          `db:"authority" json:"authority"`
	Status          ConversationStatus `db:"status" json:"status"`
	ArmToken        int64              `db:"arm_token" json:"-"`
	Emergency       bool               `db:"emergency" json:"emergency"`
	LastMessageAt   sql.NullTime       `db:"last_message_at" json:"last_message_at,omitempty"`
	LastHumanAt     sql.NullTime       `db:"last_human_at" json:"last_human_at,omitempty"`
	MessageCount    int                `db:"message_count" json:"message_count"`
	AutomationCount int                `db:"automation_count" json:"automation_count"`
	HumanCount      int                `db:"human_count" json:"human_count"`
	Outcome         sql.NullString     `db:"outcome" json:"outcome,omitempty"`
	CreatedAt       time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at" json:"updated_at"`
}

type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

type MessageSender string

const (
	SenderCustomer   MessageSender = "customer"
	SenderSystem     MessageSender = "system"
	SenderAutomation MessageSender = "automation"
	SenderHuman      MessageSender = "human"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Message is an append-only transcript entry. Ordering is by SentAt with Seq
// as the insertion-order tie-break.
type Message struct {
	ID                int64            `db:"id" json:"id"`
	ConversationID    string           `db:"conversation_id" json:"conversation_id"`
	Direction         MessageDirection `db:"direction" json:"direction"`
	Sender            MessageSender    `db:"sender" json:"sender"`
	Body              string           `db:"body" json:"body"`
	ProviderMessageID sql.NullString   `db:"provider_message_id" json:"provider_message_id,omitempty"`
	DeliveryStatus    DeliveryStatus   `db:"delivery_status" json:"delivery_status"`
	SentAt            time.Time        `db:"sent_at" json:"sent_at"`
	Seq               int64            `db:"seq" json:"seq"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusScheduled LeadStatus = "scheduled"
	LeadStatusCompleted LeadStatus = "completed"
	LeadStatusLost      LeadStatus = "lost"
)

// Lead is the business-opportunity record derived from a conversation,
// created at most once per conversation id.
type Lead struct {
	ID                 string         `db:"id" json:"id"`
	TenantID           string         `db:"tenant_id" json:"tenant_id"`
	ConversationID     string         `db:"conversation_id" json:"conversation_id"`
	ProviderCallID     string         `db:"provider_call_id" json:"provider_call_id"`
	CustomerNumber     string         `db:"customer_number" json:"customer_number"`
	CustomerName       sql.NullString `db:"customer_name" json:"customer_name,omitempty"`
	CustomerAddress    sql.NullString `db:"customer_address" json:"customer_address,omitempty"`
	ProblemDescription sql.NullString `db:"problem_description" json:"problem_description,omitempty"`
	Urgency            sql.NullString `db:"urgency" json:"urgency,omitempty"`
	Status             LeadStatus     `db:"status" json:"status"`
	EstimatedValue     sql.NullInt64  `db:"estimated_value" json:"estimated_value,omitempty"`
	InServiceArea      sql.NullBool   `db:"in_service_area" json:"in_service_area,omitempty"`
	Notes              sql.NullString `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}
