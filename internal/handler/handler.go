// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/middleware"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/scheduler"
	"github.com/callbridge/callbridge/internal/service"
)

const (
	errorCodeValidation       = "VALIDATION_ERROR"
	errorCodeNotFound         = "NOT_FOUND"
	errorCodeConflict         = "CONFLICT"
	errorCodeSweeperRunning   = "SWEEPER_ALREADY_RUNNING"
	errorCodeSweeperNotActive = "SWEEPER_NOT_RUNNING"
)

// ErrorResponse is the error payload for every endpoint.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// IngestResponse acknowledges an event webhook.
type IngestResponse struct {
	Result models.IngestResult `json:"result"`
}

// TakeoverRequest is the operator takeover payload.
type TakeoverRequest struct {
	OperatorID string `json:"operator_id"`
	Message    string `json:"message"`
}

// CloseRequest closes a conversation with a resolution.
type CloseRequest struct {
	Resolution string `json:"resolution"`
}

// LeadUpdateRequest carries operator edits to a lead; empty fields are unchanged.
type LeadUpdateRequest struct {
	Status             string  `json:"status,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CustomerName       *string `json:"customer_name,omitempty"`
	CustomerAddress    *string `json:"customer_address,omitempty"`
	ProblemDescription *string `json:"problem_description,omitempty"`
	Urgency            *string `json:"urgency,omitempty"`
	EstimatedValue     *int64  `json:"estimated_value,omitempty"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status               service.HealthState    `json:"status"`
	SweeperStatus        service.ComponentState `json:"sweeper_status,omitempty"`
	DatabaseStatus       service.ComponentState `json:"database_status,omitempty"`
	RedisStatus          service.ComponentState `json:"redis_status,omitempty"`
	CircuitBreakerStatus string                 `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  service.BreakerState   `json:"circuit_breaker_state,omitempty"`
	Timestamp            time.Time              `json:"timestamp"`
}

// SweeperResponse acknowledges a sweeper lifecycle change.
type SweeperResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// IngestCallEvent handles POST /api/v1/events/call.
func (h *Handler) IngestCallEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.CallEvent
	if err := render.DecodeJSON(r.Body, &ev); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Malformed call event payload")
		return
	}

	result, err := h.service.Ingress.IngestCallEvent(r.Context(), ev)
	h.renderIngest(w, r, result, err)
}

// IngestMessageEvent handles POST /api/v1/events/message.
func (h *Handler) IngestMessageEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.MessageEvent
	if err := render.DecodeJSON(r.Body, &ev); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Malformed message event payload")
		return
	}

	result, err := h.service.Ingress.IngestMessageEvent(r.Context(), ev)
	h.renderIngest(w, r, result, err)
}

func (h *Handler) renderIngest(w http.ResponseWriter, r *http.Request, result models.IngestResult, err error) {
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, ve.Error())
			return
		}

		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to ingest event",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to process event")
		return
	}

	render.JSON(w, r, IngestResponse{Result: result})
}

// Takeover handles POST /api/v1/conversations/{conversationID}/takeover.
func (h *Handler) Takeover(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var req TakeoverRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Malformed takeover payload")
		return
	}
	if req.Message == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Takeover message is required")
		return
	}

	conv, err := h.service.Conversation.HandleTakeover(r.Context(), conversationID, req.OperatorID, req.Message)
	if err != nil {
		h.renderConversationError(w, r, err, "Failed to take over conversation")
		return
	}

	render.JSON(w, r, conv)
}

// CloseConversation handles POST /api/v1/conversations/{conversationID}/close.
func (h *Handler) CloseConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var req CloseRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Malformed close payload")
		return
	}
	if req.Resolution == "" {
		req.Resolution = "resolved"
	}

	conv, err := h.service.Conversation.Close(r.Context(), conversationID, req.Resolution)
	if err != nil {
		h.renderConversationError(w, r, err, "Failed to close conversation")
		return
	}

	render.JSON(w, r, conv)
}

// GetConversation handles GET /api/v1/conversations/{conversationID}.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	conv, err := h.service.Conversation.Get(r.Context(), conversationID)
	if err != nil {
		h.renderConversationError(w, r, err, "Failed to load conversation")
		return
	}

	render.JSON(w, r, conv)
}

// GetTranscript handles GET /api/v1/conversations/{conversationID}/messages.
func (h *Handler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	messages, err := h.service.Conversation.Transcript(r.Context(), conversationID)
	if err != nil {
		h.renderConversationError(w, r, err, "Failed to load transcript")
		return
	}

	render.JSON(w, r, messages)
}

// GetLead handles GET /api/v1/leads/{leadID}.
func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	lead, err := h.service.Lead.Get(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Lead not found")
			return
		}
		h.logger.Error("Failed to load lead", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to load lead")
		return
	}

	render.JSON(w, r, lead)
}

// UpdateLead handles PATCH /api/v1/leads/{leadID}.
func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	var req LeadUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Malformed lead update payload")
		return
	}

	if req.Status != "" {
		if err := h.service.Lead.UpdateStatus(r.Context(), leadID, models.LeadStatus(req.Status), req.Notes); err != nil {
			h.renderLeadError(w, r, err)
			return
		}
	}

	if req.CustomerName != nil || req.CustomerAddress != nil || req.ProblemDescription != nil ||
		req.Urgency != nil || req.EstimatedValue != nil {
		patch := service.LeadDetailsPatch{
			CustomerName:       req.CustomerName,
			CustomerAddress:    req.CustomerAddress,
			ProblemDescription: req.ProblemDescription,
			Urgency:            req.Urgency,
			EstimatedValue:     req.EstimatedValue,
		}
		if err := h.service.Lead.UpdateDetails(r.Context(), leadID, patch); err != nil {
			h.renderLeadError(w, r, err)
			return
		}
	}

	lead, err := h.service.Lead.Get(r.Context(), leadID)
	if err != nil {
		h.renderLeadError(w, r, err)
		return
	}

	render.JSON(w, r, lead)
}

// StartSweeper handles POST /api/v1/sweeper/start.
func (h *Handler) StartSweeper(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Sweeper.Start(); err != nil {
		if errors.Is(err, scheduler.ErrSweeperAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSweeperRunning, "Sweeper is already running")
			return
		}

		h.logger.Error("Failed to start sweeper", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to start sweeper")
		return
	}

	render.JSON(w, r, SweeperResponse{Status: "started", Message: "Sweeper started successfully"})
}

// StopSweeper handles POST /api/v1/sweeper/stop.
func (h *Handler) StopSweeper(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Sweeper.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrSweeperNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSweeperNotActive, "Sweeper is not running")
			return
		}

		h.logger.Error("Failed to stop sweeper", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to stop sweeper")
		return
	}

	render.JSON(w, r, SweeperResponse{Status: "stopped", Message: "Sweeper stopped successfully"})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := HealthResponse{
		Status:               health.Status,
		SweeperStatus:        health.SweeperStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		CircuitBreakerState:  health.CircuitBreakerState,
		Timestamp:            time.Now(),
	}

	if health.Status == service.HealthUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) renderConversationError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Conversation not found")
	case errors.Is(err, service.ErrConversationNotActive):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, "Conversation is not active")
	default:
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error(message,
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
	}
}

func (h *Handler) renderLeadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrLeadNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Lead not found")
	default:
		if ve, ok := service.AsValidationError(err); ok {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, ve.Error())
			return
		}
		h.logger.Error("Failed to update lead", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to update lead")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}
