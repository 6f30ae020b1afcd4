package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/repository"
	"github.com/callbridge/callbridge/internal/timer"
)

// conversationLocks serializes the read-decide-act sequence per conversation.
// The database conditional update is the authoritative race arbiter; the lock
// only prevents interleaved work on the same conversation within this process.
type conversationLocks struct {
	m sync.Map
}

func (l *conversationLocks) lock(key string) func() {
	v, _ := l.m.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

type conversationService struct {
	cfg        *config.Config
	repo       repository.Repository
	dispatcher Dispatcher
	analyzer   Analyzer
	leads      LeadService
	timers     *timer.Service
	logger     *zap.Logger
	locks      conversationLocks
}

func NewConversationService(
	cfg *config.Config,
	repo repository.Repository,
	dispatcher Dispatcher,
	analyzer Analyzer,
	leads LeadService,
	logger *zap.Logger,
) ConversationService {
	svc := &conversationService{
		cfg:        cfg,
		repo:       repo,
		dispatcher: dispatcher,
		analyzer:   analyzer,
		leads:      leads,
		logger:     logger,
	}

	svc.timers = timer.NewService(logger, svc.HandleTimerFire)
	return svc
}

func (s *conversationService) handoffDelay() time.Duration {
	return time.Duration(s.cfg.Orchestrator.HandoffDelaySeconds) * time.Second
}

func (s *conversationService) emergencyDelay() time.Duration {
	return time.Duration(s.cfg.Orchestrator.EmergencyDelaySeconds) * time.Second
}

// HandleMissedCall creates the conversation for a missed call and sends the
// initial "we missed you" message. It is idempotent per call id, and a still
// active conversation for the same customer pair is reused instead of
// creating a parallel thread.
func (s *conversationService) HandleMissedCall(ctx context.Context, call *models.Call) error {
	pairKey := call.TenantID + ":" + call.CustomerNumber + ":" + call.BusinessNumber
	unlock := s.locks.lock(pairKey)
	defer unlock()

	if existing, err := s.repo.Conversation().GetByProviderCallID(call.ProviderCallID); err == nil {
		s.logger.Info("Conversation already exists for call",
			zap.String("providerCallID", call.ProviderCallID),
			zap.String("conversationID", existing.ID))
		return nil
	} else if !errors.Is(err, repository.ErrConversationNotFound) {
		return fmt.Errorf("failed to check existing conversation: %w", err)
	}

	if existing, err := s.repo.Conversation().FindLatestByNumbers(call.CustomerNumber, call.BusinessNumber); err == nil {
		if existing.Status == models.ConversationActive {
			s.logger.Info("Reusing active conversation for re-missed call",
				zap.String("providerCallID", call.ProviderCallID),
				zap.String("conversationID", existing.ID))
			return s.repo.Call().LinkConversation(call.ProviderCallID, existing.ID)
		}
	} else if !errors.Is(err, repository.ErrConversationNotFound) {
		return fmt.Errorf("failed to look up customer conversation: %w", err)
	}

	conv := &models.Conversation{
		ID:             uuid.New().String(),
		TenantID:       call.TenantID,
		ProviderCallID: call.ProviderCallID,
		CustomerNumber: call.CustomerNumber,
		BusinessNumber: call.BusinessNumber,
		Authority:      models.AuthorityNone,
		Status:         models.ConversationActive,
	}

	if err := s.repo.Conversation().Create(conv); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	if err := s.repo.Call().LinkConversation(call.ProviderCallID, conv.ID); err != nil {
		s.logger.Error("Failed to link call to conversation",
			zap.String("conversationID", conv.ID),
			zap.Error(err))
	}

	if _, err := s.leads.EnsureLead(ctx, conv); err != nil {
		s.logger.Error("Failed to ensure lead",
			zap.String("conversationID", conv.ID),
			zap.Error(err))
	}

	s.logger.Info("Conversation created for missed call",
		zap.String("conversationID", conv.ID),
		zap.String("providerCallID", call.ProviderCallID))

	// No timer is armed yet; the customer has not engaged.
	s.sendOutbound(ctx, conv, models.SenderSystem, s.cfg.Orchestrator.Greeting)
	return nil
}

// HandleInboundMessage appends the customer message and, unless a human holds
// the conversation, (re)arms the handoff timer with a fresh token. Arming
// bumps the token atomically so any in-flight older timer is invalidated.
func (s *conversationService) HandleInboundMessage(ctx context.Context, ev models.MessageEvent) error {
	conv, err := s.repo.Conversation().FindLatestByNumbers(ev.From, ev.To)
	if errors.Is(err, repository.ErrConversationNotFound) {
		return ErrConversationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find conversation: %w", err)
	}

	unlock := s.locks.lock(conv.ID)
	defer unlock()

	conv, err = s.repo.Conversation().GetByID(conv.ID)
	if err != nil {
		return fmt.Errorf("failed to reload conversation: %w", err)
	}

	// Customers reply late; a terminal conversation re-opens to active/none.
	if conv.Status != models.ConversationActive {
		reopened, err := s.repo.Conversation().Reopen(conv.ID)
		if err != nil {
			return fmt.Errorf("failed to reopen conversation: %w", err)
		}
		if reopened {
			s.logger.Info("Conversation reopened by late inbound message",
				zap.String("conversationID", conv.ID))
		}
		conv, err = s.repo.Conversation().GetByID(conv.ID)
		if err != nil {
			return fmt.Errorf("failed to reload conversation: %w", err)
		}
	}

	sentAt := ev.Timestamp
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	msg := &models.Message{
		ConversationID:    conv.ID,
		Direction:         models.DirectionInbound,
		Sender:            models.SenderCustomer,
		Body:              ev.Body,
		ProviderMessageID: sql.NullString{String: ev.ProviderMessageID, Valid: ev.ProviderMessageID != ""},
		DeliveryStatus:    models.DeliverySent,
		SentAt:            sentAt,
	}
	if err := s.repo.Message().Append(msg); err != nil {
		return fmt.Errorf("failed to append inbound message: %w", err)
	}
	if err := s.repo.Conversation().TouchMessage(conv.ID, models.SenderCustomer, sentAt); err != nil {
		s.logger.Error("Failed to update conversation counters",
			zap.String("conversationID", conv.ID),
			zap.Error(err))
	}

	// A human on the thread is responsible for the reply; no timer.
	if conv.Authority == models.AuthorityHuman {
		return nil
	}

	delay := s.handoffDelay()
	if conv.Emergency {
		delay = s.emergencyDelay()
	}

	token, err := s.repo.Conversation().BumpArmToken(conv.ID)
	if err != nil {
		return fmt.Errorf("failed to bump arm token: %w", err)
	}

	if err := s.timers.Arm(conv.ID, delay, token); err != nil {
		return fmt.Errorf("failed to arm handoff timer: %w", err)
	}

	return nil
}

// HandleTimerFire promotes the conversation to automation authority if and
// only if the token is still current and no human has taken over. The
// conditional update in the repository is the single synchronization point.
func (s *conversationService) HandleTimerFire(ctx context.Context, conversationID string, token int64) {
	unlock := s.locks.lock(conversationID)
	defer unlock()

	conv, err := s.repo.Conversation().GetByID(conversationID)
	if err != nil {
		s.logger.Error("Timer fired for unknown conversation",
			zap.String("conversationID", conversationID),
			zap.Error(err))
		return
	}

	if conv.Status != models.ConversationActive || conv.Authority == models.AuthorityHuman || conv.ArmToken != token {
		s.logger.Debug("Stale timer fire dropped",
			zap.String("conversationID", conversationID),
			zap.Int64("firedToken", token),
			zap.Int64("currentToken", conv.ArmToken),
			zap.String("authority", string(conv.Authority)))
		return
	}

	promoted, err := s.repo.Conversation().PromoteAutomation(conversationID, token)
	if err != nil {
		s.logger.Error("Failed to promote automation",
			zap.String("conversationID", conversationID),
			zap.Error(err))
		return
	}
	if !promoted {
		s.logger.Debug("Stale timer fire lost promotion race",
			zap.String("conversationID", conversationID),
			zap.Int64("firedToken", token))
		return
	}

	history, err := s.repo.Message().ListByConversation(conversationID)
	if err != nil {
		s.logger.Error("Failed to load transcript for analysis",
			zap.String("conversationID", conversationID),
			zap.Error(err))
		return
	}

	transcript := make([]models.TranscriptEntry, 0, len(history))
	for _, m := range history {
		transcript = append(transcript, models.TranscriptEntry{
			Sender: m.Sender,
			Body:   m.Body,
			SentAt: m.SentAt,
		})
	}

	analysis, err := s.analyzer.Analyze(ctx, models.AnalyzeRequest{
		TenantID:       conv.TenantID,
		ConversationID: conversationID,
		History:        transcript,
	})
	if err != nil {
		// Authority stays automation; the reply is retried on the customer's
		// next inbound message, which re-arms the timer.
		s.logger.Warn("NLU collaborator failed, no automated reply sent",
			zap.String("conversationID", conversationID),
			zap.Error(err))
		return
	}

	if analysis.EmergencyDetected && !conv.Emergency {
		if err := s.repo.Conversation().SetEmergency(conversationID, true); err != nil {
			s.logger.Error("Failed to set emergency flag",
				zap.String("conversationID", conversationID),
				zap.Error(err))
		}
		s.logger.Info("Emergency detected; next inbound message fast-tracks automation",
			zap.String("conversationID", conversationID))
	}

	s.sendOutbound(ctx, conv, models.SenderAutomation, analysis.ReplyText)

	// Re-arm only when the automation reply explicitly expects an answer;
	// otherwise the next inbound message arms the timer as usual.
	if analysis.ExpectsFurtherReply {
		next, err := s.repo.Conversation().BumpArmToken(conversationID)
		if err != nil {
			s.logger.Error("Failed to re-arm after automation reply",
				zap.String("conversationID", conversationID),
				zap.Error(err))
			return
		}
		if err := s.timers.Arm(conversationID, s.handoffDelay(), next); err != nil {
			s.logger.Error("Failed to arm handoff timer",
				zap.String("conversationID", conversationID),
				zap.Error(err))
		}
	}
}

// HandleTakeover seizes the conversation for a human operator. The token bump
// inside TakeOver guarantees a concurrently firing timer becomes a no-op, so
// this transition always wins the race.
func (s *conversationService) HandleTakeover(ctx context.Context, conversationID, operatorID, body string) (*models.Conversation, error) {
	unlock := s.locks.lock(conversationID)
	defer unlock()

	conv, err := s.repo.Conversation().GetByID(conversationID)
	if errors.Is(err, repository.ErrConversationNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	taken, err := s.repo.Conversation().TakeOver(conversationID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to take over conversation: %w", err)
	}
	if !taken {
		return nil, ErrConversationNotActive
	}

	// Physical cancellation is best effort; the token bump above is what
	// makes an in-flight fire harmless.
	s.timers.Cancel(conversationID)

	s.logger.Info("Human takeover",
		zap.String("conversationID", conversationID),
		zap.String("operatorID", operatorID))

	s.sendOutbound(ctx, conv, models.SenderHuman, body)

	return s.repo.Conversation().GetByID(conversationID)
}

// Close moves the conversation to a terminal state and finalizes its lead.
func (s *conversationService) Close(ctx context.Context, conversationID, resolution string) (*models.Conversation, error) {
	unlock := s.locks.lock(conversationID)
	defer unlock()

	status := models.ConversationCompleted
	if resolution == "abandoned" {
		status = models.ConversationAbandoned
	}

	closed, err := s.repo.Conversation().Close(conversationID, status, resolution)
	if err != nil {
		return nil, fmt.Errorf("failed to close conversation: %w", err)
	}
	if !closed {
		if _, getErr := s.repo.Conversation().GetByID(conversationID); errors.Is(getErr, repository.ErrConversationNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, ErrConversationNotActive
	}

	s.timers.Cancel(conversationID)

	if err := s.leads.Finalize(ctx, conversationID, status); err != nil {
		s.logger.Error("Failed to finalize lead",
			zap.String("conversationID", conversationID),
			zap.Error(err))
	}

	s.logger.Info("Conversation closed",
		zap.String("conversationID", conversationID),
		zap.String("status", string(status)),
		zap.String("resolution", resolution))

	return s.repo.Conversation().GetByID(conversationID)
}

func (s *conversationService) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	conv, err := s.repo.Conversation().GetByID(conversationID)
	if errors.Is(err, repository.ErrConversationNotFound) {
		return nil, ErrConversationNotFound
	}
	return conv, err
}

func (s *conversationService) Transcript(ctx context.Context, conversationID string) ([]*models.Message, error) {
	if _, err := s.Get(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.repo.Message().ListByConversation(conversationID)
}

// SweepOnce is the reconciliation backstop. It promotes conversations whose
// handoff window elapsed without a fire (e.g. lost to a restart) and abandons
// conversations idle past the inactivity window. Both paths reuse the normal
// token-checked transitions and are therefore safe to repeat.
func (s *conversationService) SweepOnce(ctx context.Context) error {
	const batchSize = 50
	now := time.Now()

	overdue, err := s.repo.Conversation().ListOverdueForPromotion(now.Add(-s.handoffDelay()), batchSize)
	if err != nil {
		return fmt.Errorf("failed to list overdue conversations: %w", err)
	}

	for _, conv := range overdue {
		waiting, err := s.awaitingReply(conv.ID)
		if err != nil {
			s.logger.Error("Sweep transcript check failed",
				zap.String("conversationID", conv.ID),
				zap.Error(err))
			continue
		}
		if !waiting {
			continue
		}

		token, err := s.repo.Conversation().BumpArmToken(conv.ID)
		if err != nil {
			s.logger.Error("Sweep failed to bump arm token",
				zap.String("conversationID", conv.ID),
				zap.Error(err))
			continue
		}
		if err := s.timers.Arm(conv.ID, 0, token); err != nil {
			s.logger.Error("Sweep failed to arm timer",
				zap.String("conversationID", conv.ID),
				zap.Error(err))
		}
	}

	inactivity := time.Duration(s.cfg.Orchestrator.InactivityMinutes) * time.Minute
	inactive, err := s.repo.Conversation().ListInactive(now.Add(-inactivity), batchSize)
	if err != nil {
		return fmt.Errorf("failed to list inactive conversations: %w", err)
	}

	for _, conv := range inactive {
		if _, err := s.Close(ctx, conv.ID, "abandoned"); err != nil && !errors.Is(err, ErrConversationNotActive) {
			s.logger.Error("Sweep failed to abandon conversation",
				zap.String("conversationID", conv.ID),
				zap.Error(err))
		}
	}

	return nil
}

// StopTimers cancels all scheduled fires; called on shutdown.
func (s *conversationService) StopTimers() {
	s.timers.Stop()
}

// awaitingReply reports whether the newest transcript entry came from the
// customer, i.e. the conversation still owes a reply.
func (s *conversationService) awaitingReply(conversationID string) (bool, error) {
	history, err := s.repo.Message().ListByConversation(conversationID)
	if err != nil {
		return false, err
	}
	if len(history) == 0 {
		return false, nil
	}
	return history[len(history)-1].Direction == models.DirectionInbound, nil
}

// sendOutbound appends an outbound message, dispatches it, and records the
// delivery outcome. A failed send is a delivery problem, not a state-machine
// problem: the authority transition that led here stands.
func (s *conversationService) sendOutbound(ctx context.Context, conv *models.Conversation, sender models.MessageSender, body string) {
	now := time.Now()
	msg := &models.Message{
		ConversationID: conv.ID,
		Direction:      models.DirectionOutbound,
		Sender:         sender,
		Body:           body,
		DeliveryStatus: models.DeliveryPending,
		SentAt:         now,
	}

	if err := s.repo.Message().Append(msg); err != nil {
		s.logger.Error("Failed to append outbound message",
			zap.String("conversationID", conv.ID),
			zap.Error(err))
		return
	}
	if err := s.repo.Conversation().TouchMessage(conv.ID, sender, now); err != nil {
		s.logger.Error("Failed to update conversation counters",
			zap.String("conversationID", conv.ID),
			zap.Error(err))
	}

	providerID, err := s.dispatcher.Send(ctx, conv.CustomerNumber, conv.BusinessNumber, body)
	if err != nil {
		s.logger.Error("Outbound dispatch failed",
			zap.String("conversationID", conv.ID),
			zap.Int64("messageID", msg.ID),
			zap.Error(err))
		if updateErr := s.repo.Message().UpdateDelivery(msg.ID, models.DeliveryFailed, nil); updateErr != nil {
			s.logger.Error("Failed to record delivery failure",
				zap.Int64("messageID", msg.ID),
				zap.Error(updateErr))
		}
		return
	}

	if err := s.repo.Message().UpdateDelivery(msg.ID, models.DeliverySent, &providerID); err != nil {
		s.logger.Error("Failed to record delivery success",
			zap.Int64("messageID", msg.ID),
			zap.Error(err))
	}
}
