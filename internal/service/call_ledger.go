package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/repository"
)

// callLedgerService tracks one record per physical call and turns a terminal
// non-answer into exactly one missed-call signal.
type callLedgerService struct {
	repo          repository.Repository
	conversations ConversationService
	logger        *zap.Logger
}

func NewCallLedgerService(repo repository.Repository, conversations ConversationService, logger *zap.Logger) CallLedgerService {
	return &callLedgerService{
		repo:          repo,
		conversations: conversations,
		logger:        logger,
	}
}

func (s *callLedgerService) RecordCallEvent(ctx context.Context, ev models.CallEvent) (*models.Call, error) {
	switch {
	case ev.Status == models.CallStatusRinging:
		if err := s.repo.Call().CreateRinging(ev.ProviderCallID, ev.TenantID, ev.From, ev.To, ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to record ringing call: %w", err)
		}

	case ev.Status == models.CallStatusInProgress:
		if err := s.ensureCallExists(ev); err != nil {
			return nil, err
		}
		if err := s.repo.Call().MarkInProgress(ev.ProviderCallID); err != nil {
			return nil, fmt.Errorf("failed to record in-progress call: %w", err)
		}

	case ev.Status.IsTerminal():
		if err := s.ensureCallExists(ev); err != nil {
			return nil, err
		}
		updated, err := s.repo.Call().UpdateTerminal(ev.ProviderCallID, ev.Status, ev.Timestamp, ev.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("failed to record terminal call status: %w", err)
		}
		if !updated {
			// Terminal status is final; a later event for the same call id
			// should not happen and must not corrupt state.
			s.logger.Warn("Anomalous call event after terminal status ignored",
				zap.String("providerCallID", ev.ProviderCallID),
				zap.String("status", string(ev.Status)))
			return s.repo.Call().GetByProviderID(ev.ProviderCallID)
		}

	default:
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown call status %q", ev.Status)}
	}

	call, err := s.repo.Call().GetByProviderID(ev.ProviderCallID)
	if err != nil {
		return nil, err
	}

	if call.Missed() {
		claimed, err := s.repo.Call().ClaimMissedSignal(call.ProviderCallID)
		if err != nil {
			return nil, fmt.Errorf("failed to claim missed signal: %w", err)
		}
		if claimed {
			s.logger.Info("Missed call detected",
				zap.String("providerCallID", call.ProviderCallID),
				zap.String("customerNumber", call.CustomerNumber))
			if err := s.conversations.HandleMissedCall(ctx, call); err != nil {
				return nil, fmt.Errorf("failed to handle missed call: %w", err)
			}
		}
	}

	return call, nil
}

// ensureCallExists backfills the record when the ringing event was lost; the
// gateway delivers at-least-once but not in guaranteed order.
func (s *callLedgerService) ensureCallExists(ev models.CallEvent) error {
	_, err := s.repo.Call().GetByProviderID(ev.ProviderCallID)
	if errors.Is(err, repository.ErrCallNotFound) {
		if createErr := s.repo.Call().CreateRinging(ev.ProviderCallID, ev.TenantID, ev.From, ev.To, ev.Timestamp); createErr != nil {
			return fmt.Errorf("failed to backfill call record: %w", createErr)
		}
		return nil
	}
	return err
}
