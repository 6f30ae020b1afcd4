package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/phone"
)

// ingressService validates, normalizes and deduplicates gateway events. The
// gateway delivers at-least-once; the Redis SETNX on the provider event id is
// the durable idempotency store that keeps replays side-effect free.
type ingressService struct {
	cfg           *config.Config
	redisClient   *redis.Client
	ledger        CallLedgerService
	conversations ConversationService
	logger        *zap.Logger
}

func NewIngressService(
	cfg *config.Config,
	redisClient *redis.Client,
	ledger CallLedgerService,
	conversations ConversationService,
	logger *zap.Logger,
) IngressService {
	return &ingressService{
		cfg:           cfg,
		redisClient:   redisClient,
		ledger:        ledger,
		conversations: conversations,
		logger:        logger,
	}
}

func (s *ingressService) dedupTTL() time.Duration {
	return time.Duration(s.cfg.Orchestrator.DedupTTLHours) * time.Hour
}

// markSeen records the provider event id and reports whether this delivery is
// the first. Dedup store errors fail the ingest so the gateway retries.
func (s *ingressService) markSeen(ctx context.Context, scope, providerEventID string) (bool, error) {
	key := fmt.Sprintf("evt:%s:%s", scope, providerEventID)
	first, err := s.redisClient.SetNX(ctx, key, time.Now().Format(time.RFC3339), s.dedupTTL()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record event id: %w", err)
	}
	return first, nil
}

// releaseSeen gives back a consumed event id after a transient downstream
// failure so the gateway's retry is reprocessed instead of classified as a
// duplicate. Validation failures keep the key: they are deterministic and a
// retry cannot succeed.
func (s *ingressService) releaseSeen(scope, providerEventID string) {
	// The request context may already be canceled or past its deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("evt:%s:%s", scope, providerEventID)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Failed to release event id after ingest failure",
			zap.String("providerEventID", providerEventID),
			zap.Error(err))
	}
}

func (s *ingressService) IngestCallEvent(ctx context.Context, ev models.CallEvent) (models.IngestResult, error) {
	if ev.ProviderEventID == "" {
		return models.IngestInvalid, &ValidationError{Field: "provider_event_id", Reason: "required"}
	}
	if ev.ProviderCallID == "" {
		return models.IngestInvalid, &ValidationError{Field: "provider_call_id", Reason: "required"}
	}
	if ev.TenantID == "" {
		return models.IngestInvalid, &ValidationError{Field: "tenant_id", Reason: "required"}
	}
	if ev.Timestamp.IsZero() {
		return models.IngestInvalid, &ValidationError{Field: "timestamp", Reason: "required"}
	}
	switch ev.Status {
	case models.CallStatusRinging, models.CallStatusInProgress, models.CallStatusCompleted,
		models.CallStatusNoAnswer, models.CallStatusBusy, models.CallStatusFailed:
	default:
		return models.IngestInvalid, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", ev.Status)}
	}

	region := s.cfg.Orchestrator.DefaultRegion
	from, ok := phone.NormalizeE164(ev.From, region)
	if !ok {
		return models.IngestInvalid, &ValidationError{Field: "from", Reason: "malformed phone number"}
	}
	to, ok := phone.NormalizeE164(ev.To, region)
	if !ok {
		return models.IngestInvalid, &ValidationError{Field: "to", Reason: "malformed phone number"}
	}
	ev.From = from
	ev.To = to

	first, err := s.markSeen(ctx, ev.TenantID, ev.ProviderEventID)
	if err != nil {
		return "", err
	}
	if !first {
		s.logger.Debug("Duplicate call event accepted silently",
			zap.String("providerEventID", ev.ProviderEventID))
		return models.IngestDuplicate, nil
	}

	if _, err := s.ledger.RecordCallEvent(ctx, ev); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return models.IngestInvalid, err
		}
		s.releaseSeen(ev.TenantID, ev.ProviderEventID)
		return "", err
	}

	return models.IngestAccepted, nil
}

func (s *ingressService) IngestMessageEvent(ctx context.Context, ev models.MessageEvent) (models.IngestResult, error) {
	if ev.ProviderEventID == "" {
		return models.IngestInvalid, &ValidationError{Field: "provider_event_id", Reason: "required"}
	}
	if ev.Body == "" {
		return models.IngestInvalid, &ValidationError{Field: "body", Reason: "required"}
	}

	region := s.cfg.Orchestrator.DefaultRegion
	from, ok := phone.NormalizeE164(ev.From, region)
	if !ok {
		return models.IngestInvalid, &ValidationError{Field: "from", Reason: "malformed phone number"}
	}
	to, ok := phone.NormalizeE164(ev.To, region)
	if !ok {
		return models.IngestInvalid, &ValidationError{Field: "to", Reason: "malformed phone number"}
	}
	ev.From = from
	ev.To = to

	// Message events carry no tenant id; scope dedup by the business number.
	first, err := s.markSeen(ctx, ev.To, ev.ProviderEventID)
	if err != nil {
		return "", err
	}
	if !first {
		s.logger.Debug("Duplicate message event accepted silently",
			zap.String("providerEventID", ev.ProviderEventID))
		return models.IngestDuplicate, nil
	}

	if err := s.conversations.HandleInboundMessage(ctx, ev); err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			return models.IngestInvalid, &ValidationError{Field: "from", Reason: "no conversation for number pair"}
		}
		s.releaseSeen(ev.To, ev.ProviderEventID)
		return "", err
	}

	return models.IngestAccepted, nil
}
