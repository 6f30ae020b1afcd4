package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/service"
	servicemocks "github.com/callbridge/callbridge/internal/service/mocks"
)

type ingressFixture struct {
	ledger *servicemocks.MockCallLedgerService
	convs  *servicemocks.MockConversationService
	svc    service.IngressService
}

func newIngressFixture(t *testing.T, ctrl *gomock.Controller) *ingressFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{
		Orchestrator: config.OrchestratorConfig{
			DedupTTLHours: 168,
			DefaultRegion: "US",
		},
	}

	f := &ingressFixture{
		ledger: servicemocks.NewMockCallLedgerService(ctrl),
		convs:  servicemocks.NewMockConversationService(ctrl),
	}
	f.svc = service.NewIngressService(cfg, redisClient, f.ledger, f.convs, zap.NewNop())
	return f
}

func validCallEvent() models.CallEvent {
	return models.CallEvent{
		ProviderEventID: "ev-1",
		ProviderCallID:  "call-1",
		TenantID:        "tenant-1",
		From:            "(206) 555-0100",
		To:              "+1 206 555 0199",
		Status:          models.CallStatusNoAnswer,
		Timestamp:       time.Now(),
	}
}

func TestIngress_CallEvent_AcceptedAndNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	f.ledger.EXPECT().RecordCallEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ev models.CallEvent) (*models.Call, error) {
			assert.Equal(t, "+12065550100", ev.From)
			assert.Equal(t, "+12065550199", ev.To)
			return &models.Call{ProviderCallID: ev.ProviderCallID}, nil
		})

	result, err := f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)
}

func TestIngress_CallEvent_DuplicateDeliverySilentlyAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	f.ledger.EXPECT().RecordCallEvent(gomock.Any(), gomock.Any()).
		Return(&models.Call{ProviderCallID: "call-1"}, nil)

	result, err := f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)

	// Same provider event id again: no second ledger call.
	result, err = f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.NoError(t, err)
	assert.Equal(t, models.IngestDuplicate, result)
}

func TestIngress_CallEvent_SameEventIDDifferentTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	f.ledger.EXPECT().RecordCallEvent(gomock.Any(), gomock.Any()).
		Return(&models.Call{ProviderCallID: "call-1"}, nil).Times(2)

	result, err := f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)

	// Event ids are only unique per tenant.
	other := validCallEvent()
	other.TenantID = "tenant-2"
	result, err = f.svc.IngestCallEvent(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)
}

func TestIngress_CallEvent_TransientFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	gomock.InOrder(
		f.ledger.EXPECT().RecordCallEvent(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")),
		f.ledger.EXPECT().RecordCallEvent(gomock.Any(), gomock.Any()).
			Return(&models.Call{ProviderCallID: "call-1"}, nil),
	)

	_, err := f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.Error(t, err)

	// The failed attempt released the event id, so the gateway's redelivery
	// is processed rather than swallowed as a duplicate.
	result, err := f.svc.IngestCallEvent(context.Background(), validCallEvent())
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)
}

func TestIngress_CallEvent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CallEvent)
		field  string
	}{
		{
			name:   "missing provider event id",
			mutate: func(ev *models.CallEvent) { ev.ProviderEventID = "" },
			field:  "provider_event_id",
		},
		{
			name:   "missing provider call id",
			mutate: func(ev *models.CallEvent) { ev.ProviderCallID = "" },
			field:  "provider_call_id",
		},
		{
			name:   "missing tenant id",
			mutate: func(ev *models.CallEvent) { ev.TenantID = "" },
			field:  "tenant_id",
		},
		{
			name:   "missing timestamp",
			mutate: func(ev *models.CallEvent) { ev.Timestamp = time.Time{} },
			field:  "timestamp",
		},
		{
			name:   "unknown status",
			mutate: func(ev *models.CallEvent) { ev.Status = "transferred" },
			field:  "status",
		},
		{
			name:   "malformed from number",
			mutate: func(ev *models.CallEvent) { ev.From = "not-a-number" },
			field:  "from",
		},
		{
			name:   "malformed to number",
			mutate: func(ev *models.CallEvent) { ev.To = "12" },
			field:  "to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newIngressFixture(t, ctrl)

			ev := validCallEvent()
			tt.mutate(&ev)

			result, err := f.svc.IngestCallEvent(context.Background(), ev)
			assert.Equal(t, models.IngestInvalid, result)

			ve, ok := service.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestIngress_MessageEvent_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	f.convs.EXPECT().HandleInboundMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ev models.MessageEvent) error {
			assert.Equal(t, "+12065550100", ev.From)
			assert.Equal(t, "+12065550199", ev.To)
			return nil
		})

	result, err := f.svc.IngestMessageEvent(context.Background(), models.MessageEvent{
		ProviderEventID: "msg-ev-1",
		From:            "206-555-0100",
		To:              "+12065550199",
		Body:            "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)
}

func TestIngress_MessageEvent_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	ev := models.MessageEvent{
		ProviderEventID: "msg-ev-1",
		From:            "+12065550100",
		To:              "+12065550199",
		Body:            "hello",
	}

	f.convs.EXPECT().HandleInboundMessage(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.svc.IngestMessageEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)

	result, err = f.svc.IngestMessageEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, models.IngestDuplicate, result)
}

func TestIngress_MessageEvent_TransientFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	ev := models.MessageEvent{
		ProviderEventID: "msg-ev-1",
		From:            "+12065550100",
		To:              "+12065550199",
		Body:            "hello",
	}

	gomock.InOrder(
		f.convs.EXPECT().HandleInboundMessage(gomock.Any(), gomock.Any()).
			Return(errors.New("db down")),
		f.convs.EXPECT().HandleInboundMessage(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	_, err := f.svc.IngestMessageEvent(context.Background(), ev)
	require.Error(t, err)

	result, err := f.svc.IngestMessageEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, models.IngestAccepted, result)
}

func TestIngress_MessageEvent_NoConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngressFixture(t, ctrl)

	f.convs.EXPECT().HandleInboundMessage(gomock.Any(), gomock.Any()).
		Return(service.ErrConversationNotFound)

	result, err := f.svc.IngestMessageEvent(context.Background(), models.MessageEvent{
		ProviderEventID: "msg-ev-2",
		From:            "+12065550100",
		To:              "+12065550199",
		Body:            "hello",
	})
	assert.Equal(t, models.IngestInvalid, result)
	_, ok := service.AsValidationError(err)
	assert.True(t, ok)
}

func TestIngress_MessageEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		ev    models.MessageEvent
		field string
	}{
		{
			name:  "missing event id",
			ev:    models.MessageEvent{From: "+12065550100", To: "+12065550199", Body: "hi"},
			field: "provider_event_id",
		},
		{
			name:  "missing body",
			ev:    models.MessageEvent{ProviderEventID: "e", From: "+12065550100", To: "+12065550199"},
			field: "body",
		},
		{
			name:  "malformed from",
			ev:    models.MessageEvent{ProviderEventID: "e", From: "abc", To: "+12065550199", Body: "hi"},
			field: "from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newIngressFixture(t, ctrl)

			result, err := f.svc.IngestMessageEvent(context.Background(), tt.ev)
			assert.Equal(t, models.IngestInvalid, result)

			ve, ok := service.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestIngress_DedupStoreUnavailableFailsIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	defer func() { _ = redisClient.Close() }()

	cfg := &config.Config{
		Orchestrator: config.OrchestratorConfig{DedupTTLHours: 1, DefaultRegion: "US"},
	}
	svc := service.NewIngressService(cfg, redisClient,
		servicemocks.NewMockCallLedgerService(ctrl),
		servicemocks.NewMockConversationService(ctrl),
		zap.NewNop())

	// The gateway retries on error and the idempotency key makes the retry
	// safe, so a dead dedup store must surface as an error.
	_, err := svc.IngestCallEvent(context.Background(), validCallEvent())
	assert.Error(t, err)
}
