package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/service"
)

func gatewayConfig(url string) *config.GatewayConfig {
	return &config.GatewayConfig{
		URL:     url,
		AuthKey: "test-auth-key",
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      10,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
}

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGatewayDispatcher_Send_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-auth-key", r.Header.Get("x-gateway-auth-key"))

		var req models.GatewaySendRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "+12065550100", req.To)
		assert.Equal(t, "+12065550199", req.From)
		assert.Equal(t, "hello there", req.Body)

		w.WriteHeader(http.StatusOK)
		err = json.NewEncoder(w).Encode(models.GatewaySendResponse{
			Message:           "Accepted",
			ProviderMessageID: "pm-123",
		})
		require.NoError(t, err)
	}))
	defer server.Close()

	redisClient := testRedis(t)
	dispatcher := service.NewGatewayDispatcher(gatewayConfig(server.URL), redisClient, zap.NewNop())

	providerID, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "pm-123", providerID)

	// The provider message id is cached for delivery-status correlation.
	cached, err := redisClient.Get(context.Background(), "dispatch:pm-123").Result()
	require.NoError(t, err)
	assert.Contains(t, cached, "+12065550100")
}

func TestGatewayDispatcher_Send_Accepted202(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.GatewaySendResponse{ProviderMessageID: "pm-202"})
	}))
	defer server.Close()

	dispatcher := service.NewGatewayDispatcher(gatewayConfig(server.URL), testRedis(t), zap.NewNop())

	providerID, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hi")
	require.NoError(t, err)
	assert.Equal(t, "pm-202", providerID)
}

func TestGatewayDispatcher_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := service.NewGatewayDispatcher(gatewayConfig(server.URL), testRedis(t), zap.NewNop())

	_, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hi")
	assert.ErrorIs(t, err, service.ErrDispatchFailed)
}

func TestGatewayDispatcher_Send_EmptyMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.GatewaySendResponse{Message: "ok"})
	}))
	defer server.Close()

	dispatcher := service.NewGatewayDispatcher(gatewayConfig(server.URL), testRedis(t), zap.NewNop())

	_, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hi")
	assert.ErrorIs(t, err, service.ErrDispatchFailed)
}

func TestGatewayDispatcher_CircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := gatewayConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 3

	dispatcher := service.NewGatewayDispatcher(cfg, testRedis(t), zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hi")
		assert.Error(t, err)
	}

	state, _, _ := dispatcher.BreakerStatus()
	assert.Equal(t, service.BreakerOpen, state)

	// Further sends fail fast without reaching the gateway.
	_, err := dispatcher.Send(context.Background(), "+12065550100", "+12065550199", "hi")
	assert.Error(t, err)
}
