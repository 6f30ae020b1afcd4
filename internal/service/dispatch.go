package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
)

// gatewayDispatcher sends SMS through the telephony gateway webhook. Failures
// and timeouts surface to the caller; the caller records the failed delivery
// but never rolls back an authority transition because of it.
type gatewayDispatcher struct {
	cfg            *config.GatewayConfig
	httpClient     *http.Client
	redisClient    *redis.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewGatewayDispatcher(cfg *config.GatewayConfig, redisClient *redis.Client, logger *zap.Logger) Dispatcher {
	cb := NewCircuitBreaker(&cfg.CircuitBreaker, logger)

	return &gatewayDispatcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		redisClient:    redisClient,
		logger:         logger,
		circuitBreaker: cb,
	}
}

// Send delivers one SMS and returns the provider message id.
func (d *gatewayDispatcher) Send(ctx context.Context, to, from, body string) (string, error) {
	var providerMessageID string

	err := d.circuitBreaker.Execute(ctx, func() error {
		reqBody := models.GatewaySendRequest{
			To:   to,
			From: from,
			Body: body,
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-gateway-auth-key", d.cfg.AuthKey)

		resp, err := d.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: gateway send", ErrCollaboratorTimeout)
			}
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				d.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var sendResp models.GatewaySendResponse
		if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		if sendResp.ProviderMessageID == "" {
			return fmt.Errorf("gateway returned empty message id")
		}

		providerMessageID = sendResp.ProviderMessageID
		return nil
	})

	if err != nil {
		requests, failures := d.circuitBreaker.GetCounts()
		d.logger.Error("Failed to dispatch message",
			zap.String("to", to),
			zap.Error(err),
			zap.String("circuitBreakerState", string(d.circuitBreaker.GetState())),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))

		if errors.Is(err, ErrCollaboratorTimeout) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	// Cache provider message id for delivery-status correlation.
	cacheKey := fmt.Sprintf("dispatch:%s", providerMessageID)
	cacheValue := fmt.Sprintf("%s:%s", to, time.Now().Format(time.RFC3339))
	if err := d.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
		d.logger.Warn("Failed to cache dispatched message id",
			zap.String("providerMessageID", providerMessageID),
			zap.Error(err))
	}

	d.logger.Info("Message dispatched",
		zap.String("to", to),
		zap.String("providerMessageID", providerMessageID),
		zap.String("circuitBreakerState", string(d.circuitBreaker.GetState())))

	return providerMessageID, nil
}

func (d *gatewayDispatcher) BreakerStatus() (state BreakerState, requests uint32, failures uint32) {
	state = d.circuitBreaker.GetState()
	requests, failures = d.circuitBreaker.GetCounts()
	return
}
