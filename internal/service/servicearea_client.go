package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
)

// areaClient calls the tenant service-area validator. It tags leads only and
// never gates conversation progress.
type areaClient struct {
	cfg        *config.ServiceAreaConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewAreaValidator(cfg *config.ServiceAreaConfig, logger *zap.Logger) AreaValidator {
	return &areaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
	}
}

func (c *areaClient) ValidateServiceArea(ctx context.Context, tenantID, address string) (bool, error) {
	reqBody := models.ServiceAreaRequest{
		TenantID: tenantID,
		Address:  address,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to marshal service-area request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create service-area request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("failed to call service-area validator: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("service-area validator returned status %d", resp.StatusCode)
	}

	var areaResp models.ServiceAreaResponse
	if err := json.NewDecoder(resp.Body).Decode(&areaResp); err != nil {
		return false, fmt.Errorf("failed to decode service-area response: %w", err)
	}

	return areaResp.InServiceArea, nil
}
