package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/config"
	"github.com/callbridge/callbridge/internal/models"
	"github.com/callbridge/callbridge/internal/service"
)

func TestNLUClient_Analyze_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "nlu-key", r.Header.Get("x-nlu-auth-key"))

		var req models.AnalyzeRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", req.TenantID)
		assert.Len(t, req.History, 2)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.AnalyzeResponse{
			ReplyText:           "We can come by tomorrow morning.",
			Confidence:          0.87,
			ExpectsFurtherReply: true,
		})
	}))
	defer server.Close()

	client := service.NewNLUClient(&config.NLUConfig{URL: server.URL, AuthKey: "nlu-key", Timeout: 5}, zap.NewNop())

	resp, err := client.Analyze(context.Background(), models.AnalyzeRequest{
		TenantID:       "tenant-1",
		ConversationID: "conv-1",
		History: []models.TranscriptEntry{
			{Sender: models.SenderSystem, Body: "Sorry we missed your call!"},
			{Sender: models.SenderCustomer, Body: "Need a plumber"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "We can come by tomorrow morning.", resp.ReplyText)
	assert.True(t, resp.ExpectsFurtherReply)
}

func TestNLUClient_Analyze_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := service.NewNLUClient(&config.NLUConfig{URL: server.URL, Timeout: 5}, zap.NewNop())

	_, err := client.Analyze(context.Background(), models.AnalyzeRequest{TenantID: "tenant-1"})
	assert.Error(t, err)
}

func TestNLUClient_Analyze_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := service.NewNLUClient(&config.NLUConfig{URL: server.URL, Timeout: 5}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Analyze(ctx, models.AnalyzeRequest{TenantID: "tenant-1"})
	assert.ErrorIs(t, err, service.ErrCollaboratorTimeout)
}

func TestAreaValidator_ValidateServiceArea(t *testing.T) {
	tests := []struct {
		name     string
		inArea   bool
		expected bool
	}{
		{name: "inside service area", inArea: true, expected: true},
		{name: "outside service area", inArea: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req models.ServiceAreaRequest
				err := json.NewDecoder(r.Body).Decode(&req)
				require.NoError(t, err)
				assert.Equal(t, "tenant-1", req.TenantID)

				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(models.ServiceAreaResponse{InServiceArea: tt.inArea})
			}))
			defer server.Close()

			validator := service.NewAreaValidator(&config.ServiceAreaConfig{URL: server.URL, Timeout: 5}, zap.NewNop())

			got, err := validator.ValidateServiceArea(context.Background(), "tenant-1", "123 Main St")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAreaValidator_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	validator := service.NewAreaValidator(&config.ServiceAreaConfig{URL: server.URL, Timeout: 5}, zap.NewNop())

	_, err := validator.ValidateServiceArea(context.Background(), "tenant-1", "123 Main St")
	assert.Error(t, err)
}
