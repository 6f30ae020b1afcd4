package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/callbridge/callbridge/internal/middleware"
)

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		if requestID == "" {
			t.Error("Expected request ID in context")
		}

		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("Expected request ID in response header")
		}
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
}

func TestRequestID_AdoptsGatewayDeliveryID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := middleware.GetRequestID(r.Context()); got != "dlv-42" {
			t.Errorf("Expected delivery id as request id, got %q", got)
		}
	}))

	req := httptest.NewRequest("POST", "/api/v1/events/call", nil)
	req.Header.Set(middleware.DeliveryIDHeader, "dlv-42")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) != "dlv-42" {
		t.Error("Expected delivery id echoed in response header")
	}
}

func TestRequestID_ExplicitHeaderWinsOverDeliveryID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("POST", "/api/v1/events/call", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	req.Header.Set(middleware.DeliveryIDHeader, "dlv-42")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) != "req-1" {
		t.Error("Expected explicit request id to win")
	}
}

func TestRateLimiter(t *testing.T) {
	// One request per second per source.
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Second immediate request from the same source is throttled.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After on 429")
	}

	// Wait and try again.
	time.Sleep(time.Second)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 after waiting, got %d", w.Code)
	}
}

func TestRateLimiter_KeysByForwardedFor(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Both deliveries arrive from the load balancer address but carry
	// distinct source addresses, so neither is throttled.
	first := httptest.NewRequest("POST", "/api/v1/events/call", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	first.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, first)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	second := httptest.NewRequest("POST", "/api/v1/events/call", nil)
	second.RemoteAddr = "10.0.0.1:5000"
	second.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, second)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for distinct source, got %d", w.Code)
	}

	// A repeat from the first source is throttled.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, first)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 for repeated source, got %d", w.Code)
	}
}

func TestRateLimiter_ExemptPath(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1, "/health")

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "127.0.0.1:1234"

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 for exempt path, got %d", w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	config := middleware.DefaultCORSConfig()
	handler := middleware.CORS(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Preflight for the lead patch endpoint.
	req := httptest.NewRequest("OPTIONS", "/api/v1/leads/lead-1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for preflight, got %d", w.Code)
	}

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("Expected CORS origin header")
	}

	allowed := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(allowed, http.MethodPatch) {
		t.Errorf("Expected PATCH in allowed methods, got %q", allowed)
	}
}

func TestRecovery(t *testing.T) {
	logger := zap.NewNop()

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	// Should not panic.
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 after panic, got %d", w.Code)
	}
}

func TestTimeout_OverrunAnswersGatewayTimeout(t *testing.T) {
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))

	req := httptest.NewRequest("POST", "/api/v1/events/call", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("Expected status 504 on timeout, got %d", w.Code)
	}
}
