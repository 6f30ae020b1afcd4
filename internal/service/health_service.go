package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/callbridge/callbridge/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	sweeper     SweeperService
	dispatcher  Dispatcher
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	sweeper SweeperService,
	dispatcher Dispatcher,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		sweeper:     sweeper,
		dispatcher:  dispatcher,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthHealthy,
	}

	if s.sweeper.IsRunning() {
		status.SweeperStatus = ComponentRunning
	} else {
		status.SweeperStatus = ComponentStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.dispatcher.BreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	// Determine overall health
	if status.DatabaseStatus != ComponentConnected || status.RedisStatus != ComponentConnected {
		status.Status = HealthUnhealthy
	}

	// An open breaker means the gateway is refusing sends; degraded, not down.
	if state == BreakerOpen {
		status.Status = HealthDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() ComponentState {
	if err := s.repo.Ping(); err != nil {
		return ComponentDisconnected
	}
	return ComponentConnected
}

func (s *healthService) checkRedisHealth() ComponentState {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentDisconnected
	}

	return ComponentConnected
}
