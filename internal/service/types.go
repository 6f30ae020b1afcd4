package service

type HealthState string

const (
	HealthHealthy   HealthState = "healthy"
	HealthDegraded  HealthState = "degraded"
	HealthUnhealthy HealthState = "unhealthy"
)

type ComponentState string

const (
	ComponentConnected    ComponentState = "connected"
	ComponentDisconnected ComponentState = "disconnected"
	ComponentRunning      ComponentState = "running"
	ComponentStopped      ComponentState = "stopped"
)

type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerHalfOpen BreakerState = "half-open"
	BreakerOpen     BreakerState = "open"
)

type HealthStatus struct {
	Status               HealthState    `json:"status"`
	SweeperStatus        ComponentState `json:"sweeper_status"`
	DatabaseStatus       ComponentState `json:"database_status"`
	RedisStatus          ComponentState `json:"redis_status"`
	CircuitBreakerStatus string         `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  BreakerState   `json:"circuit_breaker_state,omitempty"`
}

// LeadDetailsPatch carries operator-editable lead fields; nil means unchanged.
type LeadDetailsPatch struct {
	CustomerName       *string
	CustomerAddress    *string
	ProblemDescription *string
	Urgency            *string
	EstimatedValue     *int64
}
