// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Gateway      GatewayConfig      `mapstructure:"gateway"`
	NLU          NLUConfig          `mapstructure:"nlu"`
	ServiceArea  ServiceAreaConfig  `mapstructure:"service_area"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Middleware   MiddlewareConfig   `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GatewayConfig configures the telephony gateway send-SMS endpoint.
type GatewayConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// NLUConfig configures the automated-response collaborator.
type NLUConfig struct {
	URL     string `mapstructure:"url"`
	AuthKey string `mapstructure:"auth_key"`
	Timeout int    `mapstructure:"timeout"`
}

// ServiceAreaConfig configures the tenant service-area validator used to tag leads.
type ServiceAreaConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

// OrchestratorConfig holds the timing policy of the conversation engine.
type OrchestratorConfig struct {
	HandoffDelaySeconds   int    `mapstructure:"handoff_delay_seconds"`
	EmergencyDelaySeconds int    `mapstructure:"emergency_delay_seconds"`
	InactivityMinutes     int    `mapstructure:"inactivity_minutes"`
	SweepIntervalMinutes  int    `mapstructure:"sweep_interval_minutes"`
	DedupTTLHours         int    `mapstructure:"dedup_ttl_hours"`
	DefaultRegion         string `mapstructure:"default_region"`
	Greeting              string `mapstructure:"greeting"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("gateway.timeout", 30)
	viper.SetDefault("gateway.circuit_breaker.max_requests", 3)
	viper.SetDefault("gateway.circuit_breaker.interval", 60)
	viper.SetDefault("gateway.circuit_breaker.timeout", 60)
	viper.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("nlu.timeout", 15)
	viper.SetDefault("service_area.timeout", 10)
	viper.SetDefault("orchestrator.handoff_delay_seconds", 60)
	viper.SetDefault("orchestrator.emergency_delay_seconds", 2)
	viper.SetDefault("orchestrator.inactivity_minutes", 30)
	viper.SetDefault("orchestrator.sweep_interval_minutes", 5)
	viper.SetDefault("orchestrator.dedup_ttl_hours", 168)
	viper.SetDefault("orchestrator.default_region", "US")
	viper.SetDefault("orchestrator.greeting", "Sorry we missed your call! Reply here and we'll get right back to you.")
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
