package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if len(c.Kafka.BrokerList()) > 0 && strings.TrimSpace(c.Kafka.Topic) == "" {
		return fmt.Errorf("kafka: topic is required when brokers are set")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d, max %d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (a *AdminConfig) validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("username must not be empty")
	}
	if a.Password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.LoginMax <= 0 || r.TicketMax <= 0 {
		return fmt.Errorf("login_max and ticket_max must be > 0 (got %d, %d)", r.LoginMax, r.TicketMax)
	}
	if r.LoginWindow <= 0 || r.TicketWindow <= 0 {
		return fmt.Errorf("login_window and ticket_window must be > 0 (got %v, %v)", r.LoginWindow, r.TicketWindow)
	}
	return nil
}
