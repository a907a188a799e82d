package goConsole

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/MrEthical07/goConsole/permission"
)

// Config defines a public type used by goConsole APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Gateway GatewayConfig
	Routes  RoutesConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
GATEWAY CONFIG
====================================
*/

// GatewayConfig defines a public type used by goConsole APIs.
//
// GatewayConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GatewayConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

/*
====================================
ROUTES CONFIG
====================================
*/

// UnknownPathPolicy defines a public type used by goConsole APIs.
type UnknownPathPolicy = permission.UnknownPathPolicy

const (
	// UnknownPathDeny is an exported constant or variable used by the console core.
	UnknownPathDeny = permission.UnknownPathDeny
	// UnknownPathAllow is an exported constant or variable used by the console core.
	UnknownPathAllow = permission.UnknownPathAllow
)

// RoutesConfig defines a public type used by goConsole APIs.
//
// RoutesConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RoutesConfig struct {
	LoginPath         string
	DefaultPath       string
	UnknownPathPolicy UnknownPathPolicy
}

// AuditConfig defines a public type used by goConsole APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goConsole APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration: login at /login, landing
// at /customers, unknown paths denied, observability off.
//
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Gateway: GatewayConfig{
			RequestTimeout: 20 * time.Second,
			UserAgent:      "goConsole",
		},
		Routes: RoutesConfig{
			LoginPath:         "/login",
			DefaultPath:       "/customers",
			UnknownPathPolicy: UnknownPathDeny,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Gateway
	if strings.TrimSpace(c.Gateway.BaseURL) == "" {
		return errors.New("Gateway BaseURL must be set")
	}
	if u, err := url.Parse(c.Gateway.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("Gateway BaseURL must be an absolute URL")
	}
	if c.Gateway.RequestTimeout <= 0 {
		return errors.New("Gateway RequestTimeout must be > 0")
	}

	// Routes
	if !strings.HasPrefix(c.Routes.LoginPath, "/") {
		return errors.New("Routes LoginPath must start with /")
	}
	if !strings.HasPrefix(c.Routes.DefaultPath, "/") {
		return errors.New("Routes DefaultPath must start with /")
	}
	if c.Routes.LoginPath == c.Routes.DefaultPath {
		return errors.New("Routes LoginPath and DefaultPath must differ")
	}
	if c.Routes.UnknownPathPolicy != UnknownPathDeny && c.Routes.UnknownPathPolicy != UnknownPathAllow {
		return errors.New("Routes UnknownPathPolicy is invalid")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}

	return nil
}
