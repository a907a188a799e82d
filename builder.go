package goConsole

import (
	"fmt"

	"github.com/MrEthical07/goConsole/gateway"
	"github.com/MrEthical07/goConsole/permission"
	"github.com/MrEthical07/goConsole/session"
)

// Builder defines a public type used by goConsole APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	storage session.Storage
	routes  []RouteRule
	menu    []MenuEntry

	auditSink         AuditSink
	onSessionRejected func()

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
//
// WithStorage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStorage(storage session.Storage) *Builder {
	b.storage = storage
	return b
}

// WithRoutes describes the withroutes operation and its observable behavior.
//
// WithRoutes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRoutes(routes []RouteRule) *Builder {
	b.routes = routes
	return b
}

// WithMenu describes the withmenu operation and its observable behavior.
//
// WithMenu does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMenu(menu []MenuEntry) *Builder {
	b.menu = menu
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// WithSessionRejectedHandler installs the callback fired after the backend
// rejects the stored credential and the session has been cleared. The
// application shell navigates to the login screen here.
//
// WithSessionRejectedHandler does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithSessionRejectedHandler(fn func()) *Builder {
	b.onSessionRejected = fn
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Console, error) {
	if b.built {
		return nil, fmt.Errorf("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.storage == nil {
		return nil, ErrStorageRequired
	}

	if len(b.routes) == 0 {
		return nil, ErrRoutesRequired
	}

	// -------- ROUTE REGISTRY --------
	registry := permission.NewRegistry(cfg.Routes.UnknownPathPolicy)

	for _, rule := range b.routes {
		if rule.Path == cfg.Routes.LoginPath {
			return nil, ErrLoginPathRouted
		}
		if err := registry.Register(rule.Path, rule.Modes...); err != nil {
			return nil, err
		}
	}

	if cfg.Routes.UnknownPathPolicy == UnknownPathDeny {
		if _, ok := registry.Lookup(cfg.Routes.DefaultPath); !ok {
			return nil, ErrDefaultPathUnrouted
		}
	}

	registry.Freeze()

	// -------- MENU / ROUTE CONTAINMENT --------
	// A menu entry may be narrower than its route rule (a link hidden from a
	// mode that could still deep-link in), never wider: a visible link to a
	// screen the guard would bounce is a dead entry.
	menu := make([]MenuEntry, len(b.menu))
	copy(menu, b.menu)

	for _, entry := range menu {
		modes, ok := registry.Lookup(entry.Path)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuRouteMismatch, entry.Path)
		}
		for _, mode := range entry.AllowedModes {
			if !mode.In(modes) {
				return nil, fmt.Errorf("%w: %s menu admits %s beyond its route rule", ErrMenuRouteMismatch, entry.Path, mode)
			}
		}
	}

	console := &Console{
		config:            cfg,
		store:             session.NewStore(b.storage),
		registry:          registry,
		menu:              menu,
		onSessionRejected: b.onSessionRejected,
	}

	console.metrics = NewMetrics(cfg.Metrics)
	console.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	console.store.ObserveSelfHeal(func() { console.metricInc(MetricSessionSelfHealed) })

	client, err := gateway.NewClient(gateway.Config{
		BaseURL:   cfg.Gateway.BaseURL,
		Timeout:   cfg.Gateway.RequestTimeout,
		UserAgent: cfg.Gateway.UserAgent,
	}, console.store, gateway.Hooks{
		OnUnauthenticated: func() {
			console.metricInc(MetricGatewayUnauthenticated)
			console.handleSessionRejected()
		},
		OnRequest:      func() { console.metricInc(MetricGatewayRequest) },
		OnFailure:      func() { console.metricInc(MetricGatewayFailure) },
		ObserveLatency: console.observeRequestLatency,
	})
	if err != nil {
		return nil, err
	}
	console.client = client

	b.built = true

	return console, nil
}
