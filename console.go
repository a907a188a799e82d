package goConsole

import (
	"time"

	"github.com/MrEthical07/goConsole/gateway"
	internalaudit "github.com/MrEthical07/goConsole/internal/audit"
	"github.com/MrEthical07/goConsole/permission"
	"github.com/MrEthical07/goConsole/session"
)

// Console defines a public type used by goConsole APIs.
//
// Console instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Console struct {
	config   Config
	store    *session.Store
	registry *permission.Registry
	menu     []MenuEntry
	client   *gateway.Client
	audit    *internalaudit.Dispatcher
	metrics  *Metrics

	onSessionRejected func()
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// LoginPath returns the configured login screen path.
func (c *Console) LoginPath() string {
	return c.config.Routes.LoginPath
}

// DefaultPath returns the configured post-login landing path.
func (c *Console) DefaultPath() string {
	return c.config.Routes.DefaultPath
}

// Routes returns the registered route rules in registration order.
func (c *Console) Routes() []RouteRule {
	return c.registry.Rules()
}

// CurrentSession describes the currentsession operation and its observable behavior.
//
// CurrentSession may return an error when input validation, dependency calls, or security checks fail.
// CurrentSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) CurrentSession() (Session, bool, error) {
	if c == nil {
		return Session{}, false, ErrConsoleNotReady
	}
	return c.store.Get()
}

// handleSessionRejected runs inside the gateway's 401 hook: clear first so
// the very next Authorize call already redirects, then notify the shell.
// A 401 with no stored session (bad credentials on the token endpoint) is
// not a session rejection; the user is already on the login form.
func (c *Console) handleSessionRejected() {
	sess, ok, _ := c.store.Get()
	if !ok {
		return
	}
	_ = c.store.Clear()

	c.metricInc(MetricSessionRejected)
	c.emitAudit(nil, auditEventSessionRejected, false, sess.Identity.Username, "", ErrSessionRejected, nil)

	if c.onSessionRejected != nil {
		c.onSessionRejected()
	}
}

func (c *Console) metricInc(id MetricID) {
	if c == nil {
		return
	}
	c.metrics.Inc(id)
}

func (c *Console) observeRequestLatency(d time.Duration) {
	if c == nil {
		return
	}
	c.metrics.Observe(MetricRequestLatency, d)
}
