package internaldefs

import (
	goConsole "github.com/MrEthical07/goConsole"
)

// CounterDef defines a public type used by goConsole APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goConsole APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the console core.
var CounterDefs = []CounterDef{
	{ID: goConsole.MetricLoginSuccess, Name: "goconsole_login_success_total", Help: "Successful login attempts."},
	{ID: goConsole.MetricLoginFailure, Name: "goconsole_login_failure_total", Help: "Failed login attempts."},
	{ID: goConsole.MetricLoginVerificationFailed, Name: "goconsole_login_verification_failed_total", Help: "Logins rolled back after a failed verification round-trip."},
	{ID: goConsole.MetricLogout, Name: "goconsole_logout_total", Help: "Logout operations."},
	{ID: goConsole.MetricSessionRejected, Name: "goconsole_session_rejected_total", Help: "Sessions cleared after backend rejection."},
	{ID: goConsole.MetricSessionSelfHealed, Name: "goconsole_session_self_healed_total", Help: "Torn session records erased on read."},
	{ID: goConsole.MetricGatewayRequest, Name: "goconsole_gateway_request_total", Help: "Backend requests issued."},
	{ID: goConsole.MetricGatewayFailure, Name: "goconsole_gateway_failure_total", Help: "Backend requests that failed."},
	{ID: goConsole.MetricGatewayUnauthenticated, Name: "goconsole_gateway_unauthenticated_total", Help: "Backend requests rejected with 401."},
	{ID: goConsole.MetricRouteAuthorized, Name: "goconsole_route_authorized_total", Help: "Route entries authorized."},
	{ID: goConsole.MetricRouteLoginRedirect, Name: "goconsole_route_login_redirect_total", Help: "Route entries redirected to login."},
	{ID: goConsole.MetricRouteDenied, Name: "goconsole_route_denied_total", Help: "Route entries denied and redirected to the default path."},
	{ID: goConsole.MetricMenuFiltered, Name: "goconsole_menu_filtered_total", Help: "Menu filter evaluations that produced entries."},
}

// HistogramDefs is an exported constant or variable used by the console core.
var HistogramDefs = []HistogramDef{
	{ID: goConsole.MetricRequestLatency, Name: "goconsole_request_latency_seconds", Help: "Backend request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the console core.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the console core.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
