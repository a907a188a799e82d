package goConsole

import (
	"context"
	"errors"
	"time"

	"github.com/MrEthical07/goConsole/gateway"
	"github.com/MrEthical07/goConsole/session"
)

const (
	auditEventLoginSuccess            = "login_success"
	auditEventLoginFailure            = "login_failure"
	auditEventLoginVerificationFailed = "login_verification_failed"
	auditEventLogout                  = "logout"
	auditEventSessionRejected         = "session_rejected"
	auditEventRouteAuthorized         = "route_authorized"
	auditEventRouteLoginRedirect      = "route_login_redirect"
	auditEventRouteDenied             = "route_denied"
)

// AuditErrorCode defines a public type used by goConsole APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrInvalidCredentials AuditErrorCode = "invalid_credentials"
	auditErrVerificationFailed AuditErrorCode = "verification_failed"
	auditErrUnauthenticated    AuditErrorCode = "unauthenticated"
	auditErrSessionRejected    AuditErrorCode = "session_rejected"
	auditErrNotLoggedIn        AuditErrorCode = "not_logged_in"
	auditErrIncompleteSession  AuditErrorCode = "incomplete_session"
	auditErrBackendError       AuditErrorCode = "backend_error"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (c *Console) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	username string,
	path string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if c == nil || c.audit == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Username:  username,
		Path:      path,
		Screen:    screenFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	c.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	var statusErr *gateway.StatusError

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return auditErrInvalidCredentials
	case errors.Is(err, ErrLoginVerification):
		return auditErrVerificationFailed
	case errors.Is(err, gateway.ErrUnauthenticated):
		return auditErrUnauthenticated
	case errors.Is(err, ErrSessionRejected):
		return auditErrSessionRejected
	case errors.Is(err, ErrNotLoggedIn):
		return auditErrNotLoggedIn
	case errors.Is(err, session.ErrIncompleteSession):
		return auditErrIncompleteSession
	case errors.As(err, &statusErr):
		return auditErrBackendError
	default:
		return auditErrInternal
	}
}
