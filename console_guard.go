package goConsole

import "context"

// Authorize decides whether the current session may enter path. The decision
// resolves entirely from cached state: no network call, no token validation.
//
//	DecisionAuthorized      — render the screen.
//	DecisionRedirectLogin   — no usable session; go to [Console.LoginPath].
//	DecisionRedirectDefault — authenticated but not allowed; go to
//	                          [Console.DefaultPath].
//
// The login path itself is always authorized so a signed-out user can reach
// the form. Authentication is checked before authorization: an anonymous
// visitor is sent to login even for paths their eventual mode could not use.
//
// Authorize may return an error when input validation, dependency calls, or security checks fail.
// Authorize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) Authorize(ctx context.Context, path string) (Decision, error) {
	if c == nil {
		return DecisionRedirectLogin, ErrConsoleNotReady
	}

	if path == c.config.Routes.LoginPath {
		return DecisionAuthorized, nil
	}

	sess, ok, err := c.store.Get()
	if err != nil {
		return DecisionRedirectLogin, err
	}
	if !ok {
		c.metricInc(MetricRouteLoginRedirect)
		c.emitAudit(ctx, auditEventRouteLoginRedirect, false, "", path, ErrNotLoggedIn, nil)
		return DecisionRedirectLogin, nil
	}

	if !c.registry.Allowed(path, sess.Identity.Mode) {
		c.metricInc(MetricRouteDenied)
		c.emitAudit(ctx, auditEventRouteDenied, false, sess.Identity.Username, path, nil, func() map[string]string {
			return map[string]string{"mode": sess.Identity.Mode.String()}
		})
		return DecisionRedirectDefault, nil
	}

	c.metricInc(MetricRouteAuthorized)
	c.emitAudit(ctx, auditEventRouteAuthorized, true, sess.Identity.Username, path, nil, nil)
	return DecisionAuthorized, nil
}
