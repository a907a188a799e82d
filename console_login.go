package goConsole

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MrEthical07/goConsole/gateway"
	"github.com/MrEthical07/goConsole/permission"
	"github.com/MrEthical07/goConsole/token"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type verifyResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
}

// Login authenticates against the backend token endpoint, persists the
// session, and verifies the stored credential with a round-trip before
// reporting success. A session only survives this call when the backend has
// accepted it; a failed verification rolls the store back to signed-out.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) Login(ctx context.Context, username, password string) (Session, error) {
	if c == nil {
		return Session{}, ErrConsoleNotReady
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var issued tokenResponse
	if err := c.client.PostForm(ctx, "/token", form, &issued); err != nil {
		err = loginError(err)
		c.metricInc(MetricLoginFailure)
		c.emitAudit(ctx, auditEventLoginFailure, false, username, "", err, nil)
		return Session{}, err
	}
	if issued.AccessToken == "" {
		c.metricInc(MetricLoginFailure)
		c.emitAudit(ctx, auditEventLoginFailure, false, username, "", ErrInvalidCredentials, nil)
		return Session{}, ErrInvalidCredentials
	}

	identity := provisionalIdentity(issued.AccessToken, username)
	if err := c.store.Set(issued.AccessToken, identity); err != nil {
		return Session{}, fmt.Errorf("persist session: %w", err)
	}

	// The verification call runs with the just-stored token attached. Any
	// failure here means the backend never accepted the session, so the
	// store rolls back before the error surfaces.
	var verified verifyResponse
	if err := c.client.GetJSON(ctx, "/weblogin/", nil, &verified); err != nil {
		_ = c.store.Clear()
		c.metricInc(MetricLoginVerificationFailed)
		c.emitAudit(ctx, auditEventLoginVerificationFailed, false, username, "", ErrLoginVerification, nil)
		return Session{}, fmt.Errorf("%w: %w", ErrLoginVerification, err)
	}

	if refined := refineIdentity(identity, verified); refined != identity {
		identity = refined
		if err := c.store.Set(issued.AccessToken, identity); err != nil {
			return Session{}, fmt.Errorf("persist session: %w", err)
		}
	}

	c.metricInc(MetricLoginSuccess)
	c.emitAudit(ctx, auditEventLoginSuccess, true, identity.Username, "", nil, func() map[string]string {
		return map[string]string{"mode": identity.Mode.String()}
	})

	return Session{Token: issued.AccessToken, Identity: identity}, nil
}

// Logout clears the persisted session. It never fails on an absent session
// and performs no backend call; the bearer token simply stops being sent.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) Logout(ctx context.Context) error {
	if c == nil {
		return ErrConsoleNotReady
	}

	sess, ok, _ := c.store.Get()
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	username := ""
	if ok {
		username = sess.Identity.Username
	}
	c.metricInc(MetricLogout)
	c.emitAudit(ctx, auditEventLogout, true, username, "", nil, nil)

	return nil
}

// loginError maps transport-level rejection of the credential exchange onto
// the invalid-credentials sentinel. The token endpoint answers 400 or 401
// for bad credentials depending on backend version.
func loginError(err error) error {
	if errors.Is(err, gateway.ErrUnauthenticated) {
		return ErrInvalidCredentials
	}

	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
		return ErrInvalidCredentials
	}

	return err
}

func provisionalIdentity(accessToken, username string) Identity {
	identity := Identity{Username: username, Mode: permission.ModeUnknown}

	claims, err := token.Peek(accessToken)
	if err != nil {
		return identity
	}

	if claims.Username != "" {
		identity.Username = claims.Username
	}
	identity.Name = claims.Name
	identity.Mode = permission.ParseMode(claims.Mode)

	return identity
}

func refineIdentity(identity Identity, verified verifyResponse) Identity {
	if verified.Username != "" {
		identity.Username = verified.Username
	}
	if verified.Name != "" {
		identity.Name = verified.Name
	}
	if mode := permission.ParseMode(verified.Mode); mode != permission.ModeUnknown {
		identity.Mode = mode
	}
	return identity
}
