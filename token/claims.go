package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is an exported constant or variable used by the console core.
var ErrNotJWT = errors.New("token is not a JWT")

// Claims carries the display-identity fields a console backend commonly
// embeds in its access tokens.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	Username string
	Name     string
	Mode     string
}

type identityClaims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	jwt.RegisteredClaims
}

// Peek decodes the claims of a JWT-shaped bearer token without verifying its
// signature. Opaque (non-JWT) tokens return [ErrNotJWT]; callers fall back
// to the identity the verification endpoint reports.
func Peek(raw string) (Claims, error) {
	parser := jwt.NewParser()

	var claims identityClaims
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}

	return Claims{
		Username: username,
		Name:     claims.Name,
		Mode:     claims.Mode,
	}, nil
}
