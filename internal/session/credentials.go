package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the access/refresh pair for one signed-in user. Both tokens
// are opaque to the client; AccessExpiry only peeks into JWTs.
type Credentials struct {
	AccessToken  string `json:"access" yaml:"access"`
	RefreshToken string `json:"refresh" yaml:"refresh"`
}

func (c Credentials) IsZero() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// AccessExpiry returns the exp claim of the access token. The signature is
// not verified: the value only drives client-side scheduling, the server
// remains the authority.
func (c Credentials) AccessExpiry() (time.Time, bool) {
	if c.AccessToken == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// ExpiresWithin reports whether the access token is a JWT that expires
// before now+leeway. Opaque tokens never report true.
func (c Credentials) ExpiresWithin(now time.Time, leeway time.Duration) bool {
	exp, ok := c.AccessExpiry()
	if !ok {
		return false
	}
	return !now.Add(leeway).Before(exp)
}
