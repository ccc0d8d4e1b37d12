package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("session has no access token")

// Session carries the authenticated context the ledger client operates in. It is
// handed to the repository at construction, so the token travels explicitly with
// the component that needs it instead of living in ambient state.
type Session struct {
	accessToken string
}

func New(accessToken string) *Session {
	return &Session{accessToken: accessToken}
}

// Token returns the bearer token to attach to remote calls.
func (s *Session) Token() (string, error) {
	if s.accessToken == "" {
		return "", ErrNoToken
	}
	return s.accessToken, nil
}

// ExpiresAt returns the token's expiry claim when one is present. The token is
// parsed without signature verification; the remote service is the authority on
// validity, this is only used to warn before a doomed request.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s.accessToken == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.accessToken, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token's expiry claim has passed. Tokens without a
// readable expiry are assumed live.
func (s *Session) Expired(now time.Time) bool {
	expiresAt, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return now.After(expiresAt)
}
