package catalogsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrSessionExpired is returned once the access token has run out. Log in
// again to continue.
var ErrSessionExpired = errors.New("catalogsdk: session expired")

// Session is an authenticated caller, admin or viewer.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
	role        string
	subject     string
	expiresAt   time.Time
	scopes      map[string]bool
}

func newSession(client *SDKClient, tok LoginResponse) *Session {
	// 30 second buffer so a request never leaves with a token about to lapse.
	expiresAt := time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - 30*time.Second)

	return &Session{
		client:      client,
		accessToken: tok.AccessToken,
		role:        tok.Role,
		subject:     tok.Subject,
		expiresAt:   expiresAt,
		scopes:      parseScopes(tok.Scope),
	}
}

func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.accessToken, nil
}

// AccessToken returns the raw bearer token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Role is "admin" or "viewer".
func (s *Session) Role() string { return s.role }

// Subject is the admin or client id the token was issued to.
func (s *Session) Subject() string { return s.subject }

func (s *Session) IsAdmin() bool { return s.role == "admin" }

// HasScope returns true if the session has the specified scope.
func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for _, scope := range required {
		if !s.scopes[scope] {
			missing = append(missing, scope)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required scope(s): %s", ErrForbidden, strings.Join(missing, ", "))
	}
	return nil
}

// Logout records the sign-out. The token stays valid until it expires but
// the session refuses further use.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
	return nil
}
