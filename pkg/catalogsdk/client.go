package catalogsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the catalog service. It covers the public endpoints
// and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes Session methods fail locally when the token lacks a
	// scope the endpoint needs. Tests that exercise server-side checks turn
	// it off. Default: true
	CheckScopes bool
}

// NewSDKClient creates a client with scope checking enabled.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}

// Login exchanges email and password for a Session. Works for admins and
// clients alike; the session's Role tells them apart.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	body, headers, err := jsonBody(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", body, headers)
	if err != nil {
		return nil, err
	}

	var tok LoginResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// NewSessionFromToken wraps a token obtained elsewhere. Without a refresh
// flow the session simply fails once the token expires.
func (c *SDKClient) NewSessionFromToken(tok LoginResponse) *Session {
	return newSession(c, tok)
}

// Bootstrap creates the first admin using the pre-shared bootstrap token.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*AdminInfo, error) {
	body, headers, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	headers["X-Bootstrap-Token"] = token

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap", body, headers)
	if err != nil {
		return nil, err
	}

	var admin AdminInfo
	if err := decodeJSON(resp, &admin, http.StatusCreated); err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetJWKS fetches the token verification keys.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return nil, err
	}

	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
