package catalogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Admins
// ============================================================================

// ListAdmins requires admin:read.
func (s *Session) ListAdmins(ctx context.Context) (*ListAdminsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admins", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ListAdminsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdmin requires admin:write.
func (s *Session) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*AdminInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/admins", req, "admin:write")
	if err != nil {
		return nil, err
	}
	var out AdminInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Clients
// ============================================================================

// ListClients requires admin:read. status and email are optional filters.
func (s *Session) ListClients(ctx context.Context, status, email string) (*ListClientsResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if email != "" {
		q.Set("email", email)
	}
	path := "/v1/clients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ListClientsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClient works for admins and for a viewer reading their own record.
func (s *Session) GetClient(ctx context.Context, id string) (*ClientInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient requires admin:write.
func (s *Session) CreateClient(ctx context.Context, req CreateClientRequest) (*CreateClientResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/clients", req, "admin:write")
	if err != nil {
		return nil, err
	}
	var out CreateClientResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient requires admin:write.
func (s *Session) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (*ClientInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/clients/"+url.PathEscape(id), req, "admin:write")
	if err != nil {
		return nil, err
	}
	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient requires admin:write.
func (s *Session) DeleteClient(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/clients/"+url.PathEscape(id), nil, "admin:write")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RevokeClient ends a client's access now. Requires admin:write.
func (s *Session) RevokeClient(ctx context.Context, id string) (*ClientInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/clients/"+url.PathEscape(id)+"/revoke", nil, "admin:write")
	if err != nil {
		return nil, err
	}
	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientStats requires admin:read.
func (s *Session) ClientStats(ctx context.Context) (*ClientStatsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/stats/clients", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ClientStatsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the signed-in client's own view. Requires profile:read.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil, "profile:read")
	if err != nil {
		return nil, err
	}
	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
