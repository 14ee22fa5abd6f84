package catalogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateRequest opens a renewal or revocation request. Viewers always act
// on themselves and may leave ClientID empty.
func (s *Session) CreateRequest(ctx context.Context, req CreateRequestRequest) (*RequestInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/requests", req)
	if err != nil {
		return nil, err
	}
	var out RequestInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRequests requires admin:read. An empty state lists everything.
func (s *Session) ListRequests(ctx context.Context, state string) (*ListRequestsResponse, error) {
	path := "/v1/requests"
	if state != "" {
		path += "?state=" + url.QueryEscape(state)
	}
	return s.listRequests(ctx, path, "admin:read")
}

// MyRequests lists the signed-in client's own requests, newest first.
func (s *Session) MyRequests(ctx context.Context) (*ListRequestsResponse, error) {
	return s.listRequests(ctx, "/v1/me/requests", "profile:read")
}

func (s *Session) listRequests(ctx context.Context, path, scope string) (*ListRequestsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, scope)
	if err != nil {
		return nil, err
	}
	var out ListRequestsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingRequests is the admin review queue, oldest first.
func (s *Session) PendingRequests(ctx context.Context) (*ListPendingResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/requests/pending", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ListPendingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestCounts requires admin:read.
func (s *Session) RequestCounts(ctx context.Context) (*RequestCountsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/requests/counts", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out RequestCountsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRequest works for admins and for the owning viewer.
func (s *Session) GetRequest(ctx context.Context, id string) (*RequestInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/requests/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var out RequestInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveRequest requires admin:write. newExpiration is an optional
// ISO-8601 override; empty applies the standard renewal period.
func (s *Session) ApproveRequest(ctx context.Context, id, newExpiration string) (*DecisionResponse, error) {
	return s.decide(ctx, id, "approve", ApproveRequest{NewExpiration: newExpiration})
}

// RejectRequest requires admin:write.
func (s *Session) RejectRequest(ctx context.Context, id string) (*DecisionResponse, error) {
	return s.decide(ctx, id, "reject", nil)
}

func (s *Session) decide(ctx context.Context, id, action string, payload any) (*DecisionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/requests/"+url.PathEscape(id)+"/"+action, payload, "admin:write")
	if err != nil {
		return nil, err
	}
	var out DecisionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
