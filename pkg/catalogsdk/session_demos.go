package catalogsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListDemos requires catalog:read. Viewers only ever get active demos.
func (s *Session) ListDemos(ctx context.Context, state, vertical, horizontal string) (*ListDemosResponse, error) {
	q := url.Values{}
	for k, v := range map[string]string{"state": state, "vertical": vertical, "horizontal": horizontal} {
		if v != "" {
			q.Set(k, v)
		}
	}
	path := "/v1/demos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "catalog:read")
	if err != nil {
		return nil, err
	}
	var out ListDemosResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDemo requires catalog:read.
func (s *Session) GetDemo(ctx context.Context, id string) (*DemoInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/demos/"+url.PathEscape(id), nil, "catalog:read")
	if err != nil {
		return nil, err
	}
	var out DemoInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDemo requires admin:write.
func (s *Session) CreateDemo(ctx context.Context, req CreateDemoRequest) (*DemoInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/demos", req, "admin:write")
	if err != nil {
		return nil, err
	}
	var out DemoInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDemo requires admin:write.
func (s *Session) UpdateDemo(ctx context.Context, id string, req UpdateDemoRequest) (*DemoInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/demos/"+url.PathEscape(id), req, "admin:write")
	if err != nil {
		return nil, err
	}
	var out DemoInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDemo requires admin:write.
func (s *Session) DeleteDemo(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/demos/"+url.PathEscape(id), nil, "admin:write")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Activity
// ============================================================================

// RecordActivity logs an event. Viewers need activity:write and are limited
// to demo_opened and demo_closed.
func (s *Session) RecordActivity(ctx context.Context, req RecordActivityRequest) (*ActivityInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/activity", req)
	if err != nil {
		return nil, err
	}
	var out ActivityInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActivity requires admin:read. Results are newest first.
func (s *Session) ListActivity(ctx context.Context, f ActivityQuery) (*ListActivityResponse, error) {
	q := url.Values{}
	if f.ClientID != "" {
		q.Set("client_id", f.ClientID)
	}
	if f.DemoID != "" {
		q.Set("demo_id", f.DemoID)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	path := "/v1/activity"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ListActivityResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientUsage requires admin:read. Rows are ordered busiest first.
func (s *Session) ClientUsage(ctx context.Context) (*ClientUsageListResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/stats/client-usage", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ClientUsageListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientUsageFor requires admin:read.
func (s *Session) ClientUsageFor(ctx context.Context, clientID string) (*ClientUsageInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/stats/client-usage/"+url.PathEscape(clientID), nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ClientUsageInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityStats requires admin:read.
func (s *Session) ActivityStats(ctx context.Context) (*ActivityStatsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/activity/stats", nil, "admin:read")
	if err != nil {
		return nil, err
	}
	var out ActivityStatsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
