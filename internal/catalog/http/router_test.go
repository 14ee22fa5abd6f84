package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cataloghttp "github.com/aussiebroadwan/democat/internal/catalog/http"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

const (
	adminEmail    = "ana@example.com"
	adminPassword = "admin-secret"
	bootToken     = "boot-token"
)

type harness struct {
	t      *testing.T
	router *cataloghttp.Router
}

func newHarness(t *testing.T, bootstrap bool) *harness {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := service.FixedClock(today)
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer: "democat-test", Audience: []string{"democat"}, NumKeys: 1, Now: clock.Now,
	})
	require.NoError(t, err)

	hasher := cryptox.NewPasswordHasher("test-pepper")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := cataloghttp.NewRouter(km.KeySet, km.Verifier, "test", st, logger)
	r.AuthService = &service.AuthService{
		Store: st, Hasher: hasher, KeyManager: km,
		Issuer: "democat-test", Audience: []string{"democat"}, AccessTTL: time.Hour, Clock: clock,
	}
	r.BootstrapService = &service.BootstrapService{Store: st, Hasher: hasher, Token: bootToken, Clock: clock}
	r.AdminService = &service.AdminService{Store: st, Hasher: hasher, Clock: clock}
	r.ClientService = &service.ClientService{Store: st, Hasher: hasher, Clock: clock}
	r.RequestService = &service.RequestService{Store: st, Clock: clock}
	r.DemoService = service.NewDemoService(st, clock, 16, time.Minute)
	r.ActivityService = &service.ActivityService{Store: st, Clock: clock}
	r.ApplyRoutes()

	h := &harness{t: t, router: r}
	if bootstrap {
		rec := h.do(http.MethodPost, "/v1/bootstrap", "", catalogsdk.BootstrapRequest{
			Name: "Ana Admin", Email: adminEmail, Password: adminPassword,
		}, "X-Bootstrap-Token", bootToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	return h
}

// do sends a request through the full router. headers are key/value pairs.
func (h *harness) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	h.t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.RemoteAddr = "192.0.2.1:40000"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder, status int) T {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	body := decode[catalogsdk.ErrorResponse](t, rec, status)
	require.Equal(t, code, body.Error)
}

func (h *harness) login(email, password string) catalogsdk.LoginResponse {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/v1/auth/login", "", catalogsdk.LoginRequest{Email: email, Password: password})
	return decode[catalogsdk.LoginResponse](h.t, rec, http.StatusOK)
}

func (h *harness) adminToken() string {
	return h.login(adminEmail, adminPassword).AccessToken
}

// createClient registers a client whose access ends on expiration
// (YYYY-MM-DD).
func (h *harness) createClient(token, email, expiration string) catalogsdk.ClientInfo {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/v1/clients", token, catalogsdk.CreateClientRequest{
		Name:             "Rui Client",
		Email:            email,
		Password:         "client-secret",
		RegistrationDate: "2025-04-10",
		ExpirationDate:   expiration,
	})
	return decode[catalogsdk.CreateClientResponse](h.t, rec, http.StatusCreated).Client
}

func TestSystemEndpoints(t *testing.T) {
	h := newHarness(t, false)

	live := decode[catalogsdk.HealthResponse](t, h.do(http.MethodGet, "/livez", "", nil), http.StatusOK)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready := decode[catalogsdk.HealthResponse](t, h.do(http.MethodGet, "/readyz", "", nil), http.StatusOK)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	jwks := decode[catalogsdk.JWKSResponse](t, h.do(http.MethodGet, "/.well-known/jwks.json", "", nil), http.StatusOK)
	require.Len(t, jwks.Keys, 1)

	metrics := h.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, metrics.Code)
	require.Contains(t, metrics.Body.String(), "democat_http_requests_total")
}

func TestBootstrap(t *testing.T) {
	h := newHarness(t, false)
	req := catalogsdk.BootstrapRequest{Name: "Ana Admin", Email: adminEmail, Password: adminPassword}

	requireError(t, h.do(http.MethodPost, "/v1/bootstrap", "", req), http.StatusUnauthorized, "unauthorized")
	requireError(t, h.do(http.MethodPost, "/v1/bootstrap", "", req, "X-Bootstrap-Token", "wrong"), http.StatusUnauthorized, "unauthorized")

	admin := decode[catalogsdk.AdminInfo](t, h.do(http.MethodPost, "/v1/bootstrap", "", req, "X-Bootstrap-Token", bootToken), http.StatusCreated)
	require.Equal(t, adminEmail, admin.Email)

	requireError(t, h.do(http.MethodPost, "/v1/bootstrap", "", req, "X-Bootstrap-Token", bootToken), http.StatusConflict, catalogsdk.ErrorCodeConflict)
}

func TestLogin(t *testing.T) {
	h := newHarness(t, true)

	t.Run("admin", func(t *testing.T) {
		tok := h.login(adminEmail, adminPassword)
		require.Equal(t, "admin", tok.Role)
		require.Equal(t, "Bearer", tok.TokenType)
		require.Contains(t, tok.Scope, "admin:write")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/auth/login", "", catalogsdk.LoginRequest{Email: adminEmail, Password: "nope"})
		requireError(t, rec, http.StatusUnauthorized, catalogsdk.ErrorCodeInvalidGrant)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/auth/login", "", `{"email":`)
		requireError(t, rec, http.StatusBadRequest, catalogsdk.ErrorCodeValidation)
	})
}

func TestAuthorization(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()
	rui := h.createClient(admin, "rui@example.com", "2025-08-01")
	eva := h.createClient(admin, "eva@example.com", "2025-08-01")
	viewer := h.login(rui.Email, "client-secret").AccessToken

	requireError(t, h.do(http.MethodGet, "/v1/clients", "", nil), http.StatusUnauthorized, catalogsdk.ErrorCodeInvalidToken)
	requireError(t, h.do(http.MethodGet, "/v1/clients", "garbage", nil), http.StatusUnauthorized, catalogsdk.ErrorCodeInvalidToken)
	requireError(t, h.do(http.MethodGet, "/v1/clients", viewer, nil), http.StatusForbidden, catalogsdk.ErrorCodeInsufficientScope)
	requireError(t, h.do(http.MethodPost, "/v1/requests/x/approve", viewer, nil), http.StatusForbidden, catalogsdk.ErrorCodeInsufficientScope)

	self := decode[catalogsdk.ClientInfo](t, h.do(http.MethodGet, "/v1/clients/"+rui.ID, viewer, nil), http.StatusOK)
	require.Equal(t, rui.ID, self.ID)
	requireError(t, h.do(http.MethodGet, "/v1/clients/"+eva.ID, viewer, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
}

func TestRenewalWorkflow(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()

	rui := h.createClient(admin, "rui@example.com", "2025-06-13")
	require.Equal(t, "expiring_soon", rui.Status)
	require.Equal(t, 3, rui.DaysRemaining)

	viewer := h.login(rui.Email, "client-secret").AccessToken

	me := decode[catalogsdk.MeResponse](t, h.do(http.MethodGet, "/v1/me", viewer, nil), http.StatusOK)
	require.True(t, me.CanRequestRenewal)
	require.Nil(t, me.PendingRequest)

	created := decode[catalogsdk.RequestInfo](t, h.do(http.MethodPost, "/v1/requests", viewer, nil), http.StatusCreated)
	require.Equal(t, "pending", created.State)
	require.Equal(t, "renewal", created.Type)
	require.Equal(t, rui.ID, created.ClientID)

	requireError(t, h.do(http.MethodPost, "/v1/requests", viewer, nil), http.StatusConflict, catalogsdk.ErrorCodeConflict)

	queue := decode[catalogsdk.ListPendingResponse](t, h.do(http.MethodGet, "/v1/requests/pending", admin, nil), http.StatusOK)
	require.Len(t, queue.Requests, 1)
	require.Equal(t, rui.Email, queue.Requests[0].ClientEmail)

	d := decode[catalogsdk.DecisionResponse](t, h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, nil), http.StatusOK)
	require.Equal(t, "approved", d.Request.State)
	require.NotNil(t, d.Request.DecidedAt)
	require.NotEmpty(t, d.Request.DecidedBy)
	require.Equal(t, "active", d.Client.Status)
	require.Equal(t, 33, d.Client.DaysRemaining)

	requireError(t, h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, nil), http.StatusConflict, catalogsdk.ErrorCodeConflict)
	requireError(t, h.do(http.MethodPost, "/v1/requests/"+created.ID+"/reject", admin, nil), http.StatusConflict, catalogsdk.ErrorCodeConflict)

	counts := decode[catalogsdk.RequestCountsResponse](t, h.do(http.MethodGet, "/v1/requests/counts", admin, nil), http.StatusOK)
	require.Equal(t, catalogsdk.RequestCountsResponse{Approved: 1, Total: 1}, counts)

	mine := decode[catalogsdk.ListRequestsResponse](t, h.do(http.MethodGet, "/v1/me/requests", viewer, nil), http.StatusOK)
	require.Len(t, mine.Requests, 1)

	// Active again, so a fresh renewal is not due.
	requireError(t, h.do(http.MethodPost, "/v1/requests", viewer, nil), http.StatusConflict, catalogsdk.ErrorCodeConflict)
}

func TestApproveWithOverride(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()
	rui := h.createClient(admin, "rui@example.com", "2025-06-01")
	require.Equal(t, "expired", rui.Status)

	created := decode[catalogsdk.RequestInfo](t,
		h.do(http.MethodPost, "/v1/requests", admin, catalogsdk.CreateRequestRequest{ClientID: rui.ID}), http.StatusCreated)

	rec := h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, catalogsdk.ApproveRequest{NewExpiration: "not-a-date"})
	requireError(t, rec, http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

	d := decode[catalogsdk.DecisionResponse](t,
		h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, catalogsdk.ApproveRequest{NewExpiration: "2025-06-20"}), http.StatusOK)
	require.Equal(t, 10, d.Client.DaysRemaining)
	require.Equal(t, "active", d.Client.Status)
}

func TestRevocationRequest(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()
	rui := h.createClient(admin, "rui@example.com", "2025-08-01")

	rec := h.do(http.MethodPost, "/v1/requests", admin, catalogsdk.CreateRequestRequest{ClientID: rui.ID, Type: "revocation"})
	created := decode[catalogsdk.RequestInfo](t, rec, http.StatusCreated)

	rec = h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, catalogsdk.ApproveRequest{NewExpiration: "2025-09-01"})
	requireError(t, rec, http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

	d := decode[catalogsdk.DecisionResponse](t, h.do(http.MethodPost, "/v1/requests/"+created.ID+"/approve", admin, nil), http.StatusOK)
	require.Equal(t, "expired", d.Client.Status)
	require.Zero(t, d.Client.DaysRemaining)
}

func TestRejectLeavesClientUntouched(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()
	rui := h.createClient(admin, "rui@example.com", "2025-06-13")
	viewer := h.login(rui.Email, "client-secret").AccessToken

	created := decode[catalogsdk.RequestInfo](t, h.do(http.MethodPost, "/v1/requests", viewer, nil), http.StatusCreated)

	d := decode[catalogsdk.DecisionResponse](t, h.do(http.MethodPost, "/v1/requests/"+created.ID+"/reject", admin, nil), http.StatusOK)
	require.Equal(t, "rejected", d.Request.State)
	require.Nil(t, d.Client)

	after := decode[catalogsdk.ClientInfo](t, h.do(http.MethodGet, "/v1/clients/"+rui.ID, admin, nil), http.StatusOK)
	require.Equal(t, rui.ExpirationDate, after.ExpirationDate)

	list := decode[catalogsdk.ListRequestsResponse](t, h.do(http.MethodGet, "/v1/requests?state=rejected", admin, nil), http.StatusOK)
	require.Len(t, list.Requests, 1)
	requireError(t, h.do(http.MethodGet, "/v1/requests?state=maybe", admin, nil), http.StatusBadRequest, catalogsdk.ErrorCodeValidation)
	requireError(t, h.do(http.MethodPost, "/v1/requests/unknown/reject", admin, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
}

func TestClientManagement(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()

	t.Run("validation", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/clients", admin, catalogsdk.CreateClientRequest{
			Name: "Bad", Email: "bad@example.com", RegistrationDate: "2025-06-10", ExpirationDate: "2025-06-01",
		})
		requireError(t, rec, http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

		rec = h.do(http.MethodPost, "/v1/clients", admin, `{"name":"x","email":"x@example.com","expiration_date":"2025-07-01","nickname":"x"}`)
		requireError(t, rec, http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

		requireError(t, h.do(http.MethodGet, "/v1/clients?status=sleeping", admin, nil), http.StatusBadRequest, catalogsdk.ErrorCodeValidation)
	})

	rui := h.createClient(admin, "rui@example.com", "2025-06-13")

	t.Run("duplicate email", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/clients", admin, catalogsdk.CreateClientRequest{
			Name: "Other", Email: "RUI@example.com", ExpirationDate: "2025-07-01",
		})
		requireError(t, rec, http.StatusConflict, catalogsdk.ErrorCodeConflict)
	})

	t.Run("generated password", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/clients", admin, catalogsdk.CreateClientRequest{
			Name: "Eva", Email: "eva@example.com", ExpirationDate: "2025-09-01",
		})
		out := decode[catalogsdk.CreateClientResponse](t, rec, http.StatusCreated)
		require.NotEmpty(t, out.GeneratedPassword)
		require.Equal(t, "active", out.Client.Status)
	})

	t.Run("filter and stats", func(t *testing.T) {
		list := decode[catalogsdk.ListClientsResponse](t, h.do(http.MethodGet, "/v1/clients?status=expiring_soon", admin, nil), http.StatusOK)
		require.Len(t, list.Clients, 1)
		require.Equal(t, rui.ID, list.Clients[0].ID)

		stats := decode[catalogsdk.ClientStatsResponse](t, h.do(http.MethodGet, "/v1/stats/clients", admin, nil), http.StatusOK)
		require.Equal(t, catalogsdk.ClientStatsResponse{Total: 2, Active: 1, ExpiringSoon: 1}, stats)
	})

	t.Run("update recomputes status", func(t *testing.T) {
		exp := "2025-06-05"
		out := decode[catalogsdk.ClientInfo](t,
			h.do(http.MethodPut, "/v1/clients/"+rui.ID, admin, catalogsdk.UpdateClientRequest{ExpirationDate: &exp}), http.StatusOK)
		require.Equal(t, "expired", out.Status)
		require.Equal(t, -5, out.DaysRemaining)

		requireError(t, h.do(http.MethodPut, "/v1/clients/"+rui.ID, admin, catalogsdk.UpdateClientRequest{}), http.StatusBadRequest, catalogsdk.ErrorCodeValidation)
	})

	t.Run("revoke and delete", func(t *testing.T) {
		eva := decode[catalogsdk.ListClientsResponse](t, h.do(http.MethodGet, "/v1/clients?email=eva", admin, nil), http.StatusOK).Clients[0]

		out := decode[catalogsdk.ClientInfo](t, h.do(http.MethodPost, "/v1/clients/"+eva.ID+"/revoke", admin, nil), http.StatusOK)
		require.Equal(t, "expired", out.Status)

		require.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/v1/clients/"+eva.ID, admin, nil).Code)
		requireError(t, h.do(http.MethodGet, "/v1/clients/"+eva.ID, admin, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
		requireError(t, h.do(http.MethodDelete, "/v1/clients/"+eva.ID, admin, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
	})
}

func TestDemosAndActivity(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()

	demo := decode[catalogsdk.DemoInfo](t, h.do(http.MethodPost, "/v1/demos", admin, catalogsdk.CreateDemoRequest{
		Name: "Retail Insights", Vertical: "Retail", URL: "https://demo.example.com/retail",
	}), http.StatusCreated)
	require.Equal(t, "active", demo.State)
	hidden := decode[catalogsdk.DemoInfo](t, h.do(http.MethodPost, "/v1/demos", admin, catalogsdk.CreateDemoRequest{
		Name: "Old Banking", State: "inactive",
	}), http.StatusCreated)

	requireError(t, h.do(http.MethodPost, "/v1/demos", admin, catalogsdk.CreateDemoRequest{Name: "x", URL: "ftp://nope"}),
		http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

	rui := h.createClient(admin, "rui@example.com", "2025-08-01")
	viewer := h.login(rui.Email, "client-secret").AccessToken

	list := decode[catalogsdk.ListDemosResponse](t, h.do(http.MethodGet, "/v1/demos?state=inactive", viewer, nil), http.StatusOK)
	require.Len(t, list.Demos, 1)
	require.Equal(t, demo.ID, list.Demos[0].ID)
	requireError(t, h.do(http.MethodGet, "/v1/demos/"+hidden.ID, viewer, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)

	all := decode[catalogsdk.ListDemosResponse](t, h.do(http.MethodGet, "/v1/demos", admin, nil), http.StatusOK)
	require.Len(t, all.Demos, 2)

	rec := h.do(http.MethodPost, "/v1/activity", viewer, catalogsdk.RecordActivityRequest{DemoID: demo.ID, Type: "demo_opened"})
	opened := decode[catalogsdk.ActivityInfo](t, rec, http.StatusCreated)
	require.Equal(t, rui.ID, opened.ClientID)

	requireError(t, h.do(http.MethodPost, "/v1/activity", viewer, catalogsdk.RecordActivityRequest{Type: "access_granted"}),
		http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

	entries := decode[catalogsdk.ListActivityResponse](t, h.do(http.MethodGet, "/v1/activity?client_id="+rui.ID+"&type=demo_opened", admin, nil), http.StatusOK)
	require.Len(t, entries.Activity, 1)
	requireError(t, h.do(http.MethodGet, "/v1/activity?limit=5000", admin, nil), http.StatusBadRequest, catalogsdk.ErrorCodeValidation)

	stats := decode[catalogsdk.ActivityStatsResponse](t, h.do(http.MethodGet, "/v1/activity/stats", admin, nil), http.StatusOK)
	require.Equal(t, 1, stats.ByType["demo_opened"])
	require.Equal(t, 1, stats.ByType["login"])

	usage := decode[catalogsdk.ClientUsageListResponse](t, h.do(http.MethodGet, "/v1/stats/client-usage", admin, nil), http.StatusOK)
	require.Len(t, usage.Clients, 1)
	require.Equal(t, rui.ID, usage.Clients[0].ClientID)
	require.Equal(t, 1, usage.Clients[0].TotalOpens)
	require.Equal(t, 1, usage.Clients[0].TotalLogins)
	require.NotNil(t, usage.Clients[0].LastActivity)

	one := decode[catalogsdk.ClientUsageInfo](t, h.do(http.MethodGet, "/v1/stats/client-usage/"+rui.ID, admin, nil), http.StatusOK)
	require.Equal(t, usage.Clients[0], one)
	requireError(t, h.do(http.MethodGet, "/v1/stats/client-usage/missing", admin, nil), http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
	requireError(t, h.do(http.MethodGet, "/v1/stats/client-usage", viewer, nil), http.StatusForbidden, catalogsdk.ErrorCodeInsufficientScope)

	name := "Retail Insights v2"
	updated := decode[catalogsdk.DemoInfo](t, h.do(http.MethodPut, "/v1/demos/"+demo.ID, admin, catalogsdk.UpdateDemoRequest{Name: &name}), http.StatusOK)
	require.Equal(t, name, updated.Name)
	got := decode[catalogsdk.DemoInfo](t, h.do(http.MethodGet, "/v1/demos/"+demo.ID, viewer, nil), http.StatusOK)
	require.Equal(t, name, got.Name)

	require.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/v1/demos/"+hidden.ID, admin, nil).Code)
}

func TestExpiredViewerCannotBrowse(t *testing.T) {
	h := newHarness(t, true)
	admin := h.adminToken()
	rui := h.createClient(admin, "rui@example.com", "2025-06-01")
	viewer := h.login(rui.Email, "client-secret").AccessToken

	rec := h.do(http.MethodGet, "/v1/demos", viewer, nil)
	body := decode[catalogsdk.ErrorResponse](t, rec, http.StatusConflict)
	require.Contains(t, body.ErrorDescription, "access_expired")

	// Still allowed to ask for more time.
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/v1/requests", viewer, nil).Code)
	require.Equal(t, http.StatusNoContent, h.do(http.MethodPost, "/v1/auth/logout", viewer, nil).Code)
}
