package catalogsdk

import (
	"time"

	"github.com/aussiebroadwan/democat/pkg/jwtx"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine code: validation_error, conflict, not_found,
	// dependency_error, invalid_token, insufficient_scope, ...
	Error string `json:"error" example:"conflict"`

	// ErrorDescription is a human-readable explanation.
	ErrorDescription string `json:"error_description,omitempty" example:"request is not pending"`
}

// ============================================================================
// Auth & Bootstrap
// ============================================================================

// LoginRequest authenticates an admin or a client by email and password.
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// LoginResponse carries a signed access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"18000"`

	// Role is "admin" or "viewer".
	Role string `json:"role" example:"viewer"`

	// Subject is the admin or client id.
	Subject string `json:"subject" example:"01JXAMPLE0000000000000000"`

	// Scope is the space-delimited list of granted scopes.
	Scope string `json:"scope" example:"catalog:read profile:read requests:create activity:write"`
}

// BootstrapRequest creates the first admin. Sent with X-Bootstrap-Token.
type BootstrapRequest struct {
	Name     string `json:"name" example:"Ana Admin"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"change-me"`
	Contact  string `json:"contact,omitempty" example:"+351 900 000 000"`
}

// ============================================================================
// Admins
// ============================================================================

type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Contact  string `json:"contact,omitempty"`
}

type AdminInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ListAdminsResponse struct {
	Admins []AdminInfo `json:"admins"`
}

// ============================================================================
// Clients
// ============================================================================

// ClientInfo is a client with its status derived at read time.
type ClientInfo struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	ExpirationDate   time.Time `json:"expiration_date"`

	// Status is one of future, active, expiring_soon, expired.
	Status        string `json:"status" example:"expiring_soon"`
	DaysRemaining int    `json:"days_remaining" example:"3"`

	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// CreateClientRequest registers a client. Dates are ISO-8601; registration
// defaults to now and a password is generated when omitted.
type CreateClientRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty" example:"2025-06-01"`
	ExpirationDate   string `json:"expiration_date" example:"2025-07-01"`
}

type CreateClientResponse struct {
	Client ClientInfo `json:"client"`

	// GeneratedPassword is only set when the request omitted a password.
	GeneratedPassword string `json:"generated_password,omitempty"`
}

// UpdateClientRequest is a partial update; nil fields are left unchanged.
type UpdateClientRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Password         *string `json:"password,omitempty"`
	RegistrationDate *string `json:"registration_date,omitempty"`
	ExpirationDate   *string `json:"expiration_date,omitempty"`
}

// MeResponse is the signed-in client's own view.
type MeResponse struct {
	Client            ClientInfo   `json:"client"`
	PendingRequest    *RequestInfo `json:"pending_request,omitempty"`
	CanRequestRenewal bool         `json:"can_request_renewal"`
}

// ClientStatsResponse counts clients by derived status.
type ClientStatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	Future       int `json:"future"`
}

// ============================================================================
// Renewal requests
// ============================================================================

type RequestInfo struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`

	// Type is renewal or revocation.
	Type string `json:"type" example:"renewal"`

	// State is pending, approved or rejected.
	State string `json:"state" example:"pending"`

	CreatedAt time.Time  `json:"created_at"`
	DecidedBy string     `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type ListRequestsResponse struct {
	Requests []RequestInfo `json:"requests"`
}

// PendingRequestInfo is a pending request joined with its client.
type PendingRequestInfo struct {
	RequestInfo

	ClientName        string    `json:"client_name"`
	ClientEmail       string    `json:"client_email"`
	CurrentExpiration time.Time `json:"current_expiration"`
}

type ListPendingResponse struct {
	Requests []PendingRequestInfo `json:"requests"`
}

type RequestCountsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// CreateRequestRequest opens a request. Viewers omit client_id; type
// defaults to renewal.
type CreateRequestRequest struct {
	ClientID string `json:"client_id,omitempty"`
	Type     string `json:"type,omitempty" example:"renewal"`
}

// ApproveRequest optionally overrides the computed expiration (ISO-8601).
type ApproveRequest struct {
	NewExpiration string `json:"new_expiration,omitempty" example:"2025-09-01"`
}

// DecisionResponse is returned by approve and reject.
type DecisionResponse struct {
	Request RequestInfo `json:"request"`

	// Client is only set for approvals.
	Client *ClientInfo `json:"client,omitempty"`
}

// ============================================================================
// Demos
// ============================================================================

type DemoInfo struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Vertical      string    `json:"vertical,omitempty"`
	Horizontal    string    `json:"horizontal,omitempty"`
	Keywords      string    `json:"keywords,omitempty"`
	ProjectCode   string    `json:"project_code,omitempty"`
	URL           string    `json:"url,omitempty"`
	State         string    `json:"state" example:"active"`
	SalesName     string    `json:"sales_name,omitempty"`
	SalesContact  string    `json:"sales_contact,omitempty"`
	SalesPhotoURL string    `json:"sales_photo_url,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListDemosResponse struct {
	Demos []DemoInfo `json:"demos"`
}

type CreateDemoRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Vertical      string `json:"vertical,omitempty"`
	Horizontal    string `json:"horizontal,omitempty"`
	Keywords      string `json:"keywords,omitempty"`
	ProjectCode   string `json:"project_code,omitempty"`
	URL           string `json:"url,omitempty"`
	State         string `json:"state,omitempty"`
	SalesName     string `json:"sales_name,omitempty"`
	SalesContact  string `json:"sales_contact,omitempty"`
	SalesPhotoURL string `json:"sales_photo_url,omitempty"`
}

type UpdateDemoRequest struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Vertical      *string `json:"vertical,omitempty"`
	Horizontal    *string `json:"horizontal,omitempty"`
	Keywords      *string `json:"keywords,omitempty"`
	ProjectCode   *string `json:"project_code,omitempty"`
	URL           *string `json:"url,omitempty"`
	State         *string `json:"state,omitempty"`
	SalesName     *string `json:"sales_name,omitempty"`
	SalesContact  *string `json:"sales_contact,omitempty"`
	SalesPhotoURL *string `json:"sales_photo_url,omitempty"`
}

// ============================================================================
// Activity
// ============================================================================

type ActivityInfo struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id,omitempty"`
	DemoID    string    `json:"demo_id,omitempty"`
	Type      string    `json:"type" example:"demo_opened"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ListActivityResponse struct {
	Activity []ActivityInfo `json:"activity"`
}

// RecordActivityRequest logs an event. Viewers may only record demo_opened
// and demo_closed for themselves.
type RecordActivityRequest struct {
	ClientID string `json:"client_id,omitempty"`
	DemoID   string `json:"demo_id,omitempty"`
	Type     string `json:"type" example:"demo_opened"`
	Message  string `json:"message,omitempty"`
}

// ActivityQuery filters GET /v1/activity. Zero values are omitted.
type ActivityQuery struct {
	ClientID string
	DemoID   string
	Type     string
	Limit    int
}

type ActivityStatsResponse struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
	Last24 int            `json:"last_24h"`
}

// ClientUsageInfo is one client's activity summary. DemosOpened counts
// distinct demos; LastActivity is omitted when the client has none.
type ClientUsageInfo struct {
	ClientID     string     `json:"client_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	DemosOpened  int        `json:"demos_opened"`
	TotalOpens   int        `json:"total_opens"`
	TotalLogins  int        `json:"total_logins"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

type ClientUsageListResponse struct {
	Clients []ClientUsageInfo `json:"clients"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse contains the JSON Web Key Set.
type JWKSResponse jwtx.JWKS
