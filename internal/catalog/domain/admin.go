package domain

import "time"

// Admin is a staff account that manages clients, demos and requests.
type Admin struct {
	ID           string
	Name         string
	Email        string
	Contact      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Admin) Validate() error {
	if err := ValidateName(a.Name, 100); err != nil {
		return err
	}
	if err := ValidateEmail(a.Email); err != nil {
		return err
	}
	if len(a.Contact) > 20 {
		return Validationf("contact must be at most 20 characters")
	}
	return nil
}

// Role is the kind of principal a token was issued to.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Scopes granted per role.
var (
	AdminScopes  = []string{"admin:read", "admin:write", "catalog:read"}
	ViewerScopes = []string{"catalog:read", "profile:read", "requests:create", "activity:write"}
)

func (r Role) Scopes() []string {
	switch r {
	case RoleAdmin:
		return AdminScopes
	case RoleViewer:
		return ViewerScopes
	}
	return nil
}

// Principal is an authenticated admin or client.
type Principal struct {
	ID    string
	Role  Role
	Name  string
	Email string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
