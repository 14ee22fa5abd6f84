package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned by conditional updates whose precondition no
	// longer holds, e.g. deciding a request that is not pending anymore.
	ErrConflict = errors.New("store: conflicting update")
)

// Store is the root data access interface. Drivers implement it and expose
// one sub-repository per table so transactional code gets the same API.
type Store interface {
	Admins() Admins
	Clients() Clients
	Requests() Requests
	Demos() Demos
	Activity() Activity
	SigningKeys() SigningKeys

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Nested transactions are not supported.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByEmail expects an already normalised address.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	ListAdmins(ctx context.Context) ([]domain.Admin, error)

	// CreateAdmin returns ErrAlreadyExists when the email is taken.
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// IsEmpty reports whether no admin exists yet (bootstrap pending).
	IsEmpty(ctx context.Context) (bool, error)
}

type Clients interface {
	GetClientByID(ctx context.Context, id string) (domain.Client, error)
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ListClients returns every client, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient returns ErrAlreadyExists when the email is taken.
	CreateClient(ctx context.Context, c domain.Client) error

	// UpdateClient overwrites the mutable fields and updated_at.
	UpdateClient(ctx context.Context, c domain.Client) error

	// UpdateClientExpiration sets expires_at. ErrNotFound if no row matched.
	UpdateClientExpiration(ctx context.Context, id string, expiresAt, at time.Time) error

	// DeleteClient cascades to the client's requests.
	DeleteClient(ctx context.Context, id string) error
}

type Requests interface {
	GetRequestByID(ctx context.Context, id string) (domain.RenewalRequest, error)

	// ListRequests returns requests newest first, optionally in one state.
	ListRequests(ctx context.Context, state *domain.RequestState) ([]domain.RenewalRequest, error)

	ListRequestsByClient(ctx context.Context, clientID string) ([]domain.RenewalRequest, error)

	// ListPendingWithClient returns the admin queue, oldest first.
	ListPendingWithClient(ctx context.Context) ([]domain.PendingRequestView, error)

	CountRequestsByState(ctx context.Context) (domain.RequestCounts, error)

	// CreateRequest returns ErrAlreadyExists when the client already has a
	// pending request.
	CreateRequest(ctx context.Context, r domain.RenewalRequest) error

	// DecideRequest moves a pending request to state. It returns ErrConflict
	// when the request exists but is no longer pending, and ErrNotFound when
	// it does not exist.
	DecideRequest(ctx context.Context, id string, state domain.RequestState, adminID string, at time.Time) error
}

type Demos interface {
	GetDemoByID(ctx context.Context, id string) (domain.Demo, error)

	// ListDemos returns demos matching f, ordered by name.
	ListDemos(ctx context.Context, f domain.DemoFilter) ([]domain.Demo, error)

	CreateDemo(ctx context.Context, d domain.Demo) error
	UpdateDemo(ctx context.Context, d domain.Demo) error
	DeleteDemo(ctx context.Context, id string) error
}

type Activity interface {
	CreateActivity(ctx context.Context, a domain.Activity) error

	// ListActivity returns entries matching f, newest first. f must be
	// normalised.
	ListActivity(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)

	// ActivityStats counts entries overall, per type, and since the given
	// instant.
	ActivityStats(ctx context.Context, since time.Time) (domain.ActivityStats, error)

	// DeleteActivityBefore prunes entries older than cutoff.
	DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ClientUsage returns one row per client, busiest first. Clients with no
	// activity are included with zero counts.
	ClientUsage(ctx context.Context) ([]domain.ClientUsage, error)

	// ClientUsageByID returns ErrNotFound when the client does not exist.
	ClientUsageByID(ctx context.Context, clientID string) (domain.ClientUsage, error)
}

// SigningKeys holds the encrypted token signing keys.
type SigningKeys interface {
	// CreateSigningKey returns ErrAlreadyExists when the kid is taken.
	CreateSigningKey(ctx context.Context, k domain.SigningKey) error

	// ListSigningKeys returns every stored key, oldest first.
	ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error)

	// DeleteSigningKeysExpiredBefore drops keys that stopped signing before
	// cutoff.
	DeleteSigningKeysExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
