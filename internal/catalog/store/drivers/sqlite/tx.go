package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owning Store keeps the database open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Tx is not supported inside a transaction.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Admins() store.Admins     { return &adminsRepo{q: t.q} }
func (t *txStore) Clients() store.Clients   { return &clientsRepo{q: t.q} }
func (t *txStore) Requests() store.Requests { return &requestsRepo{q: t.q} }
func (t *txStore) Demos() store.Demos       { return &demosRepo{q: t.q} }
func (t *txStore) Activity() store.Activity { return &activityRepo{q: t.q} }

func (t *txStore) SigningKeys() store.SigningKeys { return &signingKeysRepo{q: t.q} }

// ApplyMigrations is a no-op; migrations run before the store is shared.
func (t *txStore) ApplyMigrations() error { return nil }
