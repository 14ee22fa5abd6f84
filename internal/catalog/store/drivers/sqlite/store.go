package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Connection parameters added to every DSN, keyed by the name that marks
// them as already present. modernc applies them to each pooled connection.
var defaultParams = []struct{ name, param string }{
	{"foreign_keys", "_pragma=foreign_keys(1)"},
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_txlock", "_txlock=immediate"},
	{"_time_format", "_time_format=sqlite"}, // sortable text, so created_at ranges compare correctly
}

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at dsn, a file path optionally followed by
// query parameters.
func NewStore(dsn string) (*Store, error) {
	dsn = withPragmas(dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(dsn, ":memory:") {
		// Each connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func withPragmas(dsn string) string {
	for _, p := range defaultParams {
		if strings.Contains(dsn, p.name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.param
	}
	return dsn
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Admins() store.Admins     { return &adminsRepo{q: s.q} }
func (s *Store) Clients() store.Clients   { return &clientsRepo{q: s.q} }
func (s *Store) Requests() store.Requests { return &requestsRepo{q: s.q} }
func (s *Store) Demos() store.Demos       { return &demosRepo{q: s.q} }
func (s *Store) Activity() store.Activity { return &activityRepo{q: s.q} }

func (s *Store) SigningKeys() store.SigningKeys { return &signingKeysRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr turns unique constraint violations into store.ErrAlreadyExists.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch code := se.Code(); {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE"):
		return errors.Join(store.ErrAlreadyExists, err)
	}
	return err
}

// requireRow maps a zero-row write to store.ErrNotFound.
func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time.UTC()
	}
	return time.Time{}
}

func mapTimeNull(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
