package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row, err := r.q.GetClientByEmail(ctx, email)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapClient(row))
	}
	return out, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	return mapWriteErr(r.q.CreateClient(ctx, gen.CreateClientParams{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		RegisteredAt: c.RegisteredAt.UTC(),
		ExpiresAt:    c.ExpiresAt.UTC(),
		CreatedBy:    mapStringNull(c.CreatedBy),
		CreatedAt:    c.CreatedAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
	}))
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	n, err := r.q.UpdateClient(ctx, gen.UpdateClientParams{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		RegisteredAt: c.RegisteredAt.UTC(),
		ExpiresAt:    c.ExpiresAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
		ID:           c.ID,
	})
	return requireRow(n, mapWriteErr(err))
}

func (r *clientsRepo) UpdateClientExpiration(ctx context.Context, id string, expiresAt, at time.Time) error {
	return requireRow(r.q.UpdateClientExpiration(ctx, gen.UpdateClientExpirationParams{
		ExpiresAt: expiresAt.UTC(),
		UpdatedAt: at.UTC(),
		ID:        id,
	}))
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	return requireRow(r.q.DeleteClient(ctx, id))
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		RegisteredAt: row.RegisteredAt.UTC(),
		ExpiresAt:    row.ExpiresAt.UTC(),
		CreatedBy:    mapNullString(row.CreatedBy),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
