package sqlite

import (
	"context"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type adminsRepo struct {
	q *gen.Queries
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row, err := r.q.GetAdminByID(ctx, id)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return mapAdmin(row), nil
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row, err := r.q.GetAdminByEmail(ctx, email)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return mapAdmin(row), nil
}

func (r *adminsRepo) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.q.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Admin, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapAdmin(row))
	}
	return out, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	return mapWriteErr(r.q.CreateAdmin(ctx, gen.CreateAdminParams{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Contact:      a.Contact,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	}))
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func mapAdmin(row gen.Admin) domain.Admin {
	return domain.Admin{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Contact:      row.Contact,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
