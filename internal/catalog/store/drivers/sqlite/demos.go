package sqlite

import (
	"context"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type demosRepo struct {
	q *gen.Queries
}

func (r *demosRepo) GetDemoByID(ctx context.Context, id string) (domain.Demo, error) {
	row, err := r.q.GetDemoByID(ctx, id)
	if err != nil {
		return domain.Demo{}, mapNotFound(err)
	}
	return mapDemo(row), nil
}

func (r *demosRepo) ListDemos(ctx context.Context, f domain.DemoFilter) ([]domain.Demo, error) {
	rows, err := r.q.ListDemos(ctx, gen.ListDemosParams{
		State:      string(f.State),
		Vertical:   f.Vertical,
		Horizontal: f.Horizontal,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Demo, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDemo(row))
	}
	return out, nil
}

func (r *demosRepo) CreateDemo(ctx context.Context, d domain.Demo) error {
	return mapWriteErr(r.q.CreateDemo(ctx, gen.CreateDemoParams{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Vertical:     d.Vertical,
		Horizontal:   d.Horizontal,
		Keywords:     d.Keywords,
		ProjectCode:  d.ProjectCode,
		Url:          d.URL,
		State:        string(d.State),
		SalesName:    d.SalesName,
		SalesContact: d.SalesContact,
		SalesPhoto:   d.SalesPhoto,
		CreatedBy:    mapStringNull(d.CreatedBy),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}))
}

func (r *demosRepo) UpdateDemo(ctx context.Context, d domain.Demo) error {
	return requireRow(r.q.UpdateDemo(ctx, gen.UpdateDemoParams{
		Name:         d.Name,
		Description:  d.Description,
		Vertical:     d.Vertical,
		Horizontal:   d.Horizontal,
		Keywords:     d.Keywords,
		ProjectCode:  d.ProjectCode,
		Url:          d.URL,
		State:        string(d.State),
		SalesName:    d.SalesName,
		SalesContact: d.SalesContact,
		SalesPhoto:   d.SalesPhoto,
		UpdatedAt:    d.UpdatedAt.UTC(),
		ID:           d.ID,
	}))
}

func (r *demosRepo) DeleteDemo(ctx context.Context, id string) error {
	return requireRow(r.q.DeleteDemo(ctx, id))
}

func mapDemo(row gen.Demo) domain.Demo {
	return domain.Demo{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Vertical:     row.Vertical,
		Horizontal:   row.Horizontal,
		Keywords:     row.Keywords,
		ProjectCode:  row.ProjectCode,
		URL:          row.Url,
		State:        domain.DemoState(row.State),
		SalesName:    row.SalesName,
		SalesContact: row.SalesContact,
		SalesPhoto:   row.SalesPhoto,
		CreatedBy:    mapNullString(row.CreatedBy),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
