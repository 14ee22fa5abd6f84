package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type activityRepo struct {
	q *gen.Queries
}

func (r *activityRepo) CreateActivity(ctx context.Context, a domain.Activity) error {
	return r.q.CreateActivity(ctx, gen.CreateActivityParams{
		ID:        a.ID,
		ClientID:  mapStringNull(a.ClientID),
		DemoID:    mapStringNull(a.DemoID),
		Type:      string(a.Type),
		Message:   a.Message,
		CreatedAt: a.CreatedAt.UTC(),
	})
}

func (r *activityRepo) ListActivity(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	rows, err := r.q.ListActivity(ctx, gen.ListActivityParams{
		ClientID: f.ClientID,
		DemoID:   f.DemoID,
		Type:     string(f.Type),
		Limit:    int64(f.Limit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Activity{
			ID:        row.ID,
			ClientID:  mapNullString(row.ClientID),
			DemoID:    mapNullString(row.DemoID),
			Type:      domain.ActivityType(row.Type),
			Message:   row.Message,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *activityRepo) ActivityStats(ctx context.Context, since time.Time) (domain.ActivityStats, error) {
	byType, err := r.q.CountActivityByType(ctx)
	if err != nil {
		return domain.ActivityStats{}, err
	}
	recent, err := r.q.CountActivitySince(ctx, since.UTC())
	if err != nil {
		return domain.ActivityStats{}, err
	}

	stats := domain.ActivityStats{
		ByType: make(map[domain.ActivityType]int, len(byType)),
		Last24: int(recent),
	}
	for _, row := range byType {
		stats.ByType[domain.ActivityType(row.Type)] = int(row.Total)
		stats.Total += int(row.Total)
	}
	return stats, nil
}

func (r *activityRepo) DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteActivityBefore(ctx, cutoff.UTC())
}

func (r *activityRepo) ClientUsage(ctx context.Context) ([]domain.ClientUsage, error) {
	rows, err := r.q.ListClientUsage(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClientUsage, 0, len(rows))
	for _, row := range rows {
		u, err := clientUsage(gen.GetClientUsageRow(row))
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *activityRepo) ClientUsageByID(ctx context.Context, clientID string) (domain.ClientUsage, error) {
	row, err := r.q.GetClientUsage(ctx, clientID)
	if err != nil {
		return domain.ClientUsage{}, mapNotFound(err)
	}
	return clientUsage(row)
}

func clientUsage(row gen.GetClientUsageRow) (domain.ClientUsage, error) {
	last, err := aggregateTime(row.LastActivity)
	if err != nil {
		return domain.ClientUsage{}, err
	}
	return domain.ClientUsage{
		ClientID:     row.ID,
		Name:         row.Name,
		Email:        row.Email,
		DemosOpened:  int(row.DemosOpened),
		TotalOpens:   int(row.TotalOpens),
		TotalLogins:  int(row.TotalLogins),
		LastActivity: last,
	}, nil
}

// Layouts the driver writes DATETIME values in.
var storedTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// aggregateTime decodes MAX/MIN over a DATETIME column. The driver only
// converts plain column reads, so aggregates arrive as text.
func aggregateTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return t.UTC(), nil
	case []byte:
		return aggregateTime(string(t))
	case string:
		for _, layout := range storedTimeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("sqlite: unrecognised time %q", t)
	}
	return time.Time{}, fmt.Errorf("sqlite: unexpected time value %T", v)
}
