package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type requestsRepo struct {
	q *gen.Queries
}

func (r *requestsRepo) GetRequestByID(ctx context.Context, id string) (domain.RenewalRequest, error) {
	row, err := r.q.GetRequestByID(ctx, id)
	if err != nil {
		return domain.RenewalRequest{}, mapNotFound(err)
	}
	return mapRequest(row), nil
}

func (r *requestsRepo) ListRequests(ctx context.Context, state *domain.RequestState) ([]domain.RenewalRequest, error) {
	var (
		rows []gen.RenewalRequest
		err  error
	)
	if state != nil {
		rows, err = r.q.ListRequestsByState(ctx, string(*state))
	} else {
		rows, err = r.q.ListRequests(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapRequests(rows), nil
}

func (r *requestsRepo) ListRequestsByClient(ctx context.Context, clientID string) ([]domain.RenewalRequest, error) {
	rows, err := r.q.ListRequestsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return mapRequests(rows), nil
}

func (r *requestsRepo) ListPendingWithClient(ctx context.Context) ([]domain.PendingRequestView, error) {
	rows, err := r.q.ListPendingRequestsWithClient(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PendingRequestView, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.PendingRequestView{
			RenewalRequest: domain.RenewalRequest{
				ID:        row.ID,
				ClientID:  row.ClientID,
				Type:      domain.RequestType(row.Type),
				State:     domain.RequestState(row.State),
				CreatedAt: row.CreatedAt.UTC(),
			},
			ClientName:        row.ClientName,
			ClientEmail:       row.ClientEmail,
			CurrentExpiration: row.ClientExpiresAt.UTC(),
		})
	}
	return out, nil
}

func (r *requestsRepo) CountRequestsByState(ctx context.Context) (domain.RequestCounts, error) {
	rows, err := r.q.CountRequestsByState(ctx)
	if err != nil {
		return domain.RequestCounts{}, err
	}
	var out domain.RequestCounts
	for _, row := range rows {
		switch domain.RequestState(row.State) {
		case domain.RequestPending:
			out.Pending = int(row.Total)
		case domain.RequestApproved:
			out.Approved = int(row.Total)
		case domain.RequestRejected:
			out.Rejected = int(row.Total)
		}
	}
	return out, nil
}

func (r *requestsRepo) CreateRequest(ctx context.Context, req domain.RenewalRequest) error {
	return mapWriteErr(r.q.CreateRequest(ctx, gen.CreateRequestParams{
		ID:        req.ID,
		ClientID:  req.ClientID,
		Type:      string(req.Type),
		CreatedAt: req.CreatedAt.UTC(),
	}))
}

func (r *requestsRepo) DecideRequest(
	ctx context.Context,
	id string,
	state domain.RequestState,
	adminID string,
	at time.Time,
) error {
	n, err := r.q.DecideRequest(ctx, gen.DecideRequestParams{
		State:     string(state),
		DecidedBy: mapStringNull(adminID),
		DecidedAt: mapTimeNull(at),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// Nothing matched: either the id is unknown or someone decided first.
	if _, err := r.q.GetRequestByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return store.ErrConflict
}

func mapRequests(rows []gen.RenewalRequest) []domain.RenewalRequest {
	out := make([]domain.RenewalRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRequest(row))
	}
	return out
}

func mapRequest(row gen.RenewalRequest) domain.RenewalRequest {
	return domain.RenewalRequest{
		ID:        row.ID,
		ClientID:  row.ClientID,
		Type:      domain.RequestType(row.Type),
		State:     domain.RequestState(row.State),
		CreatedAt: row.CreatedAt.UTC(),
		DecidedBy: mapNullString(row.DecidedBy),
		DecidedAt: mapNullTime(row.DecidedAt),
	}
}
