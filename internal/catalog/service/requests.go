package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// Decision is the outcome of approving or rejecting a request.
type Decision struct {
	Request domain.RenewalRequest
	Client  ClientView
}

// RequestService runs the renewal request workflow.
type RequestService struct {
	Store store.Store
	Clock Clock
}

// Create opens a request. Viewers always act on themselves; admins must name
// the client.
func (s *RequestService) Create(
	ctx context.Context,
	p domain.Principal,
	clientID string,
	typ domain.RequestType,
) (domain.RenewalRequest, error) {
	l := slogx.FromContext(ctx)
	if !p.IsAdmin() {
		clientID = p.ID
	}
	if clientID == "" {
		return domain.RenewalRequest{}, domain.Validationf("client_id is required")
	}
	if typ == "" {
		typ = domain.RequestRenewal
	}

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		return domain.RenewalRequest{}, storeErr(err, "client")
	}
	existing, err := s.Store.Requests().ListRequestsByClient(ctx, clientID)
	if err != nil {
		return domain.RenewalRequest{}, storeErr(err, "requests")
	}

	now := s.Clock.now()
	req, err := domain.NewRenewalRequest(idx.NewAt(now).String(), client, typ, existing, now)
	if err != nil {
		l.Warn("renewal request refused",
			slog.String("client_id", clientID),
			slog.String("type", string(typ)),
			slog.Any("error", err),
		)
		return domain.RenewalRequest{}, err
	}

	if err := s.Store.Requests().CreateRequest(ctx, req); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent create for the same client.
			return domain.RenewalRequest{}, domain.ErrRequestAlreadyOpen
		}
		return domain.RenewalRequest{}, storeErr(err, "request")
	}

	requestsCreated.WithLabelValues(string(req.Type)).Inc()
	l.Info("renewal request created",
		slog.String("request_id", req.ID),
		slog.String("client_id", clientID),
		slog.String("type", string(req.Type)),
	)
	return req, nil
}

// Approve accepts a pending request on behalf of adminID. For renewals the
// client's expiration becomes newExpiration, or the current expiration plus
// the renewal period when nil. Revocations end access at the decision time.
//
// The request transition, the client update and the activity entry commit
// together. A failed client write leaves the request pending.
func (s *RequestService) Approve(
	ctx context.Context,
	adminID, requestID string,
	newExpiration *time.Time,
) (Decision, error) {
	l := slogx.FromContext(ctx).With(slog.String("request_id", requestID), slog.String("admin_id", adminID))
	if adminID == "" {
		return Decision{}, domain.ErrMissingActor
	}

	now := s.Clock.now()
	var out Decision
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		req, err := tx.Requests().GetRequestByID(ctx, requestID)
		if err != nil {
			return storeErr(err, "request")
		}
		client, err := tx.Clients().GetClientByID(ctx, req.ClientID)
		if err != nil {
			return storeErr(err, "client")
		}

		decided, err := req.Approve(adminID, now)
		if err != nil {
			return err
		}
		exp, err := domain.ApprovalOutcome(req, client, newExpiration, now)
		if err != nil {
			return err
		}
		if req.Type == domain.RequestRevocation {
			exp = clampExpiration(client, exp)
		} else if exp.Before(client.RegisteredAt) {
			return domain.Validationf("new expiration must not be before registration")
		}

		if err := tx.Requests().DecideRequest(ctx, req.ID, domain.RequestApproved, adminID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return domain.ErrRequestNotPending
			}
			return storeErr(err, "request")
		}
		if err := tx.Clients().UpdateClientExpiration(ctx, client.ID, exp, now); err != nil {
			return fmt.Errorf("%w: updating client expiration: %v", domain.ErrDependency, err)
		}

		typ, msg := domain.ActivityAccessGranted, "renewal approved, access until "+exp.Format(time.DateOnly)
		if req.Type == domain.RequestRevocation {
			typ, msg = domain.ActivityAccessRevoked, "revocation approved"
		}
		if err := recordActivity(ctx, tx.Activity(), now, typ, client.ID, "", msg); err != nil {
			return fmt.Errorf("%w: recording activity: %v", domain.ErrDependency, err)
		}

		client.ExpiresAt = exp
		client.UpdatedAt = now
		r := client.Status(now)
		out = Decision{
			Request: decided,
			Client:  ClientView{Client: client, Status: r.Status, DaysRemaining: r.DaysRemaining},
		}
		return nil
	})
	if err != nil {
		err = txErr(err)
		if errors.Is(err, domain.ErrDependency) {
			l.Error("failed to approve request", slog.Any("error", err))
		} else {
			l.Warn("request approval refused", slog.Any("error", err))
		}
		return Decision{}, err
	}

	requestDecisions.WithLabelValues(string(out.Request.Type), string(domain.RequestApproved)).Inc()
	l.Info("request approved",
		slog.String("client_id", out.Client.ID),
		slog.String("type", string(out.Request.Type)),
		slog.Time("expires_at", out.Client.ExpiresAt),
	)
	return out, nil
}

// Reject declines a pending request. The client is not modified.
func (s *RequestService) Reject(ctx context.Context, adminID, requestID string) (domain.RenewalRequest, error) {
	l := slogx.FromContext(ctx).With(slog.String("request_id", requestID), slog.String("admin_id", adminID))
	if adminID == "" {
		return domain.RenewalRequest{}, domain.ErrMissingActor
	}

	now := s.Clock.now()
	var out domain.RenewalRequest
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		req, err := tx.Requests().GetRequestByID(ctx, requestID)
		if err != nil {
			return storeErr(err, "request")
		}
		if out, err = req.Reject(adminID, now); err != nil {
			return err
		}
		if err := tx.Requests().DecideRequest(ctx, req.ID, domain.RequestRejected, adminID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return domain.ErrRequestNotPending
			}
			return storeErr(err, "request")
		}
		return storeErr(recordActivity(ctx, tx.Activity(), now, domain.ActivityAccessRevoked, req.ClientID, "",
			string(req.Type)+" request rejected"), "activity")
	})
	if err != nil {
		err = txErr(err)
		l.Warn("request rejection refused", slog.Any("error", err))
		return domain.RenewalRequest{}, err
	}

	requestDecisions.WithLabelValues(string(out.Type), string(domain.RequestRejected)).Inc()
	l.Info("request rejected", slog.String("client_id", out.ClientID))
	return out, nil
}

// Get returns one request. Viewers only see their own.
func (s *RequestService) Get(ctx context.Context, p domain.Principal, id string) (domain.RenewalRequest, error) {
	req, err := s.Store.Requests().GetRequestByID(ctx, id)
	if err != nil {
		return domain.RenewalRequest{}, storeErr(err, "request")
	}
	if !p.IsAdmin() && req.ClientID != p.ID {
		return domain.RenewalRequest{}, storeErr(store.ErrNotFound, "request")
	}
	return req, nil
}

// List returns requests newest first, optionally restricted to one state.
func (s *RequestService) List(ctx context.Context, state domain.RequestState) ([]domain.RenewalRequest, error) {
	var filter *domain.RequestState
	if state != "" {
		filter = &state
	}
	reqs, err := s.Store.Requests().ListRequests(ctx, filter)
	return reqs, storeErr(err, "requests")
}

// ListForClient returns a client's own requests, newest first.
func (s *RequestService) ListForClient(ctx context.Context, clientID string) ([]domain.RenewalRequest, error) {
	reqs, err := s.Store.Requests().ListRequestsByClient(ctx, clientID)
	return reqs, storeErr(err, "requests")
}

// Pending is the admin queue, oldest first, with client details.
func (s *RequestService) Pending(ctx context.Context) ([]domain.PendingRequestView, error) {
	reqs, err := s.Store.Requests().ListPendingWithClient(ctx)
	return reqs, storeErr(err, "requests")
}

func (s *RequestService) Counts(ctx context.Context) (domain.RequestCounts, error) {
	counts, err := s.Store.Requests().CountRequestsByState(ctx)
	return counts, storeErr(err, "requests")
}
