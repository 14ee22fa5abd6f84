package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

type RequestState string

const (
	RequestPending  RequestState = "pending"
	RequestApproved RequestState = "approved"
	RequestRejected RequestState = "rejected"
)

func ParseRequestState(s string) (RequestState, error) {
	switch st := RequestState(strings.ToLower(strings.TrimSpace(s))); st {
	case RequestPending, RequestApproved, RequestRejected:
		return st, nil
	}
	return "", Validationf("unknown request state %q", s)
}

type RequestType string

const (
	RequestRenewal    RequestType = "renewal"
	RequestRevocation RequestType = "revocation"
)

// ParseRequestType defaults an empty value to renewal.
func ParseRequestType(s string) (RequestType, error) {
	switch t := RequestType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return RequestRenewal, nil
	case RequestRenewal, RequestRevocation:
		return t, nil
	}
	return "", Validationf("unknown request type %q", s)
}

// RenewalPeriodDays is how far an approved renewal pushes the expiration
// when the admin gives no explicit date.
const RenewalPeriodDays = 30

var (
	ErrRequestNotPending  = fmt.Errorf("%w: request is not pending", ErrConflict)
	ErrRequestAlreadyOpen = fmt.Errorf("%w: client already has a pending request", ErrConflict)
	ErrRenewalNotDue      = fmt.Errorf("%w: renewal can only be requested when access is expiring or expired", ErrConflict)
	ErrRevocationWithDate = fmt.Errorf("%w: revocation approvals do not take an expiration date", ErrValidation)
	ErrMissingActor       = fmt.Errorf("%w: acting admin id is required", ErrValidation)
)

// RenewalRequest is a client's ask to extend (or end) their access.
// State moves pending -> approved or pending -> rejected, never back.
type RenewalRequest struct {
	ID        string
	ClientID  string
	Type      RequestType
	State     RequestState
	CreatedAt time.Time
	DecidedBy string    // admin id; empty while pending
	DecidedAt time.Time // zero while pending
}

func (r RenewalRequest) IsPending() bool { return r.State == RequestPending }

// NewRenewalRequest opens a request for client. existing are the client's
// current requests; any pending one blocks creation. Renewals additionally
// require the client to be expiring soon or expired.
func NewRenewalRequest(id string, client Client, typ RequestType, existing []RenewalRequest, now time.Time) (RenewalRequest, error) {
	if slices.ContainsFunc(existing, RenewalRequest.IsPending) {
		return RenewalRequest{}, ErrRequestAlreadyOpen
	}
	if typ == RequestRenewal && !client.Status(now).CanRequestRenewal() {
		return RenewalRequest{}, ErrRenewalNotDue
	}
	return RenewalRequest{
		ID:        id,
		ClientID:  client.ID,
		Type:      typ,
		State:     RequestPending,
		CreatedAt: now,
	}, nil
}

func (r RenewalRequest) decide(state RequestState, adminID string, at time.Time) (RenewalRequest, error) {
	if strings.TrimSpace(adminID) == "" {
		return r, ErrMissingActor
	}
	if !r.IsPending() {
		return r, fmt.Errorf("%w (currently %s)", ErrRequestNotPending, r.State)
	}
	r.State = state
	r.DecidedBy = adminID
	r.DecidedAt = at
	return r, nil
}

// Approve marks the request approved by adminID.
func (r RenewalRequest) Approve(adminID string, at time.Time) (RenewalRequest, error) {
	return r.decide(RequestApproved, adminID, at)
}

// Reject marks the request rejected by adminID.
func (r RenewalRequest) Reject(adminID string, at time.Time) (RenewalRequest, error) {
	return r.decide(RequestRejected, adminID, at)
}

// NextExpiration is the client expiration after approving a renewal: the
// explicit override verbatim, otherwise the current expiration plus
// RenewalPeriodDays. The increment is anchored on the old expiration, not on
// the decision time.
func NextExpiration(current time.Time, override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return current.AddDate(0, 0, RenewalPeriodDays)
}

// ApprovalOutcome resolves the client expiration an approval writes.
// Revocations end access at the decision instant. Renewals add calendar days
// in at's location, so the local expiration day moves by exactly
// RenewalPeriodDays across DST changes.
func ApprovalOutcome(r RenewalRequest, client Client, override *time.Time, at time.Time) (time.Time, error) {
	switch r.Type {
	case RequestRevocation:
		if override != nil {
			return time.Time{}, ErrRevocationWithDate
		}
		return at, nil
	case RequestRenewal:
		return NextExpiration(client.ExpiresAt.In(at.Location()), override), nil
	}
	return time.Time{}, errors.New("domain: unhandled request type " + string(r.Type))
}

// PendingRequestView joins a pending request with the client fields shown in
// the admin queue.
type PendingRequestView struct {
	RenewalRequest

	ClientName        string
	ClientEmail       string
	CurrentExpiration time.Time
}

// RequestCounts is the per-state breakdown for the admin dashboard.
type RequestCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func (c RequestCounts) Total() int { return c.Pending + c.Approved + c.Rejected }

// CountRequests tallies requests by state.
func CountRequests(reqs []RenewalRequest) RequestCounts {
	var out RequestCounts
	for _, r := range reqs {
		switch r.State {
		case RequestPending:
			out.Pending++
		case RequestApproved:
			out.Approved++
		case RequestRejected:
			out.Rejected++
		}
	}
	return out
}

// FilterRequests keeps requests in state, preserving order.
func FilterRequests(reqs []RenewalRequest, state RequestState) []RenewalRequest {
	out := make([]RenewalRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.State == state {
			out = append(out, r)
		}
	}
	return out
}
