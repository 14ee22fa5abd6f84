package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
)

// RequestsHandler serves the renewal request workflow. The deciding admin
// is always the token subject.
type RequestsHandler struct {
	RequestService *service.RequestService
	Location       *time.Location
}

// HandleCreate handles POST /v1/requests
//
//	@Summary		Open a request
//	@Description	Viewers open a request for themselves; admins must pass client_id. Type defaults to renewal.
//	@Description	A renewal can only be opened while the client is expiring_soon or expired, and a client has at most one pending request.
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with requests:create or admin:write scope"
//	@Param			request			body		catalogsdk.CreateRequestRequest	false	"Target and type"
//	@Success		201				{object}	catalogsdk.RequestInfo			"Created request"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		404				{object}	catalogsdk.ErrorResponse		"Unknown client"
//	@Failure		409				{object}	catalogsdk.ErrorResponse		"Pending request exists or renewal not due"
//	@Router			/v1/requests [post].
func (h *RequestsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.CreateRequestRequest
	if err := httpx.DecodeJSON(r, &req, true); err != nil {
		writeBadBody(w, err)
		return
	}
	typ, err := domain.ParseRequestType(req.Type)
	if err != nil {
		writeServiceError(w, r, err, "create request")
		return
	}

	created, err := h.RequestService.Create(r.Context(), principal(r), req.ClientID, typ)
	if err != nil {
		writeServiceError(w, r, err, "create request")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, requestInfo(created))
}

// HandleList handles GET /v1/requests
//
//	@Summary		List requests
//	@Tags			Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Param			state			query		string							false	"pending, approved or rejected"
//	@Success		200				{object}	catalogsdk.ListRequestsResponse	"Requests, newest first"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/requests [get].
func (h *RequestsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var state domain.RequestState
	if raw := r.URL.Query().Get("state"); raw != "" {
		st, err := domain.ParseRequestState(raw)
		if err != nil {
			writeServiceError(w, r, err, "list requests")
			return
		}
		state = st
	}

	reqs, err := h.RequestService.List(r.Context(), state)
	if err != nil {
		writeServiceError(w, r, err, "list requests")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListRequestsResponse{Requests: requestInfos(reqs)})
}

// HandlePending handles GET /v1/requests/pending
//
//	@Summary		Review queue
//	@Description	Pending requests joined with their client, oldest first.
//	@Tags			Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.ListPendingResponse	"Pending requests"
//	@Router			/v1/requests/pending [get].
func (h *RequestsHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	views, err := h.RequestService.Pending(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list pending requests")
		return
	}

	out := make([]catalogsdk.PendingRequestInfo, len(views))
	for i, v := range views {
		out[i] = pendingInfo(v)
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListPendingResponse{Requests: out})
}

// HandleCounts handles GET /v1/requests/counts
//
//	@Summary		Request counts by state
//	@Tags			Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.RequestCountsResponse	"Counts"
//	@Router			/v1/requests/counts [get].
func (h *RequestsHandler) HandleCounts(w http.ResponseWriter, r *http.Request) {
	c, err := h.RequestService.Counts(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "count requests")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.RequestCountsResponse{
		Pending:  c.Pending,
		Approved: c.Approved,
		Rejected: c.Rejected,
		Total:    c.Total(),
	})
}

// HandleGet handles GET /v1/requests/{id}
//
//	@Summary		Get request
//	@Description	Admins can read any request; a viewer only their own.
//	@Tags			Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:read or profile:read scope"
//	@Param			id				path		string						true	"Request ID (ULID)"
//	@Success		200				{object}	catalogsdk.RequestInfo		"Request"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/requests/{id} [get].
func (h *RequestsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	req, err := h.RequestService.Get(r.Context(), principal(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get request")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, requestInfo(req))
}

// HandleApprove handles POST /v1/requests/{id}/approve
//
//	@Summary		Approve request
//	@Description	Renewals extend the expiration by 30 days from the current expiration, or to new_expiration when given.
//	@Description	Revocations set the expiration to the decision time. The request, the client and the activity log change together.
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:write scope"
//	@Param			id				path		string						true	"Request ID (ULID)"
//	@Param			request			body		catalogsdk.ApproveRequest	false	"Optional expiration override"
//	@Success		200				{object}	catalogsdk.DecisionResponse	"Decided request and updated client"
//	@Failure		400				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse	"Request is not pending"
//	@Failure		503				{object}	catalogsdk.ErrorResponse	"Client update failed; request left pending"
//	@Router			/v1/requests/{id}/approve [post].
func (h *RequestsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.ApproveRequest
	if err := httpx.DecodeJSON(r, &req, true); err != nil {
		writeBadBody(w, err)
		return
	}
	override, err := parseOptionalDate("new_expiration", &req.NewExpiration, h.Location)
	if err != nil {
		writeServiceError(w, r, err, "approve request")
		return
	}

	d, err := h.RequestService.Approve(r.Context(), principal(r).ID, r.PathValue("id"), override)
	if err != nil {
		writeServiceError(w, r, err, "approve request")
		return
	}

	client := clientInfo(d.Client)
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.DecisionResponse{
		Request: requestInfo(d.Request),
		Client:  &client,
	})
}

// HandleReject handles POST /v1/requests/{id}/reject
//
//	@Summary		Reject request
//	@Description	Rejects a pending request. The client's access window is left as it is.
//	@Tags			Requests
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:write scope"
//	@Param			id				path		string						true	"Request ID (ULID)"
//	@Success		200				{object}	catalogsdk.DecisionResponse	"Decided request"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse	"Request is not pending"
//	@Router			/v1/requests/{id}/reject [post].
func (h *RequestsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	req, err := h.RequestService.Reject(r.Context(), principal(r).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "reject request")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.DecisionResponse{Request: requestInfo(req)})
}
