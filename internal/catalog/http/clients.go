package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// ClientsHandler handles client management and the viewer self-service
// endpoints.
type ClientsHandler struct {
	ClientService  *service.ClientService
	RequestService *service.RequestService
	Location       *time.Location
}

// HandleList handles GET /v1/clients
//
//	@Summary		List clients
//	@Description	Lists clients newest first. Status and days remaining are computed at read time.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Param			status			query		string							false	"future, active, expiring_soon or expired"
//	@Param			email			query		string							false	"Email substring"
//	@Success		200				{object}	catalogsdk.ListClientsResponse	"Clients"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		401				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := service.ClientQuery{Email: r.URL.Query().Get("email")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, err := domain.ParseClientStatus(raw)
		if err != nil {
			writeServiceError(w, r, err, "list clients")
			return
		}
		q.Status = st
	}

	views, err := h.ClientService.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "list clients")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListClientsResponse{Clients: clientInfos(views)})
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create client
//	@Description	Registers a client. Registration defaults to now; a password is generated and returned once when omitted.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:write scope"
//	@Param			request			body		catalogsdk.CreateClientRequest	true	"New client"
//	@Success		201				{object}	catalogsdk.CreateClientResponse	"Created client"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse		"Email already registered"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.CreateClientRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	expires, err := parseDate("expiration_date", req.ExpirationDate, h.Location)
	if err != nil {
		writeServiceError(w, r, err, "create client")
		return
	}
	registered, err := parseOptionalDate("registration_date", &req.RegistrationDate, h.Location)
	if err != nil {
		writeServiceError(w, r, err, "create client")
		return
	}

	view, generated, err := h.ClientService.Create(r.Context(), principal(r).ID, service.NewClient{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		RegisteredAt: registered,
		ExpiresAt:    expires,
	})
	if err != nil {
		writeServiceError(w, r, err, "create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, catalogsdk.CreateClientResponse{
		Client:            clientInfo(view),
		GeneratedPassword: generated,
	})
}

// HandleGet handles GET /v1/clients/{id}
//
//	@Summary		Get client
//	@Description	Admins can read any client; a viewer can only read themself.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:read or profile:read scope"
//	@Param			id				path		string						true	"Client ID (ULID)"
//	@Success		200				{object}	catalogsdk.ClientInfo		"Client"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.ClientService.Get(r.Context(), principal(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientInfo(view))
}

// HandleUpdate handles PUT /v1/clients/{id}
//
//	@Summary		Update client
//	@Description	Partial update. Omitted fields are left unchanged; the status is recomputed on the next read.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:write scope"
//	@Param			id				path		string							true	"Client ID (ULID)"
//	@Param			request			body		catalogsdk.UpdateClientRequest	true	"Fields to change"
//	@Success		200				{object}	catalogsdk.ClientInfo			"Updated client"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		404				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse		"Email already registered"
//	@Router			/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.UpdateClientRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	patch := domain.ClientPatch{Name: req.Name, Email: req.Email, Password: req.Password}
	var err error
	if patch.RegisteredAt, err = parseOptionalDate("registration_date", req.RegistrationDate, h.Location); err != nil {
		writeServiceError(w, r, err, "update client")
		return
	}
	if patch.ExpiresAt, err = parseOptionalDate("expiration_date", req.ExpirationDate, h.Location); err != nil {
		writeServiceError(w, r, err, "update client")
		return
	}

	view, err := h.ClientService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "update client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientInfo(view))
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete client
//	@Description	Deletes a client together with its requests and activity.
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with admin:write scope"
//	@Param			id				path	string	true	"Client ID (ULID)"
//	@Success		204				"Client deleted"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.ClientService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "delete client")
		return
	}
	slogx.FromContext(r.Context()).Info("client deleted", "client_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRevoke handles POST /v1/clients/{id}/revoke
//
//	@Summary		Revoke client access
//	@Description	Sets the expiration to now; the client becomes expired immediately.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:write scope"
//	@Param			id				path		string						true	"Client ID (ULID)"
//	@Success		200				{object}	catalogsdk.ClientInfo		"Revoked client"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id}/revoke [post].
func (h *ClientsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	view, err := h.ClientService.Revoke(r.Context(), principal(r).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "revoke client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientInfo(view))
}

// HandleMe handles GET /v1/me
//
//	@Summary		Own client view
//	@Description	The signed-in client's status, pending request and whether a renewal can be requested now.
//	@Tags			Self-service
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with profile:read scope"
//	@Success		200				{object}	catalogsdk.MeResponse		"Self view"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *ClientsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	me, err := h.ClientService.Me(r.Context(), principal(r).ID)
	if err != nil {
		writeServiceError(w, r, err, "load profile")
		return
	}

	out := catalogsdk.MeResponse{
		Client:            clientInfo(me.ClientView),
		CanRequestRenewal: me.CanRequestRenewal,
	}
	if me.PendingRequest != nil {
		pr := requestInfo(*me.PendingRequest)
		out.PendingRequest = &pr
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMyRequests handles GET /v1/me/requests
//
//	@Summary		Own requests
//	@Tags			Self-service
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with profile:read scope"
//	@Success		200				{object}	catalogsdk.ListRequestsResponse	"Requests, newest first"
//	@Router			/v1/me/requests [get].
func (h *ClientsHandler) HandleMyRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.RequestService.ListForClient(r.Context(), principal(r).ID)
	if err != nil {
		writeServiceError(w, r, err, "list requests")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListRequestsResponse{Requests: requestInfos(reqs)})
}

// HandleStats handles GET /v1/stats/clients
//
//	@Summary		Client status counts
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.ClientStatsResponse	"Counts by status"
//	@Router			/v1/stats/clients [get].
func (h *ClientsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	c, err := h.ClientService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "count clients")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ClientStatsResponse{
		Total:        c.Total,
		Active:       c.Active,
		ExpiringSoon: c.ExpiringSoon,
		Expired:      c.Expired,
		Future:       c.Future,
	})
}
