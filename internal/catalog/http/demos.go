package http

import (
	"net/http"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
)

type DemosHandler struct {
	DemoService *service.DemoService
}

// HandleList handles GET /v1/demos
//
//	@Summary		List demos
//	@Description	Viewers only see active demos, and only while their access is active or expiring_soon.
//	@Tags			Demos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with catalog:read scope"
//	@Param			state			query		string						false	"active, inactive or maintenance (admins only)"
//	@Param			vertical		query		string						false	"Vertical, case-insensitive"
//	@Param			horizontal		query		string						false	"Horizontal, case-insensitive"
//	@Success		200				{object}	catalogsdk.ListDemosResponse	"Demos"
//	@Failure		409				{object}	catalogsdk.ErrorResponse	"access_expired or access_not_started"
//	@Router			/v1/demos [get].
func (h *DemosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.DemoFilter{Vertical: q.Get("vertical"), Horizontal: q.Get("horizontal")}
	if raw := q.Get("state"); raw != "" {
		st, err := domain.ParseDemoState(raw)
		if err != nil {
			writeServiceError(w, r, err, "list demos")
			return
		}
		f.State = st
	}

	demos, err := h.DemoService.List(r.Context(), principal(r), f)
	if err != nil {
		writeServiceError(w, r, err, "list demos")
		return
	}

	out := make([]catalogsdk.DemoInfo, len(demos))
	for i, d := range demos {
		out[i] = demoInfo(d)
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListDemosResponse{Demos: out})
}

// HandleGet handles GET /v1/demos/{id}
//
//	@Summary		Get demo
//	@Tags			Demos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with catalog:read scope"
//	@Param			id				path		string						true	"Demo ID (ULID)"
//	@Success		200				{object}	catalogsdk.DemoInfo			"Demo"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse	"access_expired or access_not_started"
//	@Router			/v1/demos/{id} [get].
func (h *DemosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.DemoService.Get(r.Context(), principal(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get demo")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, demoInfo(d))
}

// HandleCreate handles POST /v1/demos
//
//	@Summary		Create demo
//	@Tags			Demos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:write scope"
//	@Param			request			body		catalogsdk.CreateDemoRequest	true	"New demo"
//	@Success		201				{object}	catalogsdk.DemoInfo			"Created demo"
//	@Failure		400				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/demos [post].
func (h *DemosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.CreateDemoRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}
	state, err := domain.ParseDemoState(req.State)
	if err != nil {
		writeServiceError(w, r, err, "create demo")
		return
	}

	d, err := h.DemoService.Create(r.Context(), principal(r).ID, domain.Demo{
		Name:         req.Name,
		Description:  req.Description,
		Vertical:     req.Vertical,
		Horizontal:   req.Horizontal,
		Keywords:     req.Keywords,
		ProjectCode:  req.ProjectCode,
		URL:          req.URL,
		State:        state,
		SalesName:    req.SalesName,
		SalesContact: req.SalesContact,
		SalesPhoto:   req.SalesPhotoURL,
	})
	if err != nil {
		writeServiceError(w, r, err, "create demo")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, demoInfo(d))
}

// HandleUpdate handles PUT /v1/demos/{id}
//
//	@Summary		Update demo
//	@Description	Partial update; omitted fields are left unchanged.
//	@Tags			Demos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:write scope"
//	@Param			id				path		string						true	"Demo ID (ULID)"
//	@Param			request			body		catalogsdk.UpdateDemoRequest	true	"Fields to change"
//	@Success		200				{object}	catalogsdk.DemoInfo			"Updated demo"
//	@Failure		400				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/demos/{id} [put].
func (h *DemosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.UpdateDemoRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	patch := domain.DemoPatch{
		Name:         req.Name,
		Description:  req.Description,
		Vertical:     req.Vertical,
		Horizontal:   req.Horizontal,
		Keywords:     req.Keywords,
		ProjectCode:  req.ProjectCode,
		URL:          req.URL,
		SalesName:    req.SalesName,
		SalesContact: req.SalesContact,
		SalesPhoto:   req.SalesPhotoURL,
	}
	if req.State != nil {
		st, err := domain.ParseDemoState(*req.State)
		if err != nil {
			writeServiceError(w, r, err, "update demo")
			return
		}
		patch.State = &st
	}

	d, err := h.DemoService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "update demo")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, demoInfo(d))
}

// HandleDelete handles DELETE /v1/demos/{id}
//
//	@Summary		Delete demo
//	@Tags			Demos
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with admin:write scope"
//	@Param			id				path	string	true	"Demo ID (ULID)"
//	@Success		204				"Demo deleted"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/demos/{id} [delete].
func (h *DemosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DemoService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete demo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
