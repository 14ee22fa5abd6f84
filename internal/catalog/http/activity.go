package http

import (
	"net/http"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
)

type ActivityHandler struct {
	ActivityService *service.ActivityService
}

// HandleRecord handles POST /v1/activity
//
//	@Summary		Record activity
//	@Description	Viewers record demo_opened and demo_closed for themselves. Admins may record any type.
//	@Tags			Activity
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with activity:write or admin:write scope"
//	@Param			request			body		catalogsdk.RecordActivityRequest	true	"Entry"
//	@Success		201				{object}	catalogsdk.ActivityInfo			"Recorded entry"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		404				{object}	catalogsdk.ErrorResponse		"Unknown demo or client"
//	@Router			/v1/activity [post].
func (h *ActivityHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.RecordActivityRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}
	typ, err := domain.ParseActivityType(req.Type)
	if err != nil {
		writeServiceError(w, r, err, "record activity")
		return
	}

	a, err := h.ActivityService.Record(r.Context(), principal(r), service.NewActivity{
		ClientID: req.ClientID,
		DemoID:   req.DemoID,
		Type:     typ,
		Message:  req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err, "record activity")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, activityInfo(a))
}

// HandleList handles GET /v1/activity
//
//	@Summary		List activity
//	@Tags			Activity
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Param			client_id		query		string							false	"Client ID"
//	@Param			demo_id			query		string							false	"Demo ID"
//	@Param			type			query		string							false	"Activity type"
//	@Param			limit			query		int								false	"1..1000, default 100"
//	@Success		200				{object}	catalogsdk.ListActivityResponse	"Entries, newest first"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/activity [get].
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.ActivityFilter{ClientID: q.Get("client_id"), DemoID: q.Get("demo_id")}

	limit, err := httpx.QueryInt(r, "limit", 0)
	if err != nil {
		writeBadBody(w, err)
		return
	}
	f.Limit = limit

	if raw := q.Get("type"); raw != "" {
		typ, err := domain.ParseActivityType(raw)
		if err != nil {
			writeServiceError(w, r, err, "list activity")
			return
		}
		f.Type = typ
	}

	entries, err := h.ActivityService.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "list activity")
		return
	}

	out := make([]catalogsdk.ActivityInfo, len(entries))
	for i, a := range entries {
		out[i] = activityInfo(a)
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListActivityResponse{Activity: out})
}

// HandleStats handles GET /v1/activity/stats
//
//	@Summary		Activity summary
//	@Tags			Activity
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.ActivityStatsResponse	"Totals, per type and last 24h"
//	@Router			/v1/activity/stats [get].
func (h *ActivityHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.ActivityService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "summarise activity")
		return
	}

	byType := make(map[string]int, len(s.ByType))
	for t, n := range s.ByType {
		byType[string(t)] = n
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ActivityStatsResponse{
		Total:  s.Total,
		ByType: byType,
		Last24: s.Last24,
	})
}

// HandleClientUsage handles GET /v1/stats/client-usage
//
//	@Summary		Usage per client
//	@Description	Demos opened, total opens, logins and last activity for every client, busiest first.
//	@Tags			Activity
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.ClientUsageListResponse	"One row per client"
//	@Router			/v1/stats/client-usage [get].
func (h *ActivityHandler) HandleClientUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.ActivityService.ClientUsage(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "client usage")
		return
	}
	out := make([]catalogsdk.ClientUsageInfo, len(usage))
	for i, u := range usage {
		out[i] = clientUsageInfo(u)
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ClientUsageListResponse{Clients: out})
}

// HandleClientUsageByID handles GET /v1/stats/client-usage/{id}
//
//	@Summary		Usage of one client
//	@Tags			Activity
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:read scope"
//	@Param			id				path		string						true	"Client ID"
//	@Success		200				{object}	catalogsdk.ClientUsageInfo	"Usage, zero when the client has no activity"
//	@Failure		404				{object}	catalogsdk.ErrorResponse	"Unknown client"
//	@Router			/v1/stats/client-usage/{id} [get].
func (h *ActivityHandler) HandleClientUsageByID(w http.ResponseWriter, r *http.Request) {
	u, err := h.ActivityService.ClientUsageFor(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "client usage")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clientUsageInfo(u))
}
