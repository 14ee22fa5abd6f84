package http

import (
	"net/http"

	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
)

type AdminsHandler struct {
	AdminService *service.AdminService
}

// HandleList handles GET /v1/admins
//
//	@Summary		List admins
//	@Tags			Admins
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Success		200				{object}	catalogsdk.ListAdminsResponse	"Admins"
//	@Failure		401				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/admins [get].
func (h *AdminsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	admins, err := h.AdminService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list admins")
		return
	}

	out := make([]catalogsdk.AdminInfo, len(admins))
	for i, a := range admins {
		out[i] = adminInfo(a)
	}
	httpx.WriteJSON(w, http.StatusOK, catalogsdk.ListAdminsResponse{Admins: out})
}

// HandleCreate handles POST /v1/admins
//
//	@Summary		Create admin
//	@Tags			Admins
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:write scope"
//	@Param			request			body		catalogsdk.CreateAdminRequest	true	"New admin"
//	@Success		201				{object}	catalogsdk.AdminInfo			"Created admin"
//	@Failure		400				{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		409				{object}	catalogsdk.ErrorResponse		"Email already registered"
//	@Router			/v1/admins [post].
func (h *AdminsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.CreateAdminRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	admin, err := h.AdminService.Create(r.Context(), service.NewAdmin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		writeServiceError(w, r, err, "create admin")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, adminInfo(admin))
}
