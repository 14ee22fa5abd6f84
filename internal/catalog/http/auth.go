package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
)

// AuthHandler handles sign-in and sign-out for admins and clients.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token. Admins get admin scopes, clients get viewer scopes.
//	@Description	Clients whose access has expired can still log in to request a renewal.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		catalogsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	catalogsdk.LoginResponse	"Access token"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	tok, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.LoginResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
		Role:        string(tok.Role),
		Subject:     tok.Subject,
		Scope:       strings.Join(tok.Role.Scopes(), " "),
	})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Records the sign-out of a client. Tokens are stateless and stay valid until they expire.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token"
//	@Success		204				"Logged out"
//	@Failure		401				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		503				{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), principal(r)); err != nil {
		writeServiceError(w, r, err, "log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first admin of a fresh installation.
//
//	@Summary		Bootstrap the catalog
//	@Description	Creates the first admin. Only available when a bootstrap token is configured and no admin exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		catalogsdk.BootstrapRequest	true	"First admin"
//	@Success		201					{object}	catalogsdk.AdminInfo		"Created admin"
//	@Failure		400					{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		401					{object}	catalogsdk.ErrorResponse	"Missing or invalid bootstrap token"
//	@Failure		404					{object}	catalogsdk.ErrorResponse	"Bootstrap not enabled"
//	@Failure		409					{object}	catalogsdk.ErrorResponse	"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, catalogsdk.ErrorCodeNotFound, "bootstrap endpoint is not enabled")
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req catalogsdk.BootstrapRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeBadBody(w, err)
		return
	}

	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, service.NewAdmin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		writeServiceError(w, r, err, "bootstrap")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, adminInfo(admin))
}
