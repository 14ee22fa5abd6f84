package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/pkg/catalogsdk"
	"github.com/aussiebroadwan/democat/pkg/httpx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// writeServiceError maps a service error onto the wire taxonomy. action
// names the failed operation for logs and for 5xx descriptions.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := slogx.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, catalogsdk.ErrorCodeInvalidGrant, err.Error())
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid bootstrap token")
	case errors.Is(err, domain.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, catalogsdk.ErrorCodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, catalogsdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, catalogsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, domain.ErrDependency):
		log.Error("dependency failure", "action", action, "error", err)
		httpx.WriteError(w, http.StatusServiceUnavailable, catalogsdk.ErrorCodeDependency, "failed to "+action+"; safe to retry")
	default:
		log.Error("unexpected failure", "action", action, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, catalogsdk.ErrorCodeServerError, "failed to "+action)
	}
}

func writeBadBody(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, catalogsdk.ErrorCodeValidation, err.Error())
}

// principal rebuilds the caller from the claims AuthnMiddleware stored.
func principal(r *http.Request) domain.Principal {
	claims, _ := httpx.ClaimsFromContext(r.Context())
	return service.PrincipalFromClaims(claims)
}

// parseDate reads an ISO-8601 date or timestamp. Values without a zone are
// taken in loc.
func parseDate(field, raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := domain.ParseTimestampIn(raw, loc)
	if err != nil {
		return time.Time{}, domain.Validationf("%s: %s", field, strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "))
	}
	return t, nil
}

func parseOptionalDate(field string, raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseDate(field, *raw, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
