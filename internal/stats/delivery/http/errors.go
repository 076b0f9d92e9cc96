package http

import (
	"errors"
	"net/http"

	"trackfit-companion/internal/session"
	pkgErrors "trackfit-companion/pkg/errors"
	"trackfit-companion/pkg/trackfit"
)

func (h *handler) mapError(err error) error {
	var apiErr *trackfit.APIError
	switch {
	case errors.Is(err, session.ErrNotSignedIn):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, session.ErrNotSignedIn.Error())
	case errors.As(err, &apiErr):
		return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, trackfit.DefaultErrorMessage)
	}
}
