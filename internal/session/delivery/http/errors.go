package http

import (
	"errors"
	"net/http"

	"trackfit-companion/internal/session"
	pkgErrors "trackfit-companion/pkg/errors"
)

// mapError translates session errors into HTTP errors. Storage failures are opaque 500s.
func (h *handler) mapError(err error) error {
	if errors.Is(err, session.ErrStartFailed) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, session.ErrStartFailed.Error())
	}
	return pkgErrors.ErrInternalServerError
}
