package http

import (
	"errors"
	"net/http"

	"trackfit-companion/internal/checklist"
	pkgErrors "trackfit-companion/pkg/errors"
)

// mapError translates checklist errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, checklist.ErrPersistFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Unable to save checklist.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
