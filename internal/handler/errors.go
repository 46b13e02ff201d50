package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/logger"
	"github.com/taskbrief/taskbrief/internal/service/serviceutils"
)

var errInvalidBody = errors.New("invalid request body")

// errorStatus is the single error-kind to status-code table. Every handler
// funnels failures through it; anything unrecognized is a 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrNothingToSummarize),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError terminates the request with the mapped status and an {error}
// body. Server-side failures are logged; client mistakes are not.
func respondError(c echo.Context, err error) error {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		logger.ErrorLog(c.Request().Context(), "request failed: %v", err)
	}
	return serviceutils.ResponseError(c, code, err)
}

// parseID validates the :id path segment. IDs are positive Datastore key IDs;
// anything else is malformed and never reaches the store.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
