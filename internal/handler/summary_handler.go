package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/logger"
	"github.com/taskbrief/taskbrief/internal/service"
	"github.com/taskbrief/taskbrief/internal/service/serviceutils"
)

type SummaryHandler struct {
	svc service.SummaryService
}

func NewSummaryHandler(svc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// SummarizeHandler handles POST /summarize. A failure after the summary was
// generated still carries the summary in the response body.
func (h *SummaryHandler) SummarizeHandler(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.svc.Summarize(ctx)
	if err != nil {
		code := errorStatus(err)
		if errors.Is(err, domain.ErrNothingToSummarize) {
			return serviceutils.ResponseError(c, code, err)
		}

		logger.ErrorLog(ctx, "summarize failed: %v", err)
		resp := serviceutils.SummaryResponse{Success: false, Error: err.Error()}
		if result != nil {
			resp.Summary = result.Summary
		}
		return c.JSON(code, resp)
	}

	return c.JSON(http.StatusOK, serviceutils.SummaryResponse{
		Success: true,
		Message: result.Message,
		Summary: result.Summary,
	})
}
