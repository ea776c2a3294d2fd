package dlq

import (
	nethttp "net/http"

	"github.com/clearpath-au/go-remit/internal/common/http"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/labstack/echo/v4"
)

type dlqHandler struct {
	dlqSvc services.DLQService
}

// DiscardResponse acknowledges a discarded dead letter entry.
type DiscardResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

// New dlq handler will initialize the dlq/ resources endpoint
func New(app *echo.Group, dlqSvc services.DLQService) {
	handler := dlqHandler{
		dlqSvc: dlqSvc,
	}
	api := app.Group("/dlq")
	api.GET("", handler.listDeadLetters)
	api.DELETE("/:id", handler.discard)
}

func (h *dlqHandler) listDeadLetters(c echo.Context) error {
	res, err := h.dlqSvc.ListDeadLetters(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}

// discard drops one parked entry for good. There is no undo; the payout it
// carried was never submitted successfully.
func (h *dlqHandler) discard(c echo.Context) error {
	id := c.Param("id")

	if err := h.dlqSvc.Discard(c.Request().Context(), id); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, DiscardResponse{
		Kind:   "dead-letter",
		ID:     id,
		Status: "discarded",
	})
}
