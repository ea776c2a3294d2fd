package reconciliation

import (
	nethttp "net/http"

	"github.com/clearpath-au/go-remit/internal/common/http"
	"github.com/clearpath-au/go-remit/internal/common/validation"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconSvc services.ReconciliationService
}

// New reconciliation handler will initialize the reconciliation/ resources endpoint
func New(app *echo.Group, reconSvc services.ReconciliationService) {
	handler := reconciliationHandler{
		reconSvc: reconSvc,
	}
	api := app.Group("/reconciliation")
	api.POST("/ingest", handler.ingestStatements)
	api.GET("/unmatched", handler.listUnmatched)
}

// ingestStatements matches a bank statement batch against recorded receipts.
// The summary always comes back 200; per-line outcomes live in results.
func (h *reconciliationHandler) ingestStatements(c echo.Context) error {
	req := new(models.BankStatementBatch)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.reconSvc.Ingest(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *reconciliationHandler) listUnmatched(c echo.Context) error {
	res, err := h.reconSvc.ListUnmatched(c.Request().Context(), c.QueryParam("provider"))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}
