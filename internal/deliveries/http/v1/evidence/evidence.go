package evidence

import (
	"errors"
	nethttp "net/http"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/http"
	"github.com/clearpath-au/go-remit/internal/common/validation"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/labstack/echo/v4"
)

type evidenceHandler struct {
	evidenceSvc services.EvidenceService
}

// New evidence handler will initialize the evidence/ resources endpoint
func New(app *echo.Group, evidenceSvc services.EvidenceService) {
	handler := evidenceHandler{
		evidenceSvc: evidenceSvc,
	}
	api := app.Group("/evidence")
	api.GET("/:periodId", handler.getEvidence)
}

type GetEvidenceRequest struct {
	ABN      string `json:"abn" query:"abn" validate:"required,abn"`
	TaxType  string `json:"taxType" query:"taxType" validate:"required,oneof=GST PAYGW PAYGI FBT"`
	PeriodID string `json:"periodId" param:"periodId" validate:"required"`
}

// getEvidence assembles the evidence bundle for one obligation period. The
// bundle is recomputed on every call, never served from a store.
func (h *evidenceHandler) getEvidence(c echo.Context) error {
	req := new(GetEvidenceRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.evidenceSvc.Build(c.Request().Context(), req.ABN, req.TaxType, req.PeriodID)
	if err != nil {
		if errors.Is(err, common.ErrLedgerPeriodGone) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
