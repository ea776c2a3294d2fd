package release

import (
	"errors"
	nethttp "net/http"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/http"
	"github.com/clearpath-au/go-remit/internal/common/validation"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/labstack/echo/v4"
)

const headerIdempotencyKey = "X-Idempotency-Key"

// codedErr pairs the wire code with the error the service produced so the
// response keeps both the machine-readable code and the specific message.
func codedErr(code string, err error) models.ErrorDetail {
	detail := models.GetErrMap(code)
	detail.ErrorMessage = err
	return detail
}

type releaseHandler struct {
	releaseSvc services.ReleaseService
}

// New release handler will initialize the release/ resources endpoint
func New(app *echo.Group, releaseSvc services.ReleaseService) {
	handler := releaseHandler{
		releaseSvc: releaseSvc,
	}
	api := app.Group("/release")
	api.POST("", handler.createRelease)
	api.GET("/:idempotencyKey", handler.getRelease)
}

// createRelease executes a payment release. A replayed terminal outcome
// answers 200, a fresh execution 201. The idempotency key may come from the
// body or from the X-Idempotency-Key header; the body wins when both are set.
func (h *releaseHandler) createRelease(c echo.Context) error {
	req := new(models.ReleaseRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.Request().Header.Get(headerIdempotencyKey)
	}
	if req.IdempotencyKey == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.CodeMissingIdempotencyKey))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.releaseSvc.Release(c.Request().Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidFingerprint):
			return http.RestErrorResponse(c, nethttp.StatusConflict, codedErr(models.CodeDuplicateRequest, err))
		case errors.Is(err, common.ErrRequestBeingProcessed):
			return http.RestErrorResponse(c, nethttp.StatusConflict, codedErr(models.CodeConcurrentInFlight, err))
		case errors.Is(err, common.ErrDestinationNotAllowed):
			return http.RestErrorResponse(c, nethttp.StatusForbidden, codedErr(models.CodeDestinationDenied, err))
		case errors.Is(err, common.ErrKillSwitchActive):
			return http.RestErrorResponse(c, nethttp.StatusServiceUnavailable, codedErr(models.CodeKillSwitchActive, err))
		case errors.Is(err, common.ErrIdempotencyUnavailable):
			return http.RestErrorResponse(c, nethttp.StatusServiceUnavailable, codedErr(models.CodeIdempotencyDown, err))
		case errors.Is(err, common.ErrProviderRejected):
			return http.RestErrorResponse(c, nethttp.StatusBadGateway, codedErr(models.CodeProviderRejected, err))
		case errors.Is(err, common.ErrRetryExhausted):
			return http.RestErrorResponse(c, nethttp.StatusBadGateway, codedErr(models.CodeRetryExhausted, err))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	code := nethttp.StatusCreated
	if res.Replayed {
		code = nethttp.StatusOK
	}

	return http.RestSuccessResponse(c, code, res)
}

// getRelease looks up the recorded outcome for an idempotency key.
func (h *releaseHandler) getRelease(c echo.Context) error {
	key := c.Param("idempotencyKey")

	res, err := h.releaseSvc.GetRelease(c.Request().Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDataNotFound):
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		case errors.Is(err, common.ErrRequestBeingProcessed):
			return http.RestErrorResponse(c, nethttp.StatusConflict, codedErr(models.CodeConcurrentInFlight, err))
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
