package middleware

import (
	"github.com/clearpath-au/go-remit/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderCorrelationID = "X-Correlation-ID"

// Context propagates the caller's correlation id, minting one when absent, so
// a release can be traced from the API call through retries to the audit row.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderCorrelationID)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := log.WithCorrelationID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(HeaderCorrelationID, id)

			return next(c)
		}
	}
}
