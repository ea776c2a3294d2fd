package middleware

import (
	"fmt"
	"net/http"

	commonhttp "github.com/clearpath-au/go-remit/internal/common/http"

	"github.com/labstack/echo/v4"
)

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get("X-Secret-Key")
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "required secret key"))
			}

			if secretKey != m.conf.SecretKey {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "invalid secret key"))
			}

			return next(c)
		}
	}
}
