package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/graceful"
	commonhttp "github.com/clearpath-au/go-remit/internal/common/http"
	"github.com/clearpath-au/go-remit/internal/common/http/middleware"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/deliveries/http/health"
	"github.com/clearpath-au/go-remit/internal/services"

	v1audit "github.com/clearpath-au/go-remit/internal/deliveries/http/v1/audit"
	v1dlq "github.com/clearpath-au/go-remit/internal/deliveries/http/v1/dlq"
	v1evidence "github.com/clearpath-au/go-remit/internal/deliveries/http/v1/evidence"
	v1reconciliation "github.com/clearpath-au/go-remit/internal/deliveries/http/v1/reconciliation"
	v1release "github.com/clearpath-au/go-remit/internal/deliveries/http/v1/release"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	releaseService services.ReleaseService,
	reconService services.ReconciliationService,
	evidenceService services.EvidenceService,
	auditService services.AuditService,
	dlqService services.DLQService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", log.CorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if !config.ParseEnvironment(conf.App.Env).IsProduction() {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1release.New(v1Group, releaseService)
	v1reconciliation.New(v1Group, reconService)
	v1evidence.New(v1Group, evidenceService)
	v1audit.New(v1Group, auditService)
	v1dlq.New(v1Group, dlqService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
