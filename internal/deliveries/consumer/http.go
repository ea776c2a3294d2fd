package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/deliveries/http/health"
)

type healthSvc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*healthSvc)(nil)

func (s *healthSvc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *healthSvc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		return s.e.Shutdown(ctx)
	}
}

// NewHealthHTTPServer exposes liveness and prometheus metrics for a running
// consumer on its own port, separate from the api server.
func NewHealthHTTPServer(ctx context.Context, conf config.Config) *healthSvc {
	app := echo.New()
	svc := &healthSvc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.MessageBroker.KafkaConsumer.HealthPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	// Endpoint debug/pprof/
	if !config.ParseEnvironment(conf.App.Env).IsProduction() {
		pprof.Register(app)
	}

	app.Use(echoprometheus.NewMiddleware(fmt.Sprintf("%s_consumer", conf.App.Name)))
	app.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := app.Group("/api")
	health.New(apiGroup)

	return svc
}
