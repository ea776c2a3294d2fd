package main

import (
	"context"
	"sync"
	"time"

	"github.com/clearpath-au/go-remit/cmd/setup"
	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.Service.Release,
		s.Service.Recon,
		s.Service.Evidence,
		s.Service.Audit,
		s.Service.DLQ,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}
