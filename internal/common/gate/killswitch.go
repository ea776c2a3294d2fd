package gate

import (
	"context"

	"github.com/clearpath-au/go-remit/internal/common/flag"
	"github.com/clearpath-au/go-remit/internal/config"
)

// KillSwitch is consulted immediately before any money movement. The check is
// repeated per release attempt so an operator toggle takes effect on requests
// already in flight.
type KillSwitch interface {
	State(ctx context.Context) (active bool, reason string)
}

const (
	providerStatic  = "static"
	providerUnleash = "unleash"
)

func NewKillSwitch(cfg config.KillSwitchConfig, flags flag.Client) KillSwitch {
	if cfg.Provider == providerUnleash && flags != nil {
		return &flagKillSwitch{flagName: cfg.FlagName, flags: flags}
	}
	return &staticKillSwitch{active: cfg.Active, reason: cfg.Reason}
}

// staticKillSwitch answers from bootstrap config. The process has to restart
// to change it, which is acceptable for local and test runs.
type staticKillSwitch struct {
	active bool
	reason string
}

func (s *staticKillSwitch) State(_ context.Context) (bool, string) {
	return s.active, s.reason
}

// flagKillSwitch re-reads the toggle on every call, so the flag service is the
// single place operators flip during an incident.
type flagKillSwitch struct {
	flagName string
	flags    flag.Client
}

func (f *flagKillSwitch) State(_ context.Context) (bool, string) {
	if f.flags.IsEnabled(f.flagName) {
		return true, "feature flag " + f.flagName + " is enabled"
	}
	return false, ""
}
