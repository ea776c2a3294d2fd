package gate

import (
	"fmt"
	"strings"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"
)

// AllowList rejects destinations outside the configured revenue-office set.
// Tax remittances only ever go to a handful of known endpoints, so anything
// else is treated as misrouting regardless of how well-formed it looks.
type AllowList struct {
	bsbPrefixes     []string
	billerCodes     map[string]struct{}
	mandatePrefixes []string
}

func NewAllowList(cfg config.AllowListConfig) *AllowList {
	billers := make(map[string]struct{}, len(cfg.BillerCodes))
	for _, code := range cfg.BillerCodes {
		billers[code] = struct{}{}
	}
	return &AllowList{
		bsbPrefixes:     cfg.BSBPrefixes,
		billerCodes:     billers,
		mandatePrefixes: cfg.MandatePrefixes,
	}
}

// Check returns ErrDestinationNotAllowed when the destination falls outside
// the allow list for its rail. An empty list for a rail blocks that rail
// entirely.
func (a *AllowList) Check(rail models.Rail, dest models.Destination) error {
	switch rail {
	case models.RailEFT:
		if hasPrefix(dest.BSB, a.bsbPrefixes) {
			return nil
		}
		return fmt.Errorf("%w: bsb %s", common.ErrDestinationNotAllowed, dest.BSB)
	case models.RailBPAY:
		if _, ok := a.billerCodes[dest.BillerCode]; ok {
			return nil
		}
		return fmt.Errorf("%w: biller code %s", common.ErrDestinationNotAllowed, dest.BillerCode)
	case models.RailPayTo:
		if hasPrefix(dest.MandateID, a.mandatePrefixes) {
			return nil
		}
		return fmt.Errorf("%w: mandate %s", common.ErrDestinationNotAllowed, dest.MandateID)
	}
	return fmt.Errorf("%w: unknown rail %s", common.ErrDestinationNotAllowed, rail)
}

func hasPrefix(value string, prefixes []string) bool {
	if value == "" {
		return false
	}
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}
