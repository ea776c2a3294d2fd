package config

import (
	"strings"
)

// Environment is the deployment tier the process runs in. Unrecognized
// values are treated as non-production.
type Environment string

const (
	EnvUndefined Environment = ""
	EnvLocal     Environment = "local"
	EnvDev       Environment = "dev"
	EnvStaging   Environment = "staging"
	EnvProd      Environment = "prod"
)

func ParseEnvironment(s string) Environment {
	switch strings.ToLower(s) {
	case "local":
		return EnvLocal
	case "dev":
		return EnvDev
	case "staging", "uat":
		return EnvStaging
	case "prod", "production":
		return EnvProd
	default:
		return EnvUndefined
	}
}

// IsProduction gates the surfaces that must never ship outside prod, such
// as pprof endpoints.
func (e Environment) IsProduction() bool {
	return e == EnvProd
}
