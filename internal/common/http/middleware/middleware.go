package middleware

import (
	"github.com/clearpath-au/go-remit/internal/config"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{
		conf: conf,
	}
}
