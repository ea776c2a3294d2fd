package services

import (
	"github.com/clearpath-au/go-remit/internal/banking"
	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/gate"
	"github.com/clearpath-au/go-remit/internal/common/idgenerator"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/common/retry"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/kms"
	"github.com/clearpath-au/go-remit/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cacheRepo    repositories.CacheRepository
	cloudStorage repositories.CloudStorageRepository

	bankPort   banking.Port
	kmsPort    kms.Port
	dlqStore   dlq.Store
	retryer    retry.Retryer
	killSwitch gate.KillSwitch
	allowList  *gate.AllowList

	idgenerator idgenerator.Generator
	metrics     metrics.Metrics

	common service

	Release  *releaseService
	Recon    *reconService
	Evidence *evidenceService
	Audit    *auditService
	DLQ      *dlqService
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	cloudStorage repositories.CloudStorageRepository,
	bankPort banking.Port,
	kmsPort kms.Port,
	dlqStore dlq.Store,
	retryer retry.Retryer,
	killSwitch gate.KillSwitch,
	allowList *gate.AllowList,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		cacheRepo:    cacheRepo,
		cloudStorage: cloudStorage,
		bankPort:     bankPort,
		kmsPort:      kmsPort,
		dlqStore:     dlqStore,
		retryer:      retryer,
		killSwitch:   killSwitch,
		allowList:    allowList,
		idgenerator:  idgenerator,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Release = (*releaseService)(&srv.common)
	srv.Recon = (*reconService)(&srv.common)
	srv.Evidence = (*evidenceService)(&srv.common)
	srv.Audit = (*auditService)(&srv.common)
	srv.DLQ = (*dlqService)(&srv.common)

	return srv
}
