package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-au/go-remit/internal/banking"
	commonCache "github.com/clearpath-au/go-remit/internal/common/cache"
	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/flag"
	"github.com/clearpath-au/go-remit/internal/common/gate"
	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/common/idgenerator"
	"github.com/clearpath-au/go-remit/internal/common/log"
	cMetrics "github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/common/publisher"
	"github.com/clearpath-au/go-remit/internal/common/retry"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/kms"
	"github.com/clearpath-au/go-remit/internal/repositories"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	WriteDB          *sql.DB
	ReadDB           *sql.DB
	Cache            *redis.Client
	RepoCache        repositories.CacheRepository
	RepoCloudStorage repositories.CloudStorageRepository
	Service          *services.Services
	Metrics          cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	err = log.Init(cfg.App.Name,
		log.WithLevel(cfg.App.LogLevel),
		log.WithEnv(cfg.App.Env),
		log.WithCaller(1),
	)
	if err != nil {
		err = fmt.Errorf("failed to init logger: %w", err)
		return
	}

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	flagClient, err := setupFlagClient(cfg)
	if err != nil {
		err = fmt.Errorf("failed to create flag client: %w", err)
		return
	}

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	cloudStorageRepo, err := repositories.NewCloudStorageRepository(&cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to cloud storage: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cloudStorageRepo.Close() })

	bankPort, err := banking.New(cfg.BankProvider, mtc)
	if err != nil {
		err = fmt.Errorf("failed to create bank provider %q: %w", cfg.BankProvider.Name, err)
		return
	}

	// verify verdicts share the redis instance so replicas agree on cached
	// outcomes after a key rotation.
	kmsPort, err := kms.New(cfg.Kms, mtc, kms.WithVerdictCache(commonCache.NewRedisClient[bool](cache)))
	if err != nil {
		err = fmt.Errorf("failed to create kms port %q: %w", cfg.Kms.Name, err)
		return
	}

	// dead letter queue: durable badger store, mirrored to kafka for ops.
	var notifier dlq.Notifier
	if len(cfg.MessageBroker.KafkaConsumer.Brokers) > 0 && cfg.DLQ.Topic != "" {
		producer, errProducer := publisher.NewKafkaSyncProducer(cfg.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", errProducer)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		notifier = dlq.NewKafkaNotifier(producer, cfg.DLQ.Topic)
	}

	dlqStore, err := dlq.NewBadgerStore(cfg.DLQ.Bucket, notifier)
	if err != nil {
		err = fmt.Errorf("failed to open dead letter store: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return dlqStore.Close() })

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)
	killSwitch := gate.NewKillSwitch(cfg.KillSwitch, flagClient)
	allowList := gate.NewAllowList(cfg.AllowList)
	idGenerator := idgenerator.New()

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		cloudStorageRepo,
		bankPort,
		kmsPort,
		dlqStore,
		retryer,
		killSwitch,
		allowList,
		idGenerator,
		mtc,
	)

	return &Setup{
		Config:           cfg,
		NewRelic:         newRelic,
		WriteDB:          writeDB,
		ReadDB:           readDB,
		Cache:            cache,
		RepoCache:        cacheRepo,
		RepoCloudStorage: cloudStorageRepo,
		Service:          srv,
		Metrics:          mtc,
	}, stopper, nil
}

func setupFlagClient(cfg config.Config) (flag.Client, error) {
	if cfg.FeatureFlagSDK.URL == "" {
		return flag.StaticClient{}, nil
	}

	return flag.New(&cfg)
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if config.ParseEnvironment(cfg.App.Env).IsProduction() {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
