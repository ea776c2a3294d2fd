package config

import (
	"time"
)

type (
	Config struct {
		App      App      `json:"app" mapstructure:"app"`
		Postgres Postgres `json:"postgres" mapstructure:"postgres"`
		Redis    Redis    `json:"redis" mapstructure:"redis"`

		SecretKey       string `json:"secret_key" mapstructure:"secret_key"`
		GcloudProjectID string `json:"gcloud_project_id" mapstructure:"gcloud_project_id"`

		NewRelicLicenseKey string `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		BankProvider       BankProviderConfig       `json:"bank_provider" mapstructure:"bank_provider"`
		Kms                KmsConfig                `json:"kms" mapstructure:"kms"`
		Release            ReleaseConfig            `json:"release" mapstructure:"release"`
		Reconciliation     ReconciliationConfig     `json:"reconciliation" mapstructure:"reconciliation"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
		KillSwitch         KillSwitchConfig         `json:"kill_switch" mapstructure:"kill_switch"`
		AllowList          AllowListConfig          `json:"allow_list" mapstructure:"allow_list"`
		DLQ                DLQConfig                `json:"dlq" mapstructure:"dlq"`
		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		CloudStorage       CloudStorageConfig       `json:"cloud_storage" mapstructure:"cloud_storage"`
		FeatureFlagSDK     FeatureFlagSDKConfig     `json:"feature_flag_sdk" mapstructure:"feature_flag_sdk"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// BankProviderConfig selects the concrete rail provider once at bootstrap.
	// Valid names: mock, simulator, mtls.
	BankProviderConfig struct {
		Name           string        `json:"name" mapstructure:"name"`
		BaseURL        string        `json:"base_url" mapstructure:"base_url"`
		Timeout        time.Duration `json:"timeout" mapstructure:"timeout"`
		ClientCertFile string        `json:"client_cert_file" mapstructure:"client_cert_file"`
		ClientKeyFile  string        `json:"client_key_file" mapstructure:"client_key_file"`
		CACertFile     string        `json:"ca_cert_file" mapstructure:"ca_cert_file"`

		// Simulator-only knobs.
		SimFailEveryN int           `json:"sim_fail_every_n" mapstructure:"sim_fail_every_n"`
		SimLatency    time.Duration `json:"sim_latency" mapstructure:"sim_latency"`
	}

	KmsConfig struct {
		Name    string        `json:"name" mapstructure:"name"` // local | http
		BaseURL string        `json:"base_url" mapstructure:"base_url"`
		Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
		KeyID   string        `json:"key_id" mapstructure:"key_id"`
		// Seed is a hex encoded ed25519 seed for the local signer. Dev only.
		Seed string `json:"seed" mapstructure:"seed"`
	}

	ReleaseConfig struct {
		IdempotencyTTL  time.Duration `json:"idempotency_ttl" mapstructure:"idempotency_ttl"`
		RulesManifestID string        `json:"rules_manifest_id" mapstructure:"rules_manifest_id"`
	}

	ReconciliationConfig struct {
		// AmountToleranceCents is the absolute tolerance when cross-checking a
		// statement line against the release amount.
		AmountToleranceCents int64 `json:"amount_tolerance_cents" mapstructure:"amount_tolerance_cents"`
		// UnmatchedRetentionDays bounds how long unmatched lines keep being
		// re-attempted before they require manual attention.
		UnmatchedRetentionDays int `json:"unmatched_retention_days" mapstructure:"unmatched_retention_days"`
		MaxMatchAttempts       int `json:"max_match_attempts" mapstructure:"max_match_attempts"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		BaseDelay         time.Duration `json:"base_delay" mapstructure:"base_delay"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		Jitter            bool          `json:"jitter" mapstructure:"jitter"`
	}

	KillSwitchConfig struct {
		Provider string `json:"provider" mapstructure:"provider"` // static | unleash
		Active   bool   `json:"active" mapstructure:"active"`
		Reason   string `json:"reason" mapstructure:"reason"`
		FlagName string `json:"flag_name" mapstructure:"flag_name"`
	}

	AllowListConfig struct {
		// BSBPrefixes lists the BSB prefixes we are allowed to pay into.
		BSBPrefixes []string `json:"bsb_prefixes" mapstructure:"bsb_prefixes"`
		// BillerCodes lists the BPAY biller codes of the revenue offices.
		BillerCodes []string `json:"biller_codes" mapstructure:"biller_codes"`
		// MandatePrefixes lists accepted PayTo mandate id prefixes.
		MandatePrefixes []string `json:"mandate_prefixes" mapstructure:"mandate_prefixes"`
	}

	DLQConfig struct {
		Bucket string `json:"bucket" mapstructure:"bucket"`
		Topic  string `json:"topic" mapstructure:"topic"`
	}

	MessageBroker struct {
		KafkaConsumer ConsumerConfig `json:"kafka_consumer" mapstructure:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers         []string      `json:"brokers" mapstructure:"brokers"`
		TopicStatements string        `json:"topic_statements" mapstructure:"topic_statements"`
		TopicDLQ        string        `json:"topic_dlq" mapstructure:"topic_dlq"`
		ConsumerGroup   string        `json:"consumer_group" mapstructure:"consumer_group"`
		SessionTimeout  time.Duration `json:"session_timeout" mapstructure:"session_timeout"`
		HealthPort      int           `json:"health_port" mapstructure:"health_port"`
		Assignor        string        `json:"assignor" mapstructure:"assignor"`
		IsOldest        bool          `json:"is_oldest" mapstructure:"is_oldest"`
		IsVerbose       bool          `json:"is_verbose" mapstructure:"is_verbose"`
	}

	CloudStorageConfig struct {
		BucketName string `json:"bucket_name" mapstructure:"bucket_name"`
		BaseURL    string `json:"base_url" mapstructure:"base_url"`
		// ExportPrefix is the object prefix for audit export archives.
		ExportPrefix string        `json:"export_prefix" mapstructure:"export_prefix"`
		SignedURLTTL time.Duration `json:"signed_url_ttl" mapstructure:"signed_url_ttl"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url" mapstructure:"url"`
		Token           string        `json:"token" mapstructure:"token"`
		Env             string        `json:"env" mapstructure:"env"`
		RefreshInterval time.Duration `json:"refresh_interval" mapstructure:"refresh_interval"`
	}
)
