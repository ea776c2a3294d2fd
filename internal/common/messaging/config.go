package messaging

import (
	"context"
	"errors"
	stdlog "log"
	"os"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/config"

	"github.com/Shopify/sarama"
)

func CreateSaramaConsumerConfig(cfg config.ConsumerConfig, logPrefix string) (*sarama.Config, error) {
	if len(cfg.Brokers) == 0 {
		log.Error(context.Background(), "no kafka bootstrap brokers defined, please set the brokers")
		return nil, errors.New("no kafka bootstrap brokers defined, please set the brokers")
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V3_0_0_0
	saramaCfg.ClientID, _ = os.Hostname()
	saramaCfg.Consumer.Return.Errors = true

	if cfg.SessionTimeout > 0 {
		saramaCfg.Consumer.Group.Session.Timeout = cfg.SessionTimeout
	}

	if cfg.IsVerbose {
		sarama.Logger = stdlog.New(os.Stdout, logPrefix, stdlog.LstdFlags)
	}

	if cfg.IsOldest {
		saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	switch cfg.Assignor {
	case "sticky":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategySticky}
	case "roundrobin":
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}
	default:
		saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}
	}

	return saramaCfg, nil
}
