package cmd

import (
	"context"
	stdlog "log"
	"os"

	"github.com/clearpath-au/go-remit/cmd/setup"
	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/deliveries/consumer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling bank statement messages",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runConsumerCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling incoming bank statement batches, available consumer type: statements`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		stdlog.Fatalf("failed to setup app: %v", err)
	}

	log.Infof(ctx, "initializing consumer: %s", consumerName)

	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s.Metrics)
	if err != nil {
		graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		log.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	healthProcess := consumer.NewHealthHTTPServer(ctx, s.Config)

	starters = append(starters, consumerProcess.Start(), healthProcess.Start())
	// graceful.StopProcess reverses the slice, so append in the opposite of
	// the desired shutdown order: health first, then the consumer, then the
	// shared resources from setup.
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, consumerStopper...)
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, healthProcess.Stop())

	graceful.StartProcessAtBackground(starters...)

	log.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)

	log.Infof(ctx, "consumer %s stopped!", consumerName)
}
