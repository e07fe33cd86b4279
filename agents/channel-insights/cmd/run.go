package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/scheduler"
)

var runOnce bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze the configured channels on a schedule and e-mail a digest",
	RunE:  runAgent,
}

func init() {
	runCmd.Flags().BoolVar(&runOnce, "once", false, "Run a single analysis pass and exit")
	rootCmd.AddCommand(runCmd)
}

func runAgent(_ *cobra.Command, _ []string) error {
	logger := logging.WithComponent("main")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := channelinsights.NewChannelInsightsAgent(cfg)
	s := scheduler.New(cfg, agent)

	if runOnce {
		logger.Info().Msg("running once")
		if err := agent.Initialize(); err != nil {
			return err
		}
		return s.RunOnce(ctx)
	}

	logger.Info().Msg("starting scheduler")
	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
