package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights"
	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights/youtube"
	"github.com/aref-vc/youtube-content-analyzer/shared/api"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/scheduler"
	"github.com/aref-vc/youtube-content-analyzer/shared/storage"
)

const shutdownTimeout = 10 * time.Second

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Also run the scheduled channel analysis and report its health")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := logging.WithComponent("main")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	cache, err := storage.NewReportCache(cfg.Storage.DataDir, cfg.Storage.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to create report cache: %w", err)
	}

	opts := []api.Option{
		api.WithReportCache(cache),
		api.WithFetchLimit(cfg.Analysis.FetchVideos),
	}
	agentOpts := []channelinsights.Option{channelinsights.WithReportCache(cache)}
	if err := cfg.ValidateFetch(); err != nil {
		logger.Warn().Err(err).Msg("channel fetching disabled, only record payloads are accepted")
	} else {
		client, err := youtube.NewClient(ctx, &cfg.YouTube)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		opts = append(opts, api.WithCatalog(client))
		agentOpts = append(agentOpts, channelinsights.WithFetcher(client))
	}

	errCh := make(chan error, 2)
	if serveWatch {
		agent := channelinsights.NewChannelInsightsAgent(cfg, agentOpts...)
		s := scheduler.New(cfg, agent)
		opts = append(opts, api.WithMonitor(s.Monitor()))
		go func() {
			if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("scheduler: %w", err)
			}
		}()
	}

	server := api.NewServer(cfg.Server, channelinsights.NewEngine(cfg), opts...)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down API server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return server.Shutdown(shutdownCtx)
}
