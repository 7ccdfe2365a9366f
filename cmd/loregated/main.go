package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/loregate/loregate/internal/config"
	"github.com/loregate/loregate/internal/server"
	"github.com/loregate/loregate/internal/version"
)

const shutdownGrace = 10 * time.Second

var (
	configPath string
	listenAddr string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "loregated",
		Short:         "Loregate daemon - relays data requests to the published lore repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDaemon,
	}
	rootCmd.Version = version.String()
	rootCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (optional)")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}

	srv := server.New(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	logrus.WithFields(logrus.Fields{
		"version":   version.String(),
		"data_base": cfg.DataBaseURL,
		"dist_base": cfg.DistBaseURL,
	}).Info("[Gateway] started")

	select {
	case err := <-errChan:
		return fmt.Errorf("gateway failed: %w", err)
	case sig := <-sigChan:
		logrus.WithField("signal", sig.String()).Info("[Gateway] shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
