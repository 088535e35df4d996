package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/config"
	"github.com/mj1618/a11y-bridge/internal/logging"
	"github.com/mj1618/a11y-bridge/internal/server"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the accessible tree as tools",
	Long: `Start a Model Context Protocol (MCP) server over one bridge. Agents can read
the tree, move focus and invoke actions without shell overhead.

Supported transports:
  stdio   Standard I/O (default, for MCP clients)
  http    Streamable HTTP on /mcp, with /metrics and /healthz

Settings come from --config (YAML) and are overridden by explicit flags.

Examples:
  a11y-bridge serve --fixture maps.yaml
  a11y-bridge serve --transport http --port 8080
  a11y-bridge serve --config bridge.yaml --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "YAML config file")
	serveCmd.Flags().String("transport", config.TransportStdio, "Transport: stdio, http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for the http transport")
	serveCmd.Flags().Duration("cache-ttl", 500*time.Millisecond, "Tree snapshot cache TTL (0 to disable)")
	serveCmd.Flags().Bool("metrics", true, "Serve Prometheus metrics on /metrics (http transport)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level)

	var (
		observers []a11y.Observer
		opts      = []server.Option{server.WithLogger(logger), server.WithCacheTTL(cfg.CacheTTL)}
	)
	if cfg.Metrics {
		m := server.NewMetrics()
		observers = append(observers, m)
		opts = append(opts, server.WithMetrics(m))
	}

	sess, err := session.Open(session.Options{
		Source:    cfg.Fixture,
		Strict:    cfg.Strict,
		Logger:    logger,
		Observers: observers,
	})
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	srv := server.New(sess, opts...)

	if cfg.Transport == config.TransportHTTP {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, cfg.Addr())
	}
	return srv.ServeStdio()
}

// serveConfig loads --config and applies the flags that were set explicitly.
func serveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Transport, _ = flags.GetString("transport")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("cache-ttl") {
		cfg.CacheTTL, _ = flags.GetDuration("cache-ttl")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}

	// Root flags: the fixture also falls back to its env default when the
	// file names none.
	root := rootCmd.PersistentFlags()
	if root.Changed("fixture") || cfg.Fixture == "" {
		cfg.Fixture, _ = root.GetString("fixture")
	}
	if root.Changed("strict") {
		cfg.Strict, _ = root.GetBool("strict")
	}
	if root.Changed("log-level") {
		cfg.LogLevel, _ = root.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
