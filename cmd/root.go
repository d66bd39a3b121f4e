// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the kuzzle SDK.
// Each subcommand builds an SDK client from the configuration, runs one or a
// few controller operations against the server, and renders the result with
// pterm. The session token is never persisted: commands that need one read it
// from --jwt or KUZZLE_JWT.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/config"
	"kuzzle/sdk/internal/httperrors"
	"kuzzle/sdk/pkg/controllers/server"
	"kuzzle/sdk/pkg/kuzzle"
	"kuzzle/sdk/pkg/protocol"
)

var (
	showVersion bool

	flagHost        string
	flagPort        int
	flagSSL         bool
	flagJWT         string
	flagRoutes      string
	flagFetchRoutes bool
	flagVerbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "kuzzle",
	Short:         "Command-line client for a Kuzzle server",
	Long:          `kuzzle sends controller/action requests to a Kuzzle server over HTTP and prints the results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !showVersion {
			return cmd.Help()
		}

		fmt.Printf("kuzzle-cli %s\n", Version)
		k, cfg, err := newClient(cmd.Context())
		if err != nil {
			fmt.Println("server unknown")
			return nil
		}
		info, err := server.Info(cmd.Context(), k)
		if err != nil {
			fmt.Printf("server unknown (%s:%d)\n", cfg.Host, cfg.Port)
			return nil
		}
		fmt.Printf("server %s\n", serverVersion(info))
		return nil
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and server version information")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagHost, "host", "", "Server host (overrides config and KUZZLE_HOST)")
	pf.IntVar(&flagPort, "port", 0, "Server port (overrides config and KUZZLE_PORT)")
	pf.BoolVar(&flagSSL, "ssl", false, "Use HTTPS")
	pf.StringVar(&flagJWT, "jwt", "", "Session token (overrides KUZZLE_JWT)")
	pf.StringVar(&flagRoutes, "routes", "", "Route declaration file (default: built-in routes)")
	pf.BoolVar(&flagFetchRoutes, "fetch-routes", false, "Read routes from the server's public API")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug output")
}

// setupLogging routes SDK logs through pterm at the configured level.
// --verbose always wins over the log_level setting.
func setupLogging() {
	level := pterm.LogLevelInfo
	if cfg, err := config.Load(); err == nil {
		level = logLevel(cfg.LogLevel)
	}
	if flagVerbose {
		level = pterm.LogLevelDebug
	}
	if level == pterm.LogLevelDebug {
		pterm.EnableDebugMessages()
	}
	logger := pterm.DefaultLogger.WithLevel(level)
	slog.SetDefault(slog.New(pterm.NewSlogHandler(logger)))
}

func logLevel(name string) pterm.LogLevel {
	switch name {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// loadConfig merges the config file, environment and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagSSL {
		cfg.SSL = true
	}
	if flagJWT != "" {
		cfg.JWT = flagJWT
	}
	if flagRoutes != "" {
		cfg.RoutesFile = flagRoutes
	}
	return cfg, cfg.Validate()
}

// newClient builds a connected SDK client carrying the configured session token.
func newClient(ctx context.Context) (*kuzzle.Kuzzle, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	opts := cfg.Options()
	host := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	routes, err := loadRoutes(ctx, cfg)
	if err != nil {
		return nil, cfg, httperrors.FormatNetworkError(err, "reading routes", host)
	}
	transport, err := protocol.NewHTTP(opts, routes)
	if err != nil {
		return nil, cfg, err
	}

	k := kuzzle.New(transport)
	if err := runWithSpinner("Connecting to "+host, func() error { return k.Connect(ctx) }); err != nil {
		return nil, cfg, httperrors.FormatNetworkError(err, "connecting", host)
	}
	k.SetJWT(cfg.JWT)
	return k, cfg, nil
}

func loadRoutes(ctx context.Context, cfg config.Config) (protocol.Routes, error) {
	switch {
	case flagFetchRoutes:
		client := &http.Client{Timeout: cfg.Options().HTTPTimeout()}
		return protocol.FetchRoutes(ctx, client, cfg.Options().BaseURL("https", "http"), cfg.JWT)
	case cfg.RoutesFile != "":
		return protocol.LoadRoutes(cfg.RoutesFile)
	default:
		return protocol.DefaultRoutes(), nil
	}
}

// serverVersion extracts kuzzle.version from a server:info document.
func serverVersion(info map[string]any) string {
	if k, ok := info["kuzzle"].(map[string]any); ok {
		if v, ok := k["version"].(string); ok && v != "" {
			return v
		}
	}
	return "unknown"
}
