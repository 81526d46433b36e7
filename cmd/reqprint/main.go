package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqprint/internal/app"
	"github.com/dmitrymomot/reqprint/pkg/config"
	"github.com/dmitrymomot/reqprint/pkg/fingerprint"
	"github.com/dmitrymomot/reqprint/pkg/logger"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "reqprint",
		Short:        "Request fingerprinting diagnostic service",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newDigestCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg app.Config
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := app.NewLogger(cfg, os.Stdout)
			logger.SetAsDefault(log)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return app.Serve(ctx, cfg, log)
		},
	}
}

func newDigestCmd() *cobra.Command {
	var (
		s      fingerprint.SignalSet
		output string
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print the fingerprint of the given request signals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDigest(cmd.OutOrStdout(), output, s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&s.UserAgent, "user-agent", "", "User-Agent header value")
	flags.StringVar(&s.ForwardedFor, "forwarded-for", "", "X-Forwarded-For header value")
	flags.StringVar(&s.ClientHints, "client-hints", "", "Sec-CH-UA header value")
	flags.StringVar(&s.AcceptLanguage, "accept-language", "", "Accept-Language header value")
	flags.StringVar(&s.CallerID, "user-id", "", "user_id query parameter value")
	flags.StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
