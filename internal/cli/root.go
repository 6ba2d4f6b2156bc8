// Package cli is the pagesite command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jackielii/pagesite/internal/buildinfo"
	"github.com/jackielii/pagesite/internal/config"
	"github.com/jackielii/pagesite/internal/logger"
	"github.com/jackielii/pagesite/internal/server"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port    string
		siteDir string
	)
	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if port != "" {
			if cfg.Port, err = config.ParsePort(port); err != nil {
				return err
			}
		}
		if siteDir != "" {
			cfg.SiteDir = siteDir
		}
		log := logger.New(cmd.ErrOrStderr(), logger.Config{Level: cfg.LogLevel, JSON: cfg.LogFormat == "json"})
		srv, err := server.New(cfg, log)
		if err != nil {
			return err
		}
		return srv.ListenAndServe(cmd.Context())
	}

	cmd := &cobra.Command{
		Use:          "pagesite",
		Short:        "Serve the pagesite website",
		SilenceUsage: true,
		RunE:         serve,
	}
	cmd.PersistentFlags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT, default 3000)")
	cmd.PersistentFlags().StringVar(&siteDir, "site-dir", "", "read views/ and public/ from this directory instead of the embedded copy")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server (default)",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		newRoutesCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := server.Routes()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), routes)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
