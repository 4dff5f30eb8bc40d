package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/server"
	"github.com/mahmoudabadi/portfolio/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Loads the locale bundles, verifies they are structurally identical, and serves the page with its live session endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		store, err := loadStore(cfg)
		if err != nil {
			return fmt.Errorf("loading locales: %w", err)
		}
		if err := locale.CheckParity(store); err != nil {
			return fmt.Errorf("locale bundles diverge: %w\nRun `portfolio check` for details", err)
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		lang, _ := cfg.Language()
		ttl, _ := cfg.TTL()
		sessions := session.NewManager(store, renderer, ttl)

		srv := server.New(server.Config{
			Host:            cfg.Host,
			Port:            cfg.Port,
			DefaultLanguage: lang,
			AllowedOrigins:  cfg.AllowedOrigins,
			AllowAll:        cfg.AllowAllOrigins,
		}, store, sessions, renderer)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go sessions.Run(ctx, time.Minute)
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "portfolio v%s starting on %s:%d\n", Version, cfg.Host, cfg.Port)
		if cfg.ContentDir != "" {
			fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.ContentDir)
		}
		fmt.Fprintf(os.Stderr, "  Default language: %s\n", lang)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
