package cmd

import (
	"fmt"

	"github.com/mahmoudabadi/portfolio/internal/config"
	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadStore reads the locale bundles from content_dir, or the built-in
// bundles when it is unset.
func loadStore(cfg *config.Config) (*locale.Store, error) {
	if cfg.ContentDir == "" {
		return locale.Embedded()
	}
	return locale.LoadDir(cfg.ContentDir)
}

func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	return render.New(render.Profile{
		Name:     cfg.Profile.Name,
		Email:    cfg.Profile.Email,
		Telegram: cfg.Profile.Telegram,
	})
}
