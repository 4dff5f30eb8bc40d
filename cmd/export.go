package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoudabadi/portfolio/internal/progress"
	"github.com/mahmoudabadi/portfolio/internal/server"
	"github.com/mahmoudabadi/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a static snapshot of the portfolio",
	Long:  `Renders the initial page of every language to <out>/<code>/index.html, the default language to <out>/index.html, and copies the client assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := loadStore(cfg)
		if err != nil {
			return fmt.Errorf("loading locales: %w", err)
		}
		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		lang, _ := cfg.Language()
		outputDir, _ := cmd.Flags().GetString("out")

		generator := &site.Generator{
			Store:     store,
			Renderer:  renderer,
			Assets:    server.Assets(),
			OutputDir: outputDir,
			Default:   lang,
			Reporter:  progress.NewReporter(cmd.ErrOrStderr()),
		}
		pageCount, err := generator.Generate()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
