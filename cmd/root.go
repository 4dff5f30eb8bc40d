package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mahmoudabadi/portfolio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Trilingual personal portfolio server",
	Long: `Portfolio serves a single-page personal site in Persian, Arabic and
English. Content lives in per-language bundles; each page load gets its own
live session that tracks the active language, the mobile menu and the
skill-detail overlay.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
