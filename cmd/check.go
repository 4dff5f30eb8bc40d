package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahmoudabadi/portfolio/internal/locale"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that all locale bundles share the same structure",
	Long:  `Loads the locale bundles (built-in or from content_dir) and reports every structural difference between them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := loadStore(cfg)
		if err != nil {
			return fmt.Errorf("loading locales: %w", err)
		}

		if verbose {
			for _, l := range store.All() {
				fmt.Fprintf(os.Stderr, "  %s (%s): %d skills, %d projects\n",
					l.Code, l.Direction, len(l.Skills.List), len(l.Projects.List))
			}
		}

		err = locale.CheckParity(store)
		var perr *locale.ParityError
		if errors.As(err, &perr) {
			for _, p := range perr.Problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", p)
			}
			return fmt.Errorf("%d parity problems", len(perr.Problems))
		}
		if err != nil {
			return err
		}

		fmt.Printf("%d locales OK\n", len(store.All()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
