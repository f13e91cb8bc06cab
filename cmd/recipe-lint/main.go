// recipe-lint validates conda recipe directories against the conda-forge
// style and correctness rulebook.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/condaforge/recipe-lint/pkg/console"
	"github.com/condaforge/recipe-lint/pkg/lint"
)

var version = "dev"

// errLintFailed marks a completed run that found blocking lint errors, so it
// exits 1 without re-printing the findings, unlike fatal failures (exit 2).
var errLintFailed = errors.New("lint errors found")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errLintFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		condaForge bool
		showHints  bool
		org        string
	)

	cmd := &cobra.Command{
		Use:   "recipe-lint <recipe-dir>",
		Short: "Lint a conda recipe directory",
		Long: `recipe-lint checks the meta.yaml in a recipe directory against the
conda-forge rulebook and reports blocking lint errors and non-blocking hints.

The --conda-forge flag additionally checks for feedstock name collisions and
maintainer existence via the GitHub API (authentication is resolved from the
ambient gh configuration).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			lints, hints, err := lint.RecipeDir(args[0], lint.Options{
				CondaForge: condaForge,
				Org:        org,
			})
			if err != nil {
				if !errors.Is(err, lint.ErrAdvisory) {
					return err
				}
				// Advisory lookups failed; core findings are still complete.
				fmt.Fprintln(cmd.ErrOrStderr(), console.FormatWarningMessage(err.Error()))
			}

			out := cmd.OutOrStdout()
			for _, finding := range lints {
				fmt.Fprintln(out, console.FormatErrorMessage(finding))
			}
			if showHints {
				for _, hint := range hints {
					fmt.Fprintln(out, console.FormatWarningMessage(hint))
				}
			}
			if len(lints) > 0 {
				return fmt.Errorf("%w: %d", errLintFailed, len(lints))
			}
			fmt.Fprintln(out, console.FormatSuccessMessage("Recipe looks good"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&condaForge, "conda-forge", false, "run the conda-forge specific advisory rules")
	cmd.Flags().BoolVar(&showHints, "hints", true, "print non-blocking hints")
	cmd.Flags().StringVar(&org, "org", "", "feedstock organization to check against (default GH_ORG or conda-forge)")
	return cmd
}
