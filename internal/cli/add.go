package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/webstrap-cli/webstrap/internal/cli/wizard"
	"github.com/webstrap-cli/webstrap/internal/core/project"
)

var addCmd = &cobra.Command{
	Use:   "add <feature>",
	Short: "Add a feature to an existing project",
	Long: `Add a feature to a project previously generated by webstrap or a
compatible layout. The framework and language are detected from the
project itself.

Features:
  redux   Redux Toolkit store, user slice, thunks, and typed hooks
  api     Axios API client with route and endpoint constants
  auth    Everything api adds, plus session helper functions

Examples:
  webstrap add redux
  webstrap add auth --storage localStorage`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("storage", "", "Token storage: cookie or localStorage (api and auth)")
}

// runAdd installs a single feature into the project in the current
// directory.
func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	feature, err := project.ParseFeature(args[0])
	if err != nil {
		return err
	}

	storage := project.AuthStorage(getStringFlag(cmd, "storage"))
	if storage != "" && storage != project.AuthStorageCookie && storage != project.AuthStorageLocalStorage {
		return fmt.Errorf("invalid --storage value %q: must be cookie or localStorage", storage)
	}

	// api and auth need a storage mode; ask interactively when possible.
	if storage == "" && feature != project.FeatureRedux {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			result, err := wizard.Run(wizard.StorageQuestion())
			if err != nil {
				if errors.Is(err, wizard.ErrCancelled) {
					_, _ = fmt.Fprintln(out, "Cancelled.")
					return nil
				}
				return fmt.Errorf("wizard failed: %w", err)
			}
			storage = project.AuthStorage(result.AuthStorage)
		} else {
			storage = project.AuthStorageCookie
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	initializer := newInitializer()
	result, err := initializer.AddFeature(cmd.Context(), cwd, feature, storage)
	if err != nil {
		if errors.Is(err, project.ErrNoProject) {
			return fmt.Errorf("no project found in %s (missing package.json)", cwd)
		}
		return fmt.Errorf("add %s: %w", feature, err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Files", fmt.Sprintf("%d written", len(result.CreatedFiles))},
		}),
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(fmt.Sprintf("Feature %s added", feature), details...))
	return nil
}
