package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webstrap-cli/webstrap/internal/ui"
	"github.com/webstrap-cli/webstrap/pkg/version"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer webstrap release is available",
	Long: `Query the release feed and report whether a newer webstrap version
exists. Installation is left to your package manager.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// runUpdate reports the current and latest versions.
func runUpdate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	current := version.GetVersion()

	_, _ = fmt.Fprintf(out, "Current version: webstrap %s\n", current)

	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	deps.EnsureUpdate()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	spin := ui.NewProgress(ui.NewTheme(), ui.NewHeadlessManager()).Spinner("Checking for updates")
	available, info, err := deps.UpdateChecker.IsUpdateAvailable(ctx, current)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("check latest version: %w", err)
	}

	if !available {
		_, _ = fmt.Fprintf(out, "%s Already up to date.\n", symSuccess())
		return nil
	}

	_, _ = fmt.Fprintf(out, "Latest version:  %s (published %s)\n",
		info.Version, info.Date.Format("2006-01-02"))
	if info.URL != "" {
		_, _ = fmt.Fprintf(out, "Release notes:   %s\n", info.URL)
	}
	_, _ = fmt.Fprintln(out, cliMuted.Render("Update with your package manager, e.g. `npm i -g webstrap` or `brew upgrade webstrap`."))
	return nil
}
