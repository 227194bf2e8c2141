package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webstrap-cli/webstrap/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "webstrap",
	Short: "webstrap: scaffold production-ready React and Next.js projects",
	Long: `webstrap generates React and Next.js projects with a sensible
directory layout, environment files, and optional authentication,
Redux, and UI library setup.

It drives the official generators (create-next-app, Vite) and layers
project conventions on top: an axios API client with token refresh,
route and endpoint constants, and a Redux Toolkit store.`,
	Version: version.GetVersion(),
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("webstrap %s\n", version.GetVersion()))
}
