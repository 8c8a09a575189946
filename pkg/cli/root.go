// Package cli implements the seleniumctl command line interface.
package cli

import "github.com/spf13/cobra"

// rootCmd is the root command for seleniumctl.
var rootCmd = &cobra.Command{
	Use:   "seleniumctl",
	Short: "Build and inspect WebDriver new session requests",
	Long: `seleniumctl turns YAML session definitions into W3C WebDriver new
session payloads, validating capability names and the definition's
namespace policy along the way. It never talks to a remote end; the
rendered payload is yours to send.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion wires the build version into the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(browsersCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
