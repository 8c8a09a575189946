package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bkucera/selenium/pkg/config"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a session definition without rendering it",
	Long: `Parse a session definition and run every check the payload command
would: capability name validation, the namespace policy, and the
execution target rules. Exits non-zero on the first problem.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := config.Load(validateFile)
		if err != nil {
			return err
		}
		if err := session.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d option sets)\n", validateFile, len(session.Browsers))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "session.yaml", "session definition to check")
}
