package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bkucera/selenium/pkg/config"
	"github.com/Bkucera/selenium/pkg/logging"
)

var (
	payloadFile string
	payloadOut  string
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Render the new session payload for a session definition",
	Long: `Load a session definition, validate it, and print the W3C new session
request body it describes. The payload goes to stdout unless --out names
a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, _ := logging.New("cli")
		defer log.Close()

		session, err := config.Load(payloadFile)
		if err != nil {
			return err
		}
		if err := session.Validate(); err != nil {
			return err
		}

		builder, err := session.Builder()
		if err != nil {
			return err
		}
		plan, err := builder.Plan()
		if err != nil {
			return err
		}
		log.Infof("plan ready: %d option sets, driver service %t",
			len(plan.FirstMatch()), plan.UsingDriverService())

		if payloadOut == "" {
			if err := plan.WritePayload(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write payload: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}

		f, err := os.Create(payloadOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		if err := plan.WritePayload(f); err != nil {
			f.Close()
			return fmt.Errorf("write payload: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output file: %w", err)
		}
		log.Infof("payload written to %s", payloadOut)
		return nil
	},
}

func init() {
	payloadCmd.Flags().StringVarP(&payloadFile, "file", "f", "session.yaml", "session definition to render")
	payloadCmd.Flags().StringVarP(&payloadOut, "out", "o", "", "write the payload to this file instead of stdout")
}
