package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bkucera/selenium/pkg/chrome"
	"github.com/Bkucera/selenium/pkg/config"
	"github.com/Bkucera/selenium/pkg/edge"
	"github.com/Bkucera/selenium/pkg/firefox"
	"github.com/Bkucera/selenium/pkg/ie"
)

var browsersCmd = &cobra.Command{
	Use:   "browsers",
	Short: "List the browser names session definitions accept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := map[string][2]string{
			"chrome":  {chrome.BrowserName, chrome.OptionsKey},
			"edge":    {edge.BrowserName, edge.OptionsKey},
			"firefox": {firefox.BrowserName, firefox.OptionsKey},
			"ie":      {ie.BrowserName, ie.OptionsKey},
			"raw":     {"(from capabilities)", "none"},
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s %-20s %s\n", "NAME", "BROWSERNAME", "VENDOR OPTIONS KEY")
		for _, name := range config.KnownBrowsers() {
			row := rows[name]
			fmt.Fprintf(out, "%-10s %-20s %s\n", name, row[0], row[1])
		}
		return nil
	},
}
