package cmd

import (
	"fmt"

	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var versionDoc = `Prints the version of the toolbox. The same version is reported by the
toolbox modules when they are set up in the host agent.`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version of the toolbox",
	Long:  versionDoc,
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err)

		try.To1(fmt.Fprintln(cmd.OutOrStdout(), utils.Version))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
