package cmd

import (
	"fmt"
	"io"

	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var treeDoc = `Prints the findy-agent-toolbox command structure.

Without arguments the whole structure is printed. With a command name only
that command and its subcommands are printed, e.g.:

	findy-agent-toolbox tree messages
`

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Prints the findy-agent-toolbox command structure",
	Long:  treeDoc,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err, "tree")

		c := rootCmd
		if len(args) > 0 {
			c, _ = try.To2(rootCmd.Find(args))
		}
		printStructure(cmd.OutOrStdout(), c, "", 0, true)
		return nil
	},
}

func printStructure(w io.Writer, cmd *cobra.Command, insertion string, level int, last bool) {
	if deepLimit != 0 && level >= deepLimit {
		return
	}
	branch := "├── "
	if last {
		branch = "└── "
	}
	fmt.Fprint(w, insertion, branch, cmd.Name(), "\n")
	if last {
		insertion += "    "
	} else {
		insertion += "│   "
	}
	subCmds := cmd.Commands()
	for i, subCmd := range subCmds {
		printStructure(w, subCmd, insertion, level+1, i == len(subCmds)-1)
	}
}

var deepLimit int

func init() {
	treeCmd.PersistentFlags().IntVarP(&deepLimit, "level", "L", 0, "level of the tree, zero is ignored")
	rootCmd.AddCommand(treeCmd)
}
