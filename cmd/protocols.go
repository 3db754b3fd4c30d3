package cmd

import (
	"fmt"
	"strings"

	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/plugins"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var protocolsDoc = `Prints the message types the toolbox handles and sends.

With --modules the toolbox modules and their protocol families are printed
instead. The --family flag prints only the types of the protocol family:

	findy-agent-toolbox protocols --family admin-dids
`

var protocolsEnvs = map[string]string{
	"family":  "FAMILY",
	"modules": "MODULES",
}

var protocolsFlags = struct {
	family  string
	modules bool
}{}

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "Prints the toolbox message types",
	Long:  protocolsDoc,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return BindEnvs(protocolsEnvs, "PROTOCOLS")
	},
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err, "protocols")

		w := cmd.OutOrStdout()
		if protocolsFlags.modules {
			loaded, _ := plugins.LoadedModules()
			isLoaded := make(map[string]bool, len(loaded))
			for _, name := range loaded {
				isLoaded[name] = true
			}
			for _, m := range plugins.Modules() {
				state := "loaded"
				if !isLoaded[m.Name] {
					state = "missing"
				}
				try.To1(fmt.Fprintf(w, "%-24s %-8s %s\n", m.Name, state,
					strings.Join(m.Families, ", ")))
			}
			return nil
		}
		for _, t := range aries.Creator.Types() {
			if protocolsFlags.family != "" &&
				didcomm.FieldAtInd(t, 1) != protocolsFlags.family {
				continue
			}
			try.To1(fmt.Fprintln(w, t))
		}
		return nil
	},
}

func init() {
	flags := protocolsCmd.Flags()
	flags.StringVar(&protocolsFlags.family, "family", "", flagInfo("print only the types of the family", "PROTOCOLS", protocolsEnvs["family"]))
	flags.BoolVar(&protocolsFlags.modules, "modules", false, flagInfo("print the toolbox modules", "PROTOCOLS", protocolsEnvs["modules"]))
	rootCmd.AddCommand(protocolsCmd)
}
