package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FTBX"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: utils.Version,
	Use:     "findy-agent-toolbox",
	Short:   "Findy agent toolbox cli tool",
	Long: `
Findy agent toolbox cli tool

Lists the toolbox protocols, applies the pagination decorators to JSON data
and maintains the basic message store of the toolbox.
	`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		ParseLoggingArgs(rootFlags.logging)
		handleViperFlags(cmd)
	},
}

// Execute root
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns a current root command which can be used for adding own
// commands in an own repo.
func RootCmd() *cobra.Command {
	return rootCmd
}

// DryRun returns a value of a dry run flag.
func DryRun() bool {
	return rootFlags.dryRun
}

// RootFlags are the common flags
type RootFlags struct {
	cfgFile string
	dryRun  bool
	logging string
}

var rootFlags = RootFlags{}

var rootEnvs = map[string]string{
	"config":  "CONFIG",
	"logging": "LOGGING",
	"dry-run": "DRY_RUN",
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.cfgFile, "config", "", flagInfo("configuration file", "", rootEnvs["config"]))
	flags.StringVar(&rootFlags.logging, "logging", "-logtostderr=true -v=0", flagInfo("logging startup arguments", "", rootEnvs["logging"]))
	flags.BoolVarP(&rootFlags.dryRun, "dry-run", "n", false, flagInfo("perform a trial run with no changes made", "", rootEnvs["dry-run"]))

	try.To(viper.BindPFlag("logging", flags.Lookup("logging")))
	try.To(viper.BindPFlag("dry-run", flags.Lookup("dry-run")))

	try.To(BindEnvs(rootEnvs, ""))
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	readConfigFile()
	rootFlags.logging = viper.GetString("logging")
	rootFlags.dryRun = viper.GetBool("dry-run")
}

// readConfigFile reads the --config file, or the file named in FTBX_CONFIG.
// The file used is printed only when it's given with the flag.
func readConfigFile() {
	filename, fromFlag := rootFlags.cfgFile, true
	if filename == "" {
		filename, fromFlag = os.Getenv(envName("", "config")), false
	}
	if filename == "" {
		return
	}
	rootFlags.cfgFile = filename
	viper.SetConfigFile(filename)
	if err := viper.ReadInConfig(); err != nil {
		log.Println("config file:", err)
	} else if fromFlag {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// ParseLoggingArgs parses the glog flags from the string, e.g.
// "-logtostderr=true -v=2".
func ParseLoggingArgs(s string) {
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Fields(s)...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}

// BindEnvs binds the flag keys of envMap to their environment variables.
// The cmdName is empty for the root flags, otherwise it's a part of the
// variable name: FTBX_<CMDNAME>_<ENV>.
func BindEnvs(envMap map[string]string, cmdName string) (err error) {
	defer err2.Handle(&err, "bind envs")

	for flagKey, env := range envMap {
		try.To(viper.BindEnv(flagKey, envName(cmdName, env)))
	}
	return nil
}

func flagInfo(info, cmdName, env string) string {
	return info + ", " + envName(cmdName, env)
}

func envName(cmdName, env string) string {
	parts := []string{envPrefix}
	if cmdName != "" {
		parts = append(parts, strings.ToUpper(cmdName))
	}
	return strings.Join(append(parts, strings.ToUpper(env)), "_")
}

// handleViperFlags sets the flags of the command and its parents from the
// environment and the config file. Flags given in the command line win.
func handleViperFlags(cmd *cobra.Command) {
	for c := cmd; c != nil; c = c.Parent() {
		setFlagsFromViper(c)
	}
}

func setFlagsFromViper(cmd *cobra.Command) {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(cmd.Name(), "flags:", err)
	}))

	flags := cmd.LocalFlags()
	try.To(viper.BindPFlags(flags))
	if cmd.PreRunE != nil {
		try.To(cmd.PreRunE(cmd, nil))
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if v := viper.GetString(f.Name); v != "" && !f.Changed {
			try.To(flags.Set(f.Name, v))
		}
	})
}

// SubCmdNeeded prints the help and error messages because the cmd is abstract.
func SubCmdNeeded(cmd *cobra.Command) {
	fmt.Println("Subcommand needed!")
	_ = cmd.Help()
	os.Exit(1)
}
