package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generates shell completion scripts",
	Long: `
Prints the completion script of the shell:

	source <(findy-agent-toolbox completion bash)
	source <(findy-agent-toolbox completion zsh)
	findy-agent-toolbox completion fish | source

Add the line to the shell's start up script (.bashrc, .zshrc or
config.fish) to have the completions in every session.

`,
	ValidArgs: []string{"bash", "zsh", "fish"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		}
		return rootCmd.GenBashCompletionV2(w, true)
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
