package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd prints a completion script for the subcommands and flags of challscaffold
var completionCmd = &cobra.Command{
	Use:     "completion [bash|zsh|fish|powershell]",
	Short:   "Print a shell completion script",
	Example: `  challscaffold completion bash > ~/.local/share/bash-completion/completions/challscaffold`,
	Long: `Print a completion script covering the challscaffold subcommands (templates, slug) and
the scrape flags (--url, --selector, --dir, --jobs, ...).

Load it for the current session:

  $ source <(challscaffold completion bash)
  $ challscaffold completion fish | source

Or install it once:

  $ challscaffold completion zsh > "${fpath[1]}/_challscaffold"
  PS> challscaffold completion powershell > challscaffold.ps1
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
		if err != nil {
			cmd.PrintErrf("Error generating %s completion: %v\n", args[0], err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
