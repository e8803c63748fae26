package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/fileutil"
)

var slugCmd = &cobra.Command{
	Use:   "slug <label>...",
	Short: "Print the folder name a challenge label maps to",
	Long: `Print the folder name challscaffold would create for each challenge label.

The label is lower-cased, every character other than letters, digits, underscores,
whitespace and hyphens is removed, and whitespace runs become a single hyphen.`,
	Example: `  challscaffold slug "Challenge 1: Show/Hide Password!"
  # challenge-1-showhide-password`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, label := range args {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fileutil.FolderName(label))
		}
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
