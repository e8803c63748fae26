package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/challscaffold/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"t"},
	Short:   "List the templates a challenge project can be scaffolded with",
	Long: `List the create-vite templates challscaffold chooses from.

Each new challenge folder gets one of these at random; the choice is recorded in the
folder's TEMPLATE.md.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range template.Variants() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
