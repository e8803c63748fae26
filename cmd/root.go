/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/

// Package cmd provides command-line interface commands for challscaffold
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/challscaffold/internal/challscaffold"
	"github.com/dimasma0305/challscaffold/internal/challscaffold/config"
	"github.com/dimasma0305/challscaffold/internal/log"
)

var (
	configPath string
	runURL     string
	runSel     string
	runDir     string
	runCommand string
	runShell   string
	runJobs    int
	runTimeout time.Duration
	runStrict  bool
	runPrint   bool
)

// exit is swapped in tests
var exit = os.Exit

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "challscaffold",
	Short: "Scaffold a Vite starter project for every challenge on a course page",
	Long: `challscaffold - one-shot setup for a course's challenge folders

It fetches the course page, finds every navigation element labelled after a challenge,
and for each challenge whose folder does not exist yet:
  • creates the folder (lower-cased, punctuation stripped, spaces as hyphens)
  • runs "npx create-vite <folder> --template <random template>" in parallel
  • writes TEMPLATE.md naming the template that was used

Existing folders are never touched, so running it again only picks up new challenges.
Settings can also come from .challscaffold.yaml in the working directory or --config.`,
	Example: `  # Scaffold every new challenge into the current directory
  challscaffold

  # Put the folders elsewhere and run at most 4 generators at once
  challscaffold --dir ~/advent --jobs 4

  # Use pnpm instead of npx
  challscaffold --command "pnpm create vite"

  # Show the settings a run would use
  challscaffold --print-config

  # List the templates a project can get
  challscaffold templates`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		conf, err := resolveConfig(cmd)
		if err != nil {
			log.Fatal(err)
		}

		if runPrint {
			out, err := conf.YAML()
			if err != nil {
				log.Fatal(err)
			}
			_, _ = cmd.OutOrStdout().Write(out)
			return
		}

		batch, err := challscaffold.New(conf)
		if err != nil {
			log.Fatal(err)
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Run has already logged the failure; the exit status stays 0 unless --strict
		if _, err := batch.Run(ctx); err != nil && runStrict {
			exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./"+config.CONFIG_FILE+" if present)")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	defaults := config.Default()
	flags := rootCmd.Flags()
	flags.StringVar(&runURL, "url", defaults.URL, "Course page to scrape")
	flags.StringVar(&runSel, "selector", defaults.Selector, "CSS selector for challenge elements")
	flags.StringVar(&runDir, "dir", defaults.Dir, "Directory to create challenge folders in")
	flags.StringVar(&runCommand, "command", defaults.Command, "Generator command, run as: <command> <folder> --template <template>")
	flags.StringVar(&runShell, "shell", "", "Shell used to run the generator (default: $SHELL or /bin/sh)")
	flags.IntVarP(&runJobs, "jobs", "j", defaults.Jobs, "Maximum generators running at once (0 = no limit)")
	flags.DurationVar(&runTimeout, "timeout", defaults.Timeout, "Page fetch timeout, e.g. 30s (0 = none)")
	flags.BoolVar(&runStrict, "strict", false, "Exit with status 1 when the page cannot be fetched or parsed")
	flags.BoolVar(&runPrint, "print-config", false, "Print the resolved configuration as YAML and exit")
	_ = rootCmd.MarkFlagDirname("dir")
}
