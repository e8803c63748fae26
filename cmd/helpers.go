package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/config"
)

// resolveConfig loads the config file and applies the flags the user actually set
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		conf.URL = runURL
	}
	if flags.Changed("selector") {
		conf.Selector = runSel
	}
	if flags.Changed("dir") {
		conf.Dir = runDir
	}
	if flags.Changed("command") {
		conf.Command = runCommand
	}
	if flags.Changed("shell") {
		conf.Shell = runShell
	}
	if flags.Changed("jobs") {
		conf.Jobs = runJobs
	}
	if flags.Changed("timeout") {
		conf.Timeout = runTimeout
	}
	return conf, conf.Validate()
}
