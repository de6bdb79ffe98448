/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// PersistentPreRunE creates the editing session lazily: only commands that
// edit trigger extension init. Commands listed in noSessionCommands (config,
// guide, log, version) skip it, so they work even when the session options in
// config are invalid.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/lned/internal/config"
	"github.com/jpl-au/lned/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lned",
	Short: "Line editor with full undo and redo",
	Long: `A line editor with snapshot-based undo and redo, an interactive menu,
sed-style substitution, and an MCP server for LLM integration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkOutput(); err != nil {
			return err
		}

		if d := Dir(); d != "" {
			if err := os.Chdir(d); err != nil {
				return fmt.Errorf("change directory: %w", err)
			}
		}

		openLog()

		if !noSessionCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// openLog starts the audit log unless config turns it off. A config that
// cannot be read leaves logging on; the command reports the config error.
func openLog() {
	if cfg, err := config.Load(); err == nil && !cfg.LogEnabled() {
		log.Disable()
		return
	}
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		return
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "lned sed -i s/a/b/ notes.txt", returns "sed".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Registers extensions, executes the command and closes the audit log
// before exit. Exit code 1 indicates error.
func Execute() {
	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
