// log.go implements the "lned log" command for reading and pruning the
// audit log.
//
// Pruning is destructive so it asks for confirmation unless --force is
// given. --dry-run only counts the entries that would go.

package core

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/duration"
	"github.com/jpl-au/lned/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show or prune the audit log",
		Long: `Show recent audit log entries for this directory, or prune old ones.

  lned log                           # last 20 entries
  lned log --limit 50 --all          # last 50 entries from every directory
  lned log prune --older-than 30d    # delete entries older than 30 days

Duration formats: 12h (hours), 7d (days), 4w (weeks), 3m (months)`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "l", log.DefaultLimit, "Maximum entries to show")
	c.Flags().Bool(extension.FlagAll, false, "Include entries from every directory")

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete old audit log entries",
		Args:  cobra.NoArgs,
		RunE:  runLogPrune,
	}
	prune.Flags().String(extension.FlagOlderThan, "", "Delete entries older than duration (required)")
	prune.Flags().BoolP(extension.FlagDryRun, "n", false, "Count entries without deleting")
	prune.Flags().BoolP(extension.FlagForce, "f", false, "Skip confirmation")
	_ = prune.MarkFlagRequired(extension.FlagOlderThan)
	c.AddCommand(prune)
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	all, _ := c.Flags().GetBool(extension.FlagAll)

	records, err := log.Recent(log.QueryOptions{Limit: limit, AllProjects: all})
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
	}

	if cmd.JSON() {
		if records == nil {
			records = []log.Record{}
		}
		return cmd.PrintJSON(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.Out(), "No log entries")
		return nil
	}
	for _, r := range records {
		status := "ok"
		if !r.Success {
			status = "failed: " + r.Error
		}
		line := fmt.Sprintf("%s  %-14s %-8s", r.Time.Format(time.DateTime), r.Source, r.Action)
		if r.Path != "" {
			line += " " + r.Path
		}
		if r.Line > 0 {
			line += fmt.Sprintf(":%d", r.Line)
		}
		fmt.Fprintf(cmd.Out(), "%s  %s\n", line, status)
	}
	return nil
}

func runLogPrune(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	cutoff, err := duration.Before(time.Now(), olderThan)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("parse duration %q: %w", olderThan, err))
	}

	if dryRun {
		n, err := log.Prune(cutoff, true)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("log prune: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{"dry_run": true, "count": n})
		}
		fmt.Fprintf(cmd.Out(), "Would delete %d log entr%s\n", n, plural(n))
		return nil
	}

	if !force {
		fmt.Fprintf(cmd.Out(), "Delete log entries older than %s? This cannot be undone. [y/N] ", olderThan)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(cutoff, false)
	log.Event("core:log", "prune").Count(int(n)).Detail("older_than", olderThan).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log prune: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"count": n})
	}
	fmt.Fprintf(cmd.Out(), "Deleted %d log entr%s\n", n, plural(n))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
