package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/diff"
	"github.com/jpl-au/lned/internal/log"
	"github.com/jpl-au/lned/internal/progress"
	"github.com/jpl-au/lned/internal/sed"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newSedCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sed [-i] <expression> <file>...",
		Short: "Stream editor for files",
		Long: `Edit files using sed-style substitution syntax.

  lned sed -i 's/old/new/' notes.txt
  lned sed -i 's/old/new/g' notes.txt     # replace all occurrences
  lned sed -i 's|old|new|' a.txt b.txt    # alternate delimiter, two files
  lned sed -n 's/old/new/g' notes.txt     # show the diff, write nothing

The -i flag (in-place) is required unless --dry-run is given.
Without 'g' only the first match on each line is replaced.
Only substitution (s) commands are supported.`,
		Args: cobra.MinimumNArgs(2),
		RunE: e.runSed,
	}
	c.Flags().BoolP(extension.FlagInPlace, "i", false, "Edit files in place")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Print a diff instead of writing")
	return c
}

func (e *Extension) runSed(c *cobra.Command, args []string) error {
	ctx := c.Context()
	inPlace, _ := c.Flags().GetBool(extension.FlagInPlace)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	if !inPlace && !dryRun {
		return cmd.PrintJSONError(errors.New("the -i flag is required (sed only supports in-place editing)"))
	}

	expr, paths := args[0], args[1:]
	if _, err := sed.ParseExpr(expr); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("sed: %w", err))
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}
	colour := e.ctx.Config().Colour() && progress.IsTerminal(os.Stdout)

	bar := progress.New(os.Stderr, "sed", len(paths))
	results := make([]sed.Result, 0, len(paths))
	var errs []error
	missed := 0
	for _, path := range paths {
		result, err := e.sedFile(ctx, w, path, expr, dryRun, colour)
		log.Event("edit:sed", "edit").
			Path(path).
			Count(result.Count).
			Detail("dry_run", dryRun).
			Write(err)

		switch {
		case errors.Is(err, sed.ErrTextNotFound):
			missed++
			if !cmd.JSON() {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
		case err != nil:
			errs = append(errs, fmt.Errorf("sed %q: %w", path, err))
		default:
			results = append(results, result)
		}
		bar.Increment()
		bar.Print()
	}
	bar.Done()

	if missed == len(paths) {
		errs = append(errs, fmt.Errorf("sed: %w in any file", sed.ErrTextNotFound))
	}
	if err := errors.Join(errs...); err != nil {
		return cmd.PrintJSONError(err)
	}
	return cmd.PrintJSON(results)
}

// sedFile applies expr to one file in its own session so history never
// crosses files.
func (e *Extension) sedFile(ctx context.Context, w io.Writer, path, expr string, dryRun, colour bool) (sed.Result, error) {
	svc := e.ctx.NewService()
	if err := svc.Open(ctx, path); err != nil {
		return sed.Result{Path: path}, err
	}
	before := svc.Lines()

	out := w
	if dryRun {
		out = io.Discard
	}
	result, err := sed.Run(ctx, out, svc, path, expr)
	if err != nil {
		return result, err
	}

	if dryRun {
		diff.Run(w, before, svc.Lines(), path, path+" (edited)", colour)
		return result, nil
	}
	return result, svc.Save(ctx, "")
}

// sedTool handles lned_sed tool calls against the shared session.
func sedTool(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := req.RequireString("expression")
	if err != nil {
		return mcp.NewToolResultError("expression is required"), nil //nolint:nilerr
	}

	svc := extCtx.Service()
	result, err := sed.Run(ctx, io.Discard, svc, svc.Status().Path, expr)
	log.Event("mcp:sed", "edit").Path(result.Path).Count(result.Count).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("replaced %d occurrence(s)", result.Count)), nil
}
