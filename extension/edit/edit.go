// Package edit provides the edit extension for lned.
// It registers commands: edit, sed, cat, and the lned_sed MCP tool.
package edit

import (
	"fmt"
	"os"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/format"
	"github.com/jpl-au/lned/internal/log"
	"github.com/jpl-au/lned/internal/menu"
	"github.com/jpl-au/lned/internal/progress"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the edit extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "edit" - this extension provides the editing commands.
func (e *Extension) Name() string { return "edit" }

// Init keeps the extension context. edit and cat use the shared session;
// sed takes a fresh one per file.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the edit, sed and cat commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newEditCmd(),
		e.newSedCmd(),
		e.newCatCmd(),
	}
}

// MCPTools returns lned_sed, which applies an expression to the served buffer.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("lned_sed",
				mcp.WithDescription("Apply a sed substitution (s/old/new/ or s/old/new/g) to the buffer. Undoable as one step."),
				mcp.WithString("expression", mcp.Required(), mcp.Description("Substitution expression, e.g. s/teh/the/g")),
			),
			Handler: sedTool,
		},
	}
}

// --- edit command ---

func (e *Extension) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Long: `Open the numbered menu editor on stdin and stdout.

  lned edit              # start with an empty buffer
  lned edit notes.txt    # load notes.txt first

The file must exist. Nothing is written until you choose Save.
See 'lned guide menu' for the options.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runEdit,
	}
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	ctx := c.Context()
	svc := e.ctx.Service()

	if len(args) == 1 {
		err := svc.Open(ctx, args[0])
		log.Event("edit:edit", "load").Path(args[0]).Count(svc.Status().Lines).Write(err)
		if err != nil {
			return fmt.Errorf("edit: %w", err)
		}
	}

	cfg := e.ctx.Config()
	opts := menu.Options{
		Format: format.Options{
			Prefix:  cfg.Prefix(),
			Numbers: cfg.Numbers(),
		},
		Diff:          cfg.ShowDiff(),
		Colour:        cfg.Colour() && progress.IsTerminal(os.Stdout),
		MaxLineLength: cfg.MaxLineLength(),
	}

	err := menu.New(svc, os.Stdin, cmd.Out(), opts).Run(ctx)
	st := svc.Status()
	log.Event("edit:edit", "session").Path(st.Path).Count(st.Lines).Write(err)
	return err
}
