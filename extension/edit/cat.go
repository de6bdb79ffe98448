package edit

import (
	"fmt"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/format"
	"github.com/jpl-au/lned/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file the way the editor displays it",
		Long: `Print a file with the display prefix from config.

  lned cat notes.txt         # prefixed lines
  lned cat -n notes.txt      # with line numbers
  lned cat --raw notes.txt   # lines only`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCat,
	}
	c.Flags().BoolP(extension.FlagNumber, "n", false, "Number lines")
	c.Flags().Bool(extension.FlagRaw, false, "Print lines without prefix or numbers")
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	path := args[0]
	svc := e.ctx.Service()

	err := svc.Open(c.Context(), path)
	lines := svc.Lines()
	log.Event("edit:cat", "read").Path(path).Count(len(lines)).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"path": path, "lines": lines})
	}

	number, _ := c.Flags().GetBool(extension.FlagNumber)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	cfg := e.ctx.Config()
	opts := format.Options{
		Prefix:  cfg.Prefix(),
		Numbers: number || cfg.Numbers(),
	}
	if raw {
		opts = format.Options{}
	}
	return format.Slice(cmd.Out(), lines, opts)
}
