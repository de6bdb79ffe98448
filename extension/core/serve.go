// serve.go implements the "lned serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects. The server edits the
// shared session, so extension tools and built-in tools see the same buffer.

package core

import (
	"fmt"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/log"
	"github.com/jpl-au/lned/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [file]",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

  lned serve              # start with an empty buffer
  lned serve notes.txt    # load notes.txt first`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServe,
	}
}

func runServe(c *cobra.Command, args []string) error {
	extCtx := cmd.ExtensionContext()
	svc := extCtx.Service()

	if len(args) == 1 {
		err := svc.Open(c.Context(), args[0])
		log.Event("core:serve", "load").Path(args[0]).Count(svc.Status().Lines).Write(err)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	err := mcp.Serve(svc, extension.ServerTools(extCtx)...)
	log.Event("core:serve", "serve").Path(svc.Status().Path).Write(err)
	return err
}
