// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/lned/cmd"
	"github.com/jpl-au/lned/internal/version"
	"github.com/spf13/cobra"
)

const flagShort = "short"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, build time, git commit, Go version and platform.

  lned version           # full build information
  lned version --short   # tag only, e.g. v1.2.0 or dev`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if short, _ := c.Flags().GetBool(flagShort); short {
				if cmd.JSON() {
					return cmd.PrintJSON(map[string]string{"version": version.Short()})
				}
				fmt.Fprintln(cmd.Out(), version.Short())
				return nil
			}

			info := version.Get()
			if cmd.JSON() {
				return cmd.PrintJSON(info)
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
	c.Flags().Bool(flagShort, false, "Print only the version tag")
	return c
}
