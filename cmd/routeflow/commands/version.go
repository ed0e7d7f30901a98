package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/routeflow/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(fmt.Sprintf("routeflow version %s", build.Version))
		},
	}
}
