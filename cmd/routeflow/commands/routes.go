package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/routeflow/internal/core/domain"
)

func (c *CLI) newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Initialize the registry and list the registered route tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Initialize(cmd.Context()); err != nil {
				return err
			}
			for _, r := range c.app.Routes() {
				printRoute(cmd, r, 0)
			}
			return nil
		},
	}
}

func printRoute(cmd *cobra.Command, r domain.Route, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s (%s)", indent, r.Path, r.Name)
	if r.Component != "" {
		line += " -> " + r.Component
	}
	cmd.Println(line)
	for _, child := range r.Children {
		printRoute(cmd, child, depth+1)
	}
}
