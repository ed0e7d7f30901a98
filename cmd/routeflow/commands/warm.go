package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/routeflow/internal/adapters/telemetry/progrock"
	"go.trai.ch/routeflow/internal/app"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm [paths...]",
		Short: "Eagerly load route components into the cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Initialize(cmd.Context()); err != nil {
				return err
			}

			parallelism, _ := cmd.Flags().GetInt("parallelism")
			progress, _ := cmd.Flags().GetBool("progress")
			if progress {
				recorder := progrock.New()
				defer func() { _ = recorder.Close() }()
				c.app.WithTracer(recorder)
			}

			return c.app.Warm(cmd.Context(), app.WarmOptions{
				Paths:       args,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent loads (0 means one per CPU)")
	cmd.Flags().Bool("progress", false, "Render per-route progress")
	return cmd
}
