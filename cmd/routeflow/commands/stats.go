package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show registry, cache, and access history statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Initialize(cmd.Context()); err != nil {
				return err
			}
			stats := c.app.Stats()

			cmd.Printf("registry: %d routes (%d basic, %d dynamic), initialized=%t\n",
				stats.Registry.Total, stats.Registry.BasicCount,
				stats.Registry.DynamicCount, stats.Registry.Initialized)
			cmd.Printf("cache: %d/%d components\n", stats.Cache.Size, stats.Cache.Capacity)
			for _, key := range stats.Cache.Keys {
				cmd.Println("  " + key)
			}

			history, _ := cmd.Flags().GetBool("history")
			if history {
				paths := make([]string, 0, len(stats.History))
				for path := range stats.History {
					paths = append(paths, path)
				}
				sort.Strings(paths)
				cmd.Printf("history: %d routes\n", len(paths))
				for _, path := range paths {
					rec := stats.History[path]
					cmd.Println(fmt.Sprintf("  %s visits=%d last=%s",
						path, rec.Count, rec.LastAccess.Format("2006-01-02 15:04:05")))
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("history", false, "Include per-route access history")
	return cmd
}
