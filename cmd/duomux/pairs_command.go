package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"duomux/internal/pairing"
)

// newPairsCommand lists what discovery would pair up, without touching
// any audio. Useful to check prefixes before a long batch.
func newPairsCommand(configFlag *string) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List the channel pairs discovery would process",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configFlag, o, cmd.Flags())
			if err != nil {
				return err
			}

			pairs, err := pairing.Discover(
				cfg.SourceDir,
				pairing.Mode(cfg.Matching.Mode),
				cfg.Matching.Left,
				cfg.Matching.Right,
			)
			if err != nil {
				return err
			}
			if len(pairs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching pairs found")
				return nil
			}

			rows := make([][]string, 0, len(pairs))
			for _, pr := range pairs {
				name := pairing.OutputName(
					pairing.Mode(cfg.Matching.Mode),
					pr.Key,
					cfg.Matching.Left,
					cfg.Matching.Right,
					cfg.Audio.Speed,
					"."+cfg.Audio.Format,
				)
				rows = append(rows, []string{
					pr.Key,
					filepath.Base(pr.Left),
					filepath.Base(pr.Right),
					name,
				})
			}
			printTable(os.Stdout, []string{"Key", "Left", "Right", "Output"}, rows)
			return nil
		},
	}

	o.register(cmd)
	return cmd
}
