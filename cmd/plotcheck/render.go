package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"plotcheck/fixture"
)

func renderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every fixture row to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				cfg.OutDir = out
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}
			cases, err := fixture.LoadCases(cfg.Fixture)
			if err != nil {
				return err
			}

			runner := fixture.NewRunner(logger)
			failed := 0
			for i, c := range cases {
				name := fmt.Sprintf("%03d_%s.png", i, baseName(c.Function))
				path := filepath.Join(cfg.OutDir, name)
				err := runner.Render(c, vg.Points(cfg.Width), vg.Points(cfg.Height), path)
				if err != nil {
					failed++
					logger.Warn("case failed",
						zap.Int("row", i),
						zap.String("function", c.Function),
						zap.Error(err))
				}
			}
			logger.Info("render finished",
				zap.Int("cases", len(cases)),
				zap.Int("failed", failed),
				zap.String("out", cfg.OutDir))
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (overrides config)")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show per-function case counts for the fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := fixture.LoadCases(cfg.Fixture)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, c := range cases {
				counts[c.Function]++
			}
			for _, name := range slices.Sorted(maps.Keys(counts)) {
				fmt.Printf("%-24s %s\n", name, humanize.Comma(int64(counts[name])))
			}
			fmt.Printf("%-24s %s\n", "total", humanize.Comma(int64(len(cases))))
			return nil
		},
	}
}

// baseName turns "pyplot.bar" into "bar" for use in file names.
func baseName(function string) string {
	if i := strings.LastIndex(function, "."); i >= 0 {
		return function[i+1:]
	}
	return function
}
