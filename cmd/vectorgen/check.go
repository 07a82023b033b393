package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-movint/internal/vectorfile"
)

// maxReported bounds the mismatches logged individually.
const maxReported = 10

func (a *app) checkCmd() *cobra.Command {
	var goldenPath, gotPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare simulator output with a golden vector file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.check(goldenPath, gotPath)
		},
	}
	cmd.Flags().StringVar(&goldenPath, "golden", "", "golden vector file")
	cmd.Flags().StringVar(&gotPath, "got", "", "simulator output, one integer per line")
	_ = cmd.MarkFlagRequired("golden")
	_ = cmd.MarkFlagRequired("got")

	return cmd
}

func (a *app) check(goldenPath, gotPath string) error {
	_, golden, err := vectorfile.ReadFile(goldenPath)
	if err != nil {
		return err
	}
	got, err := vectorfile.ReadOutputsFile(gotPath)
	if err != nil {
		return err
	}

	mismatches, err := vectorfile.Compare(golden, got)
	if err != nil {
		return err
	}

	for i, m := range mismatches {
		if i == maxReported {
			a.logger.Warn("further mismatches suppressed", zap.Int("remaining", len(mismatches)-maxReported))
			break
		}
		a.logger.Error("mismatch", zap.Int("index", m.Index), zap.Int64("want", m.Want), zap.Int64("got", m.Got))
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d samples differ from %s", len(mismatches), len(golden), goldenPath)
	}

	a.logger.Info("simulator output matches", zap.String("golden", goldenPath), zap.Int("samples", len(golden)))
	_, err = fmt.Fprintf(a.out, "OK %d samples\n", len(golden))
	return err
}
