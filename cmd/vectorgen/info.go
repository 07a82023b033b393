package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-movint/dsp/integrator"
)

func (a *app) infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the fixed-point parameters derived from the generics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			return a.printInfo(cfg.Params())
		},
	}
	a.registerModelFlags(cmd)

	return cmd
}

func (a *app) printInfo(p integrator.Params) error {
	in, out := p.SampleFormat(), p.OutputFormat()

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Input", fmt.Sprintf("%s [%d, %d]", in, in.Min(), in.Max())},
		{"Output", fmt.Sprintf("%s [%d, %d]", out, out.Min(), out.Max())},
		{"Window", fmt.Sprintf("%d samples", p.Samples)},
		{"Extra bits", fmt.Sprintf("%d", p.ExtraBits())},
		{"Protection bits", fmt.Sprintf("%d", p.ProtectionBits)},
		{"Rounding", p.RoundMode().String()},
		{"Accumulator", fmt.Sprintf("%d bits", p.AccumulatorBits())},
	}

	if _, err := fmt.Fprintf(tw, "Parameter\tValue\n---------\t-----\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
