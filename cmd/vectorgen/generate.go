package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-movint/dsp/core"
	"github.com/cwbudde/algo-movint/dsp/fixed"
	"github.com/cwbudde/algo-movint/dsp/integrator"
	"github.com/cwbudde/algo-movint/internal/config"
	"github.com/cwbudde/algo-movint/internal/vectorfile"
	"github.com/cwbudde/algo-movint/stats/quant"
)

type vector struct {
	inputs []int64
	golden []int64
}

func (a *app) generateCmd() *cobra.Command {
	var (
		outDir string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one golden vector file per test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			return a.generate(cfg, outDir, verify)
		},
	}
	a.registerModelFlags(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check every vector against the direct-summation model")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func vectorPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("test_vector_%d.txt", n))
}

// generate computes every vector before writing any file, so a model error
// leaves the output directory untouched.
func (a *app) generate(cfg config.Configuration, outDir string, verify bool) error {
	params := cfg.Params()
	gen, kind, err := newStimulus(cfg)
	if err != nil {
		return err
	}

	a.logger.Info("generating vectors",
		zap.Stringer("params", params),
		zap.Stringer("stimulus", kind),
		zap.Int("tests", cfg.Tests),
		zap.Int("length", cfg.VectorLength),
		zap.Uint64("seed", cfg.Seed),
	)

	ref, err := integrator.NewFloatReference(params.Samples)
	if err != nil {
		return err
	}

	vectors := make([]vector, cfg.Tests)
	for n := range vectors {
		gen.SetSeed(cfg.Seed + uint64(n))
		inputs, err := gen.Generate(kind, cfg.VectorLength)
		if err != nil {
			return fmt.Errorf("test %d: %w", n, err)
		}

		values, err := params.GoldenValues(inputs)
		if err != nil {
			return fmt.Errorf("test %d: %w", n, err)
		}
		golden := integrator.Raw(values)

		if err := a.reportError(n, ref, inputs, values); err != nil {
			return fmt.Errorf("test %d: %w", n, err)
		}

		if verify {
			if err := crossCheck(params, inputs, golden); err != nil {
				return fmt.Errorf("test %d: %w", n, err)
			}
			a.logger.Debug("cross-check passed", zap.Int("test", n))
		}
		vectors[n] = vector{inputs: inputs, golden: golden}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for n, v := range vectors {
		path := vectorPath(outDir, n)
		if err := vectorfile.WriteFile(path, v.inputs, v.golden); err != nil {
			return err
		}
		a.logger.Info("wrote vector", zap.String("path", path), zap.Int("samples", len(v.inputs)))
	}
	return nil
}

func crossCheck(params integrator.Params, inputs, golden []int64) error {
	ref, err := integrator.Recompute(inputs, params.Samples, params.RoundMode(), params.ExtraBits())
	if err != nil {
		return err
	}
	if raw := integrator.Raw(ref); !slices.Equal(raw, golden) {
		mismatches, _ := vectorfile.Compare(raw, golden)
		return fmt.Errorf("streaming and direct-summation models disagree at %d samples, first %s", len(mismatches), mismatches[0])
	}
	return nil
}

// reportError logs the quantization error of the golden values against the
// floating-point reference.
func (a *app) reportError(n int, ref *integrator.FloatReference, inputs []int64, got []fixed.Value) error {
	mean, err := ref.Integrate(core.ToFloat64(inputs), true)
	if err != nil {
		return err
	}

	s, err := quant.Compare(got, mean)
	if err != nil {
		return err
	}
	a.logger.Info("quantization error",
		zap.Int("test", n),
		zap.Float64("mean_lsb", s.Mean),
		zap.Float64("rms_lsb", s.RMS),
		zap.Float64("peak_lsb", s.Peak),
		zap.Int("exact", s.Exact),
	)
	return nil
}
