package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-movint/dsp/signal"
	"github.com/cwbudde/algo-movint/internal/config"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger

	configFiles []string
	verbose     bool
	overrides   overrides
}

// overrides are the command-line values that take precedence over the
// configuration file.
type overrides struct {
	inWidth        int
	outWidth       int
	samples        int
	signed         bool
	roundEven      bool
	protectionBits int
	length         int
	tests          int
	seed           uint64
	stimulus       string
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vectorgen",
		Short:        "Golden test vectors for the moving-window integrator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "human-readable debug logging")

	root.AddCommand(a.generateCmd(), a.checkCmd(), a.infoCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// registerModelFlags adds the config file and override flags shared by
// generate and info.
func (a *app) registerModelFlags(cmd *cobra.Command) {
	def := config.Default()
	g := def.Generics

	f := cmd.Flags()
	f.StringSliceVarP(&a.configFiles, "config", "c", nil, "YAML configuration file; repeat to merge")
	f.IntVar(&a.overrides.inWidth, "in-width", g.DataInWidth, "input sample width in bits")
	f.IntVar(&a.overrides.outWidth, "out-width", g.DataOutWidth, "output width in bits")
	f.IntVar(&a.overrides.samples, "samples", g.Samples, "integration window length")
	f.BoolVar(&a.overrides.signed, "signed", g.InputSigned, "signed input samples")
	f.BoolVar(&a.overrides.roundEven, "round-even", g.RoundEven, "round half to even instead of truncating")
	f.IntVar(&a.overrides.protectionBits, "protection-bits", g.ProtectionBits, "integer bits reserved against overflow")
	f.IntVar(&a.overrides.length, "length", def.VectorLength, "samples per vector")
	f.IntVar(&a.overrides.tests, "tests", def.Tests, "number of vector files")
	f.Uint64Var(&a.overrides.seed, "seed", def.Seed, "random seed of the first vector")
	f.StringVar(&a.overrides.stimulus, "stimulus", def.Stimulus, "stimulus kind: uniform, ramp, constant, step or sine")
}

// loadConfig loads the configuration files, if any, and applies the flags
// the user set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) (config.Configuration, error) {
	cfg := config.Default()
	if len(a.configFiles) > 0 {
		var err error
		if cfg, err = config.LoadFiles(a.configFiles...); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	o := a.overrides
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("in-width", func() { cfg.Generics.DataInWidth = o.inWidth })
	set("out-width", func() { cfg.Generics.DataOutWidth = o.outWidth })
	set("samples", func() { cfg.Generics.Samples = o.samples })
	set("signed", func() { cfg.Generics.InputSigned = o.signed })
	set("round-even", func() { cfg.Generics.RoundEven = o.roundEven })
	set("protection-bits", func() { cfg.Generics.ProtectionBits = o.protectionBits })
	set("length", func() { cfg.VectorLength = o.length })
	set("tests", func() { cfg.Tests = o.tests })
	set("seed", func() { cfg.Seed = o.seed })
	set("stimulus", func() { cfg.Stimulus = o.stimulus })

	return cfg, cfg.Validate()
}

// newStimulus returns the generator and kind configured by cfg.
func newStimulus(cfg config.Configuration) (*signal.Generator, signal.Kind, error) {
	kind, err := cfg.StimulusKind()
	if err != nil {
		return nil, 0, err
	}
	gen, err := signal.NewGenerator(cfg.Params().SampleFormat(), signal.WithSeed(cfg.Seed))
	if err != nil {
		return nil, 0, err
	}
	return gen, kind, nil
}
