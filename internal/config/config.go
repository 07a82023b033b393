// Package config loads vector-generation settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-movint/dsp/integrator"
	"github.com/cwbudde/algo-movint/dsp/signal"
)

var errNoFilesToLoad = errors.New("config: no files to load")

// Generics mirrors the generics of the hardware test bench.
type Generics struct {
	DataInWidth    int  `yaml:"data_in_width" validate:"min=1,max=32"`
	DataOutWidth   int  `yaml:"data_out_width" validate:"min=1,max=48"`
	Samples        int  `yaml:"samples" validate:"min=1"`
	InputSigned    bool `yaml:"input_signed"`
	RoundEven      bool `yaml:"round_even"`
	ProtectionBits int  `yaml:"protection_bits" validate:"min=0"`
}

// Configuration is the full vectorgen configuration.
type Configuration struct {
	Generics     Generics `yaml:"generics"`
	VectorLength int      `yaml:"vector_length" validate:"min=1"`
	Tests        int      `yaml:"tests" validate:"min=1"`
	Seed         uint64   `yaml:"seed"`
	Stimulus     string   `yaml:"stimulus" validate:"nonzero"`
}

// Default returns the reference test-bench configuration.
func Default() Configuration {
	p := integrator.DefaultParams()
	return Configuration{
		Generics: Generics{
			DataInWidth:    p.DataInWidth,
			DataOutWidth:   p.DataOutWidth,
			Samples:        p.Samples,
			InputSigned:    p.InputSigned,
			RoundEven:      p.RoundEven,
			ProtectionBits: p.ProtectionBits,
		},
		VectorLength: 8192,
		Tests:        1,
		Seed:         1,
		Stimulus:     signal.Uniform.String(),
	}
}

// Params converts the generics to model parameters.
func (c Configuration) Params() integrator.Params {
	g := c.Generics
	return integrator.Params{
		DataInWidth:    g.DataInWidth,
		DataOutWidth:   g.DataOutWidth,
		Samples:        g.Samples,
		InputSigned:    g.InputSigned,
		RoundEven:      g.RoundEven,
		ProtectionBits: g.ProtectionBits,
	}
}

// StimulusKind returns the parsed stimulus kind.
func (c Configuration) StimulusKind() (signal.Kind, error) {
	return signal.ParseKind(c.Stimulus)
}

// Validate checks field constraints and the cross-field rules of the model.
func (c Configuration) Validate() error {
	var err error
	multierr.AppendInto(&err, validator.Validate(c))
	multierr.AppendInto(&err, c.Params().Validate())
	if _, kindErr := c.StimulusKind(); kindErr != nil {
		multierr.AppendInto(&err, kindErr)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadFile loads a configuration from a file on top of [Default].
func LoadFile(fname string) (Configuration, error) {
	return LoadFiles(fname)
}

// LoadFiles loads a configuration from a list of files on top of [Default].
// If a value is present in several files, the last one wins. Validation is
// done after merging all values.
func LoadFiles(fnames ...string) (Configuration, error) {
	cfg := Default()
	if len(fnames) == 0 {
		return cfg, errNoFilesToLoad
	}

	for _, fname := range fnames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}

		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", fname, err)
		}
	}

	return cfg, cfg.Validate()
}
