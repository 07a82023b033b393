// Command vectorgen writes golden test vectors for the moving-window
// integrator and checks simulator output against them.
//
// Usage:
//
//	vectorgen generate [--config file] [flags] --out dir
//	vectorgen check --golden test_vector_0.txt --got sim_out.txt
//	vectorgen info [--config file] [flags]
//
// Examples:
//
//	vectorgen generate --out vunit_out
//	vectorgen generate --samples 64 --round-even --tests 4 --out vunit_out
//	vectorgen check --golden vunit_out/test_vector_0.txt --got sim.txt
//	vectorgen info --in-width 12 --out-width 20
package main

import "os"

func main() {
	if err := newApp(os.Stdout, os.Stderr).rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
