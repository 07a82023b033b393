// Package signal generates deterministic integer test stimulus for the
// integrator models. All generators draw from a [core.SampleFormat] so the
// stimulus never exceeds the declared input port range.
package signal
