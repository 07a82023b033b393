// Package delay provides a fixed-capacity circular delay line.
//
// A [Line] behaves like a hardware shift register: it starts filled with
// zeros, each [Line.Shift] inserts the newest sample and returns the one that
// falls off the far end, and its capacity never changes.
package delay
