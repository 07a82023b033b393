package delay

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-movint/dsp/core"
)

// Sample is any element type a Line can hold.
type Sample interface {
	constraints.Integer | constraints.Float
}

// Line is a circular delay line.
type Line[T Sample] struct {
	buffer   []T
	writePos int
}

// New returns a zero-filled delay line of fixed size.
func New[T Sample](size int) (*Line[T], error) {
	if size <= 0 {
		return nil, core.InvalidParameterf("delay: size must be > 0: %d", size)
	}
	return &Line[T]{buffer: make([]T, size)}, nil
}

// Len returns internal buffer size.
func (d *Line[T]) Len() int {
	return len(d.buffer)
}

// Write writes one sample, overwriting the oldest.
func (d *Line[T]) Write(sample T) {
	d.Shift(sample)
}

// Shift writes one sample and returns the oldest one it replaced.
func (d *Line[T]) Shift(sample T) T {
	evicted := d.buffer[d.writePos]
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
	return evicted
}

// Read reads an integer delay in samples. Read(1) is the most recent sample
// and Read(Len()) the oldest.
func (d *Line[T]) Read(delay int) T {
	size := len(d.buffer)
	readPos := ((d.writePos-delay)%size + size) % size
	return d.buffer[readPos]
}

// Snapshot returns the contents oldest-first.
func (d *Line[T]) Snapshot() []T {
	out := make([]T, 0, len(d.buffer))
	out = append(out, d.buffer[d.writePos:]...)
	return append(out, d.buffer[:d.writePos]...)
}

// Reset clears line state.
func (d *Line[T]) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
