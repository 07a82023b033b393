package core

import "fmt"

// MaxSampleWidth is the widest input port the models accept.
const MaxSampleWidth = 32

// SampleFormat describes the integer format of a hardware input port.
type SampleFormat struct {
	Width  int
	Signed bool
}

// Validate reports whether the width is in [1, MaxSampleWidth].
func (f SampleFormat) Validate() error {
	if f.Width < 1 || f.Width > MaxSampleWidth {
		return InvalidParameterf("sample width must be in [1, %d]: %d", MaxSampleWidth, f.Width)
	}
	return nil
}

// Min returns the smallest representable sample.
func (f SampleFormat) Min() int64 {
	if !f.Signed {
		return 0
	}
	return -(int64(1) << (f.Width - 1))
}

// Max returns the largest representable sample.
func (f SampleFormat) Max() int64 {
	if !f.Signed {
		return int64(1)<<f.Width - 1
	}
	return int64(1)<<(f.Width-1) - 1
}

// MaxMagnitude returns the largest absolute value a sample can take.
func (f SampleFormat) MaxMagnitude() int64 {
	if f.Signed {
		return -f.Min()
	}
	return f.Max()
}

// Contains reports whether v is representable.
func (f SampleFormat) Contains(v int64) bool {
	return v >= f.Min() && v <= f.Max()
}

// Check returns an ErrValueOutOfRange error if v is not representable.
func (f SampleFormat) Check(v int64) error {
	if f.Contains(v) {
		return nil
	}
	return OutOfRangef("sample %d outside %s range [%d, %d]", v, f, f.Min(), f.Max())
}

// String returns the format as "s16" or "u16".
func (f SampleFormat) String() string {
	if f.Signed {
		return fmt.Sprintf("s%d", f.Width)
	}
	return fmt.Sprintf("u%d", f.Width)
}
