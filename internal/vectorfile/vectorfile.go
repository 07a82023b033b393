// Package vectorfile reads and writes the plain-text test vectors exchanged
// with the hardware simulator.
//
// A vector file has one line per sample: the input sample and the golden
// output integer, separated by whitespace. There is no header. Simulator
// output dumps have a single column.
package vectorfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrLengthMismatch is returned when paired columns differ in length.
	ErrLengthMismatch = errors.New("vectorfile: length mismatch")
	// ErrMalformed is returned for lines that do not parse.
	ErrMalformed = errors.New("vectorfile: malformed line")
)

// Write emits one "<input>  <golden>" line per sample.
func Write(w io.Writer, inputs, golden []int64) error {
	if len(inputs) != len(golden) {
		return fmt.Errorf("%w: %d inputs, %d outputs", ErrLengthMismatch, len(inputs), len(golden))
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 48)
	for i := range inputs {
		line = strconv.AppendInt(line[:0], inputs[i], 10)
		line = append(line, ' ', ' ')
		line = strconv.AppendInt(line, golden[i], 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("vectorfile: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("vectorfile: %w", err)
	}
	return nil
}

// WriteFile writes a vector file at path. On error the partial file is
// removed.
func WriteFile(path string, inputs, golden []int64) (err error) {
	if len(inputs) != len(golden) {
		return fmt.Errorf("%w: %d inputs, %d outputs", ErrLengthMismatch, len(inputs), len(golden))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vectorfile: %w", err)
	}
	defer func() {
		multierr.AppendInto(&err, f.Close())
		if err != nil {
			multierr.AppendInto(&err, os.Remove(path))
		}
	}()

	return Write(f, inputs, golden)
}

// Read parses a two-column vector file.
func Read(r io.Reader) (inputs, golden []int64, err error) {
	err = scan(r, 2, func(fields []int64) {
		inputs = append(inputs, fields[0])
		golden = append(golden, fields[1])
	})
	if err != nil {
		return nil, nil, err
	}
	return inputs, golden, nil
}

// ReadFile parses the vector file at path.
func ReadFile(path string) (inputs, golden []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("vectorfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ReadOutputs parses a single-column simulator output dump.
func ReadOutputs(r io.Reader) ([]int64, error) {
	var out []int64
	err := scan(r, 1, func(fields []int64) {
		out = append(out, fields[0])
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadOutputsFile parses the simulator output dump at path.
func ReadOutputsFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vectorfile: %w", err)
	}
	defer f.Close()

	return ReadOutputs(f)
}

// scan calls fn with the parsed fields of every non-blank line. Each line
// must hold exactly columns integers.
func scan(r io.Reader, columns int, fn func([]int64)) error {
	sc := bufio.NewScanner(r)
	fields := make([]int64, columns)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		parts := strings.Fields(sc.Text())
		if len(parts) == 0 {
			continue
		}
		if len(parts) != columns {
			return fmt.Errorf("%w %d: want %d fields, got %d", ErrMalformed, lineNo, columns, len(parts))
		}
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return fmt.Errorf("%w %d: %w", ErrMalformed, lineNo, err)
			}
			fields[i] = v
		}
		fn(fields)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("vectorfile: %w", err)
	}
	return nil
}
