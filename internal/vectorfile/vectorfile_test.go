package vectorfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []int64{1, -2, 300}, []int64{0, -1, 75}))
	assert.Equal(t, "1  0\n-2  -1\n300  75\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Empty(t, buf.String())
}

func TestWriteLengthMismatch(t *testing.T) {
	err := Write(&bytes.Buffer{}, []int64{1}, nil)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, []int64{1}, []int64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestReadRoundTrip(t *testing.T) {
	inputs := []int64{0, 65535, 12, -32768}
	golden := []int64{0, 2047, 3, -1024}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, inputs, golden))

	gotIn, gotGolden, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, inputs, gotIn)
	assert.Equal(t, golden, gotGolden)
}

func TestReadToleratesWhitespace(t *testing.T) {
	in, golden, err := Read(strings.NewReader("1\t2\n\n   3 4   \r\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, in)
	assert.Equal(t, []int64{2, 4}, golden)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"one column", "1 2\n3\n", "line 2"},
		{"three columns", "1 2 3\n", "line 1"},
		{"not a number", "1 2\n3 x\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestReadOutputs(t *testing.T) {
	out, err := ReadOutputs(strings.NewReader("5\n-6\n\n7\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, -6, 7}, out)

	_, err = ReadOutputs(strings.NewReader("5 6\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_vector_0.txt")
	require.NoError(t, WriteFile(path, []int64{1, 2}, []int64{3, 4}))

	in, golden, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, in)
	assert.Equal(t, []int64{3, 4}, golden)

	outPath := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(outPath, []byte("3\n4\n"), 0o600))
	out, err := ReadOutputsFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, golden, out)
}

func TestWriteFileLengthMismatchCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")
	err := WriteFile(path, []int64{1, 2}, []int64{3})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileMissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "v.txt"), nil, nil)
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = ReadOutputsFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
