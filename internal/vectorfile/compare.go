package vectorfile

import "fmt"

// Mismatch is one differing output.
type Mismatch struct {
	Index int
	Want  int64
	Got   int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("sample %d: want %d, got %d", m.Index, m.Want, m.Got)
}

// Compare diffs simulator output against golden values with zero
// tolerance. Sequences of different length are an error.
func Compare(golden, got []int64) ([]Mismatch, error) {
	if len(golden) != len(got) {
		return nil, fmt.Errorf("%w: %d golden, %d simulated", ErrLengthMismatch, len(golden), len(got))
	}

	var mismatches []Mismatch
	for i := range golden {
		if golden[i] != got[i] {
			mismatches = append(mismatches, Mismatch{Index: i, Want: golden[i], Got: got[i]})
		}
	}
	return mismatches, nil
}
