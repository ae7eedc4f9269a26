package idx

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// drain collects a row-identifier sequence into a slice.
func drain(seq iter.Seq[int]) []int {
	var rows []int
	for row := range seq {
		rows = append(rows, row)
	}
	return rows
}

func TestHashRecordAndLookup(t *testing.T) {
	ix := NewHashIndex[string]()
	ix.Record("a", 0)
	ix.Record("b", 1)
	ix.Record("a", 2)

	require.Equal(t, []int{0, 2}, drain(ix.Lookup("a")))
	require.Equal(t, []int{1}, drain(ix.Lookup("b")))
}

func TestHashLookupAbsentKey(t *testing.T) {
	ix := NewHashIndex[string]()
	ix.Record("a", 0)

	// absent keys yield an empty sequence, not an error
	require.Empty(t, drain(ix.Lookup("missing")))
}

func TestHashLookupIsRestartable(t *testing.T) {
	ix := NewHashIndex[string]()
	ix.Record("a", 0)
	ix.Record("a", 1)

	seq := ix.Lookup("a")
	require.Equal(t, []int{0, 1}, drain(seq))
	require.Equal(t, []int{0, 1}, drain(seq))
}

func TestHashEstimate(t *testing.T) {
	ix := NewHashIndex[string]()
	require.Equal(t, 0, ix.Estimate())

	ix.Record("a", 0)
	ix.Record("a", 1)
	ix.Record("b", 2)

	// 3 rows over 2 keys rounds up to 2: never under-cost
	require.Equal(t, 2, ix.Estimate())

	ix.Record("b", 3)
	require.Equal(t, 2, ix.Estimate())
}
