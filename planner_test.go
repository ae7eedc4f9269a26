package shortcut

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thulis/shortcut/cond"
	"github.com/thulis/shortcut/idx"
)

// plannedScan pulls the single query_plan event a Find emitted.
func plannedScan(t *testing.T, observer *MockObserver) map[string]interface{} {
	t.Helper()
	plans := observer.byType(EventQueryPlan)
	require.Len(t, plans, 1)
	data, ok := plans[0].Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestPlannerPicksCheapestIndex(t *testing.T) {
	s := New[string](2)
	require.NoError(t, s.AddIndex(0, idx.NewHashIndex[string]()))
	require.NoError(t, s.AddIndex(1, idx.NewHashIndex[string]()))
	// column 0 holds a single hot key (estimate 4), column 1 is all
	// distinct (estimate 1)
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Insert([]string{"hot", fmt.Sprintf("v%d", i)}))
	}

	observer := &MockObserver{}
	s.AddObserver(observer)

	rows := mustFind(t, s, eq(0, "hot"), eq(1, "v2"))
	require.Equal(t, [][]string{{"hot", "v2"}}, rows)

	plan := plannedScan(t, observer)
	require.Equal(t, "index", plan["scan"])
	require.Equal(t, 1, plan["column"])
	require.Equal(t, 1, plan["estimate"])
}

func TestPlannerTieBreaksOnConditionOrder(t *testing.T) {
	s := New[string](2)
	require.NoError(t, s.AddIndex(0, idx.NewHashIndex[string]()))
	require.NoError(t, s.AddIndex(1, idx.NewHashIndex[string]()))
	require.NoError(t, s.Insert([]string{"a", "x"}))
	require.NoError(t, s.Insert([]string{"b", "y"}))

	observer := &MockObserver{}
	s.AddObserver(observer)

	// both indexes estimate 1; the first condition's index must win
	rows := mustFind(t, s, eq(1, "x"), eq(0, "a"))
	require.Equal(t, [][]string{{"a", "x"}}, rows)

	plan := plannedScan(t, observer)
	require.Equal(t, 1, plan["column"])
}

func TestPlannerFullScanWithoutUsableIndex(t *testing.T) {
	s := New[string](2)
	require.NoError(t, s.AddIndex(1, idx.NewHashIndex[string]()))
	require.NoError(t, s.Insert([]string{"a", "x"}))

	observer := &MockObserver{}
	s.AddObserver(observer)

	// the only condition is on an unindexed column
	rows := mustFind(t, s, eq(0, "a"))
	require.Equal(t, [][]string{{"a", "x"}}, rows)

	plan := plannedScan(t, observer)
	require.Equal(t, "full", plan["scan"])
}

func TestPlannerSkipsColumnOperandConditions(t *testing.T) {
	s := New[string](2)
	require.NoError(t, s.AddIndex(0, idx.NewHashIndex[string]()))
	require.NoError(t, s.Insert([]string{"a", "a"}))

	observer := &MockObserver{}
	s.AddObserver(observer)

	// equality against another column cannot be served from the index
	rows := mustFind(t, s, cond.Condition[string]{Column: 0, Cmp: cond.Equal(cond.Col[string](1))})
	require.Equal(t, [][]string{{"a", "a"}}, rows)

	plan := plannedScan(t, observer)
	require.Equal(t, "full", plan["scan"])
}

func TestPlannerIndexedEmptyLookup(t *testing.T) {
	s := New[string](1)
	require.NoError(t, s.AddIndex(0, idx.NewHashIndex[string]()))
	require.NoError(t, s.Insert([]string{"a"}))

	// absent key narrows the scan to nothing; no error, no rows
	require.Empty(t, mustFind(t, s, eq(0, "missing")))
}
