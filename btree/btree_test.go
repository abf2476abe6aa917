package btree_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krelore/strukt/btree"
)

func intCmp(a, b int) int { return a - b }

func keysOf(t *testing.T, tr *btree.Tree[int, struct{}]) []int {
	t.Helper()
	keys := []int{}
	require.NoError(t, tr.InOrder(func(k int, _ struct{}) error {
		keys = append(keys, k)
		return nil
	}))

	return keys
}

func TestNew_Errors(t *testing.T) {
	_, err := btree.New[int, int](1, intCmp)
	assert.ErrorIs(t, err, btree.ErrBadDegree)
	_, err = btree.New[int, int](2, nil)
	assert.ErrorIs(t, err, btree.ErrNilCompare)
}

func TestEmpty(t *testing.T) {
	tr, err := btree.New[int, int](2, intCmp)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	_, _, err = tr.Min()
	assert.ErrorIs(t, err, btree.ErrEmptyTree)
	_, _, err = tr.Max()
	assert.ErrorIs(t, err, btree.ErrEmptyTree)
	_, err = tr.Search(3)
	assert.ErrorIs(t, err, btree.ErrKeyNotFound)
	assert.ErrorIs(t, tr.Delete(3), btree.ErrKeyNotFound)
}

// TestInsert_RootSplit drives a degree-2 tree past 2t-1 keys so the root splits.
func TestInsert_RootSplit(t *testing.T) {
	tr, err := btree.New[int, struct{}](2, intCmp)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		tr.Insert(i, struct{}{})
	}
	// four keys exceed the 2t-1 = 3 root capacity
	assert.Equal(t, 1, tr.Height())
	assert.Equal(t, []int{1, 2, 3, 4}, keysOf(t, tr))
}

func TestInsert_Overwrite(t *testing.T) {
	tr, err := btree.New[int, string](3, intCmp)
	require.NoError(t, err)

	tr.Insert(10, "ten")
	tr.Insert(10, "TEN")
	assert.Equal(t, 1, tr.Len())
	v, err := tr.Search(10)
	require.NoError(t, err)
	assert.Equal(t, "TEN", v)
}

// TestInsert_OverwriteInSplitPath covers the median key moving up during a
// split on the descent toward an existing key.
func TestInsert_OverwriteInSplitPath(t *testing.T) {
	tr, err := btree.New[int, string](2, intCmp)
	require.NoError(t, err)

	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tr.Insert(k, "old")
	}
	n := tr.Len()
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tr.Insert(k, "new")
	}
	assert.Equal(t, n, tr.Len())
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		v, serr := tr.Search(k)
		require.NoError(t, serr)
		assert.Equal(t, "new", v, "key %d", k)
	}
}

// TestDelete_CLRSCases walks the worked example shapes: leaf removal,
// internal-node predecessor/successor substitution, borrow, and merge.
func TestDelete_CLRSCases(t *testing.T) {
	tr, err := btree.New[int, struct{}](2, intCmp)
	require.NoError(t, err)

	keys := []int{10, 20, 5, 6, 12, 30, 7, 17, 3, 25, 1}
	for _, k := range keys {
		tr.Insert(k, struct{}{})
	}
	require.Equal(t, len(keys), tr.Len())

	for _, k := range []int{6, 13, 7, 4, 2, 16} {
		err = tr.Delete(k)
		switch k {
		case 13, 4, 2, 16: // never inserted
			assert.ErrorIs(t, err, btree.ErrKeyNotFound, "Delete(%d)", k)
		default:
			require.NoError(t, err, "Delete(%d)", k)
		}
	}

	want := []int{1, 3, 5, 10, 12, 17, 20, 25, 30}
	assert.Equal(t, want, keysOf(t, tr))
	assert.Equal(t, len(want), tr.Len())
}

// TestDelete_DrainToEmpty removes every key and expects a clean empty tree.
func TestDelete_DrainToEmpty(t *testing.T) {
	tr, err := btree.New[int, struct{}](2, intCmp)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		tr.Insert(i, struct{}{})
	}
	for i := 49; i >= 0; i-- {
		require.NoError(t, tr.Delete(i), "Delete(%d)", i)
	}
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	_, _, err = tr.Min()
	assert.ErrorIs(t, err, btree.ErrEmptyTree)
}

// TestRandomized fuzzes a larger degree against a map oracle.
func TestRandomized(t *testing.T) {
	for _, degree := range []int{2, 3, 5} {
		rng := rand.New(rand.NewSource(int64(degree)))
		tr, err := btree.New[int, struct{}](degree, intCmp)
		require.NoError(t, err)
		oracle := map[int]bool{}

		for i := 0; i < 4000; i++ {
			k := rng.Intn(600)
			if rng.Intn(3) == 0 {
				err = tr.Delete(k)
				if oracle[k] {
					require.NoError(t, err, "t=%d Delete(%d)", degree, k)
				} else {
					require.ErrorIs(t, err, btree.ErrKeyNotFound, "t=%d Delete(%d)", degree, k)
				}
				delete(oracle, k)
			} else {
				tr.Insert(k, struct{}{})
				oracle[k] = true
			}
		}

		want := make([]int, 0, len(oracle))
		for k := range oracle {
			want = append(want, k)
		}
		sort.Ints(want)
		assert.Equal(t, want, keysOf(t, tr), "degree %d", degree)
		assert.Equal(t, len(want), tr.Len(), "degree %d", degree)
	}
}

// TestMinMax pins the extremes after mixed operations.
func TestMinMax(t *testing.T) {
	tr, err := btree.New[int, struct{}](3, intCmp)
	require.NoError(t, err)

	for _, k := range []int{15, 3, 99, 42, 7} {
		tr.Insert(k, struct{}{})
	}
	k, _, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	k, _, err = tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 99, k)

	require.NoError(t, tr.Delete(3))
	require.NoError(t, tr.Delete(99))
	k, _, _ = tr.Min()
	assert.Equal(t, 7, k)
	k, _, _ = tr.Max()
	assert.Equal(t, 42, k)
}

// TestInOrder_Abort checks that a visitor error stops the walk wrapped.
func TestInOrder_Abort(t *testing.T) {
	tr, err := btree.New[int, struct{}](2, intCmp)
	require.NoError(t, err)
	for i := 1; i <= 10; i++ {
		tr.Insert(i, struct{}{})
	}

	sentinel := errors.New("enough")
	count := 0
	err = tr.InOrder(func(k int, _ struct{}) error {
		count++
		if k == 4 {
			return sentinel
		}
		return nil
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 4, count)
}
