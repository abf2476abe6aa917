package rbtree_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krelore/strukt/rbtree"
)

func intCmp(a, b int) int { return a - b }

func keysOf(t *testing.T, tr *rbtree.Tree[int, struct{}]) []int {
	t.Helper()
	var keys []int
	require.NoError(t, tr.InOrder(func(k int, _ struct{}) error {
		keys = append(keys, k)
		return nil
	}))

	return keys
}

func TestNew_Errors(t *testing.T) {
	_, err := rbtree.New[int, int](nil)
	assert.ErrorIs(t, err, rbtree.ErrNilCompare)
}

func TestEmpty(t *testing.T) {
	tr, err := rbtree.New[int, int](intCmp)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, -1, tr.Height())
	_, _, err = tr.Min()
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, _, err = tr.Max()
	assert.ErrorIs(t, err, rbtree.ErrEmptyTree)
	_, err = tr.Search(1)
	assert.ErrorIs(t, err, rbtree.ErrKeyNotFound)
	assert.ErrorIs(t, tr.Delete(1), rbtree.ErrKeyNotFound)
	assert.NoError(t, tr.Validate())
}

func TestInsert_SortedInput(t *testing.T) {
	tr, err := rbtree.New[int, struct{}](intCmp)
	require.NoError(t, err)

	const n = 1024
	for i := 1; i <= n; i++ {
		tr.Insert(i, struct{}{})
	}
	require.NoError(t, tr.Validate())
	assert.Equal(t, n, tr.Len())

	// red-black bound: height <= 2*log2(n+1)
	maxH := int(2 * math.Log2(n+1))
	assert.LessOrEqual(t, tr.Height(), maxH)

	k, _, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	k, _, err = tr.Max()
	require.NoError(t, err)
	assert.Equal(t, n, k)
}

func TestInsert_Overwrite(t *testing.T) {
	tr, err := rbtree.New[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	require.NoError(t, err)

	tr.Insert("k", 1)
	tr.Insert("k", 2)
	assert.Equal(t, 1, tr.Len())
	v, err := tr.Search("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestDelete_AllCases(t *testing.T) {
	tr, err := rbtree.New[int, struct{}](intCmp)
	require.NoError(t, err)

	keys := []int{41, 38, 31, 12, 19, 8, 45, 50, 3, 27}
	for _, k := range keys {
		tr.Insert(k, struct{}{})
		require.NoError(t, tr.Validate(), "after Insert(%d)", k)
	}

	// delete in an order that hits leaf, one-child, and two-children cases
	for _, k := range []int{12, 41, 8, 50, 31} {
		require.NoError(t, tr.Delete(k), "Delete(%d)", k)
		require.NoError(t, tr.Validate(), "after Delete(%d)", k)
	}
	assert.Equal(t, []int{3, 19, 27, 38, 45}, keysOf(t, tr))
}

func TestRandomized_InvariantHolds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tr, err := rbtree.New[int, struct{}](intCmp)
	require.NoError(t, err)
	oracle := map[int]bool{}

	for i := 0; i < 3000; i++ {
		k := rng.Intn(500)
		if rng.Intn(3) == 0 {
			err = tr.Delete(k)
			if oracle[k] {
				require.NoError(t, err, "Delete(%d)", k)
			} else {
				require.ErrorIs(t, err, rbtree.ErrKeyNotFound, "Delete(%d)", k)
			}
			delete(oracle, k)
		} else {
			tr.Insert(k, struct{}{})
			oracle[k] = true
		}
		// validating every step keeps failures close to their cause
		if i%97 == 0 {
			require.NoError(t, tr.Validate(), "step %d", i)
		}
	}
	require.NoError(t, tr.Validate())

	want := make([]int, 0, len(oracle))
	for k := range oracle {
		want = append(want, k)
	}
	sort.Ints(want)
	got := keysOf(t, tr)
	if got == nil {
		got = []int{}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), tr.Len())
}
