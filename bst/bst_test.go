package bst_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/krelore/strukt/bst"
)

func intCmp(a, b int) int { return a - b }

func newIntTree(t *testing.T, keys ...int) *bst.Tree[int, string] {
	t.Helper()
	tr, err := bst.New[int, string](intCmp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, k := range keys {
		tr.Insert(k, "")
	}

	return tr
}

func keysOf(t *testing.T, tr *bst.Tree[int, string]) []int {
	t.Helper()
	var keys []int
	if err := tr.InOrder(func(k int, _ string) error {
		keys = append(keys, k)
		return nil
	}); err != nil {
		t.Fatalf("InOrder: %v", err)
	}

	return keys
}

// TestNew_Errors verifies nil comparison rejection.
func TestNew_Errors(t *testing.T) {
	if _, err := bst.New[int, string](nil); !errors.Is(err, bst.ErrNilCompare) {
		t.Errorf("nil cmp: want ErrNilCompare, got %v", err)
	}
}

// TestEmpty covers every operation on an empty tree.
func TestEmpty(t *testing.T) {
	tr := newIntTree(t)
	if tr.Len() != 0 {
		t.Errorf("Len = %d; want 0", tr.Len())
	}
	if tr.Height() != -1 {
		t.Errorf("Height = %d; want -1", tr.Height())
	}
	if _, _, err := tr.Min(); !errors.Is(err, bst.ErrEmptyTree) {
		t.Errorf("Min: want ErrEmptyTree, got %v", err)
	}
	if _, _, err := tr.Max(); !errors.Is(err, bst.ErrEmptyTree) {
		t.Errorf("Max: want ErrEmptyTree, got %v", err)
	}
	if _, err := tr.Search(1); !errors.Is(err, bst.ErrKeyNotFound) {
		t.Errorf("Search: want ErrKeyNotFound, got %v", err)
	}
	if err := tr.Delete(1); !errors.Is(err, bst.ErrKeyNotFound) {
		t.Errorf("Delete: want ErrKeyNotFound, got %v", err)
	}
}

// TestInsertSearch covers insertion, lookup, and value overwrite on duplicates.
func TestInsertSearch(t *testing.T) {
	tr, _ := bst.New[int, string](intCmp)
	tr.Insert(5, "five")
	tr.Insert(2, "two")
	tr.Insert(8, "eight")
	if tr.Len() != 3 {
		t.Errorf("Len = %d; want 3", tr.Len())
	}
	v, err := tr.Search(2)
	if err != nil || v != "two" {
		t.Errorf("Search(2) = %q, %v; want \"two\", nil", v, err)
	}
	// duplicate insert overwrites, size unchanged
	tr.Insert(2, "deux")
	if tr.Len() != 3 {
		t.Errorf("Len after duplicate = %d; want 3", tr.Len())
	}
	if v, _ = tr.Search(2); v != "deux" {
		t.Errorf("Search(2) after overwrite = %q; want \"deux\"", v)
	}
}

// TestInOrder_Sorted verifies ascending key order regardless of insert order.
func TestInOrder_Sorted(t *testing.T) {
	tr := newIntTree(t, 7, 3, 9, 1, 5, 8, 10)
	want := []int{1, 3, 5, 7, 8, 9, 10}
	if got := keysOf(t, tr); !reflect.DeepEqual(got, want) {
		t.Errorf("InOrder keys = %v; want %v", got, want)
	}
}

// TestInOrder_Abort checks that a visitor error stops the walk and is wrapped.
func TestInOrder_Abort(t *testing.T) {
	tr := newIntTree(t, 2, 1, 3)
	sentinel := errors.New("stop here")
	var seen []int
	err := tr.InOrder(func(k int, _ string) error {
		seen = append(seen, k)
		if k == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("want wrapped sentinel, got %v", err)
	}
	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Errorf("visited %v; want [1 2]", seen)
	}
}

// TestMinMax covers the extremes.
func TestMinMax(t *testing.T) {
	tr := newIntTree(t, 4, 2, 6, 1, 9)
	if k, _, _ := tr.Min(); k != 1 {
		t.Errorf("Min = %d; want 1", k)
	}
	if k, _, _ := tr.Max(); k != 9 {
		t.Errorf("Max = %d; want 9", k)
	}
}

// TestSuccessorPredecessor covers both subtree and ancestor cases.
func TestSuccessorPredecessor(t *testing.T) {
	// shape:    5
	//          / \
	//         2   8
	//          \  /
	//          3 7
	tr := newIntTree(t, 5, 2, 8, 3, 7)

	// successor within right subtree
	if k, _, err := tr.Successor(5); err != nil || k != 7 {
		t.Errorf("Successor(5) = %d, %v; want 7", k, err)
	}
	// successor via ancestor
	if k, _, err := tr.Successor(3); err != nil || k != 5 {
		t.Errorf("Successor(3) = %d, %v; want 5", k, err)
	}
	// no successor at max
	if _, _, err := tr.Successor(8); !errors.Is(err, bst.ErrNoSuccessor) {
		t.Errorf("Successor(8): want ErrNoSuccessor, got %v", err)
	}
	// absent key
	if _, _, err := tr.Successor(6); !errors.Is(err, bst.ErrKeyNotFound) {
		t.Errorf("Successor(6): want ErrKeyNotFound, got %v", err)
	}

	// predecessor within left subtree
	if k, _, err := tr.Predecessor(5); err != nil || k != 3 {
		t.Errorf("Predecessor(5) = %d, %v; want 3", k, err)
	}
	// predecessor via ancestor
	if k, _, err := tr.Predecessor(7); err != nil || k != 5 {
		t.Errorf("Predecessor(7) = %d, %v; want 5", k, err)
	}
	// no predecessor at min
	if _, _, err := tr.Predecessor(2); !errors.Is(err, bst.ErrNoPredecessor) {
		t.Errorf("Predecessor(2): want ErrNoPredecessor, got %v", err)
	}
}

// TestDelete exercises the three CLRS cases: leaf, one child, two children.
func TestDelete(t *testing.T) {
	tr := newIntTree(t, 50, 30, 70, 20, 40, 60, 80)

	// leaf
	if err := tr.Delete(20); err != nil {
		t.Fatalf("Delete(20): %v", err)
	}
	// one child: 30 now has only right child 40
	if err := tr.Delete(30); err != nil {
		t.Fatalf("Delete(30): %v", err)
	}
	// two children: root is replaced by its in-order successor 60
	if err := tr.Delete(50); err != nil {
		t.Fatalf("Delete(50): %v", err)
	}

	want := []int{40, 60, 70, 80}
	if got := keysOf(t, tr); !reflect.DeepEqual(got, want) {
		t.Errorf("keys after deletes = %v; want %v", got, want)
	}
	if tr.Len() != 4 {
		t.Errorf("Len = %d; want 4", tr.Len())
	}
	if _, err := tr.Search(50); !errors.Is(err, bst.ErrKeyNotFound) {
		t.Errorf("Search(50) after delete: want ErrKeyNotFound, got %v", err)
	}
}

// TestHeight_Degeneration shows the sorted-input worst case.
func TestHeight_Degeneration(t *testing.T) {
	tr := newIntTree(t, 1, 2, 3, 4, 5)
	// sorted inserts build a right spine: height == n-1
	if h := tr.Height(); h != 4 {
		t.Errorf("Height = %d; want 4", h)
	}
}
