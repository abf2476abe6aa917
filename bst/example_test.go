package bst_test

import (
	"fmt"
	"strings"

	"github.com/krelore/strukt/bst"
)

// ExampleTree_InOrder builds a small word index and prints it sorted.
func ExampleTree_InOrder() {
	tr, err := bst.New[string, int](strings.Compare)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, w := range []string{"mango", "apple", "pear", "banana"} {
		tr.Insert(w, i)
	}

	_ = tr.InOrder(func(k string, v int) error {
		fmt.Printf("%s=%d\n", k, v)
		return nil
	})
	// Output:
	// apple=1
	// banana=3
	// mango=0
	// pear=2
}
