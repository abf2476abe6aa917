// Package strukt is your in-memory playground for classic data
// structures and algorithms — from heaps and balanced trees to sorting,
// searching, ciphers and game search.
//
// 🚀 What is strukt?
//
//	A modern, generic (Go 1.23+) library that brings together:
//		• Priority queues: binary min/max heap with O(n) heapify
//		• Ordered maps: BST, AVL, red-black tree, B-tree (CLRS semantics)
//		• Sorting: bubble, selection, insertion, shell, merge, quick,
//		  heapsort, counting, radix — all instrumented with Stats
//		• Searching: linear, binary, lower bound with probe counting
//		• Containers: doubly linked list, stack, queue
//		• Ciphers: Caesar shift with a frequency-analysis cracker
//		• Games: Tic-Tac-Toe engine with perfect negamax play
//
// ✨ Why choose strukt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – sentinel errors, documented complexity, in-code docs
//   - Instrumentable – hooks (OnCompare, OnSwap…) expose every step for study
//   - Generic – one implementation per structure, any ordered key type
//
// Under the hood, everything is organized per topic:
//
//	heap/      — binary heap priority queue
//	bst/       — unbalanced binary search tree
//	avl/       — height-balanced AVL tree
//	rbtree/    — red-black tree with invariant validation
//	btree/     — disk-style B-tree of configurable minimum degree
//	sortx/     — instrumented sorting algorithms
//	search/    — linear & binary search
//	list/      — linked list, stack, queue
//	caesar/    — Caesar cipher & chi-squared cracker
//	tictactoe/ — game state, match bookkeeping, negamax engine
//	cmd/strukt — CLI: sort scenarios, cipher tools, interactive play
//
// Quick ASCII example:
//
//	      4
//	     / \
//	    2   6        a balanced BST of {1..7}:
//	   / \ / \       every lookup is three probes or fewer.
//	  1  3 5  7
//
// Dive into README.md for full examples, a feature matrix, and our
// roadmap to persistent variants and beyond.
//
//	go get github.com/krelore/strukt
package strukt

// Version is the semantic version of the strukt library and CLI.
const Version = "0.1.0"
