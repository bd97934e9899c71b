package tree

import (
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

func BenchmarkRBTreeInsert(b *testing.B) {
	entries := make([]*intEntry, b.N)
	for i := range entries {
		entries[i] = &intEntry{val: i}
	}
	tree := newIntTree()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(entries[i])
	}
}

func BenchmarkRBTreeFind(b *testing.B) {
	const n = 50000
	tree := newIntTree()
	for i := 0; i < n; i++ {
		tree.Insert(&intEntry{val: i})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tree.Contains(i % n) {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkRBTreeErase(b *testing.B) {
	entries := make([]*intEntry, b.N)
	for i := range entries {
		entries[i] = &intEntry{val: i}
	}
	tree := newIntTree()
	for _, e := range entries {
		tree.Insert(e)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Erase(i)
	}
}

// Reference baseline, same workloads.

func BenchmarkGodsRBTreePut(b *testing.B) {
	tree := rbt.NewWithIntComparator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Put(i, nil)
	}
}

func BenchmarkGodsRBTreeGet(b *testing.B) {
	const n = 50000
	tree := rbt.NewWithIntComparator()
	for i := 0; i < n; i++ {
		tree.Put(i, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := tree.Get(i % n); !found {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkGodsRBTreeRemove(b *testing.B) {
	tree := rbt.NewWithIntComparator()
	for i := 0; i < b.N; i++ {
		tree.Put(i, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Remove(i)
	}
}
