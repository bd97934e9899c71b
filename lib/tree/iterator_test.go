package tree

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyTree(t *testing.T) {
	tree := newIntTree()
	begin, end := tree.Begin(), tree.End()
	require.True(t, begin.Equal(end))
	require.False(t, begin.Valid())
	require.False(t, end.Valid())

	// Next and Prev on the end position of an empty tree stay put.
	end.Next()
	require.True(t, end.Equal(tree.End()))
	end.Prev()
	require.True(t, end.Equal(tree.End()))
}

func TestIteratorForwardBackward(t *testing.T) {
	const n = 257
	tree := newIntTree()
	for _, k := range lo.Shuffle(lo.Range(n)) {
		tree.Insert(&intEntry{val: k})
	}

	want := 0
	it := tree.Begin()
	for ; it.Valid(); it.Next() {
		require.Equal(t, want, it.Item().val)
		want++
	}
	require.Equal(t, n, want)
	require.True(t, it.Equal(tree.End()))

	// Walking past the end is a no-op.
	it.Next()
	require.True(t, it.Equal(tree.End()))

	// Prev of End lands on the cached maximum, then descends in order.
	for want = n - 1; want >= 0; want-- {
		it.Prev()
		require.True(t, it.Valid())
		require.Equal(t, want, it.Item().val)
	}

	// Prev of Begin wraps to End.
	require.True(t, it.Equal(tree.Begin()))
	it.Prev()
	require.True(t, it.Equal(tree.End()))
}

func TestIteratorStableAcrossMutation(t *testing.T) {
	tree := newIntTree()
	for k := 0; k < 100; k++ {
		tree.Insert(&intEntry{val: k})
	}

	it := tree.Find(50)
	require.True(t, it.Valid())

	// Erasing other entries keeps iterators over surviving nodes usable.
	for k := 0; k < 50; k += 2 {
		_, ok := tree.Erase(k)
		require.True(t, ok)
	}
	require.Equal(t, 50, it.Item().val)
	it.Next()
	require.Equal(t, 51, it.Item().val)
	it.Prev()
	it.Prev()
	require.Equal(t, 49, it.Item().val)
}

func TestIteratorBoundaryCaches(t *testing.T) {
	tree := newIntTree()
	for _, k := range []int{30, 10, 50, 20, 40} {
		tree.Insert(&intEntry{val: k})
	}
	require.Equal(t, 10, tree.Begin().Item().val)

	end := tree.End()
	end.Prev()
	require.Equal(t, 50, end.Item().val)

	tree.Erase(10)
	require.Equal(t, 20, tree.Begin().Item().val)
	tree.Erase(50)
	end = tree.End()
	end.Prev()
	require.Equal(t, 40, end.Item().val)

	tree.Insert(&intEntry{val: 5})
	require.Equal(t, 5, tree.Begin().Item().val)
	tree.Insert(&intEntry{val: 60})
	end = tree.End()
	end.Prev()
	require.Equal(t, 60, end.Item().val)
}
