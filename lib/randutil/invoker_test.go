package randutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvokerWeights(t *testing.T) {
	inv := NewInvoker(494894094)
	counts := make([]int, 3)
	inv.Add(90.0, func() { counts[0]++ })
	inv.Add(10.0, func() { counts[1]++ })
	inv.Add(0.0, func() { counts[2]++ })

	const n = 20000
	inv.Run(n)

	require.Equal(t, n, counts[0]+counts[1])
	require.Zero(t, counts[2])
	// Coarse proportion check; the sampler is deterministic for a fixed
	// seed so this cannot flake.
	require.InDelta(t, 0.9, float64(counts[0])/n, 0.02)
	require.InDelta(t, 0.1, float64(counts[1])/n, 0.02)
}

func TestInvokerNextIndex(t *testing.T) {
	inv := NewInvoker(1)
	require.Equal(t, -1, inv.Next())

	ran := false
	inv.Add(1.0, func() { ran = true })
	require.Equal(t, 0, inv.Next())
	require.True(t, ran)

	inv2 := NewInvoker(2)
	inv2.Add(0.0, func() { t.Fatal("zero-weight action dispatched") })
	require.Equal(t, -1, inv2.Next())
}
