package randutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuickRNGDeterministic(t *testing.T) {
	rng1 := NewQuickRNG(DefaultSeed)
	rng2 := NewQuickRNG(DefaultSeed)
	for k := 0; k < 1000; k++ {
		require.Equal(t, rng1.Next(), rng2.Next())
	}

	rng3 := NewQuickRNG(DefaultSeed)
	rng4 := NewQuickRNG(DefaultSeed + 1)
	diverged := false
	for k := 0; k < 1000; k++ {
		if rng3.Next() != rng4.Next() {
			diverged = true
			break
		}
	}
	require.True(t, diverged)
}

func TestQuickRNGSpread(t *testing.T) {
	rng := NewQuickRNG(4848990918)
	seen := make(map[uint32]struct{}, 10000)
	for k := 0; k < 10000; k++ {
		seen[rng.Next()] = struct{}{}
	}
	// A uniform 32-bit generator should essentially never collide here.
	require.Greater(t, len(seen), 9990)
}

func TestASCIIString(t *testing.T) {
	rng := NewQuickRNG(DefaultSeed)
	str := ASCIIString(128, rng)
	require.Len(t, str, 128)
	for _, ch := range []byte(str) {
		require.GreaterOrEqual(t, ch, byte(32))
		require.LessOrEqual(t, ch, byte(126))
	}
	require.Empty(t, ASCIIString(0, rng))
}

func TestASCIIStringRange(t *testing.T) {
	rng := NewQuickRNG(DefaultSeed)
	for k := 0; k < 1000; k++ {
		str := ASCIIStringRange(0, 128, rng)
		require.GreaterOrEqual(t, len(str), 0)
		require.Less(t, len(str), 128)
	}

	// Reversed bounds are swapped, equal bounds are exact.
	str := ASCIIStringRange(16, 4, rng)
	require.GreaterOrEqual(t, len(str), 4)
	require.Less(t, len(str), 16)
	require.Len(t, ASCIIStringRange(8, 8, rng), 8)
}
