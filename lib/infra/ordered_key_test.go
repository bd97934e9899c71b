package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedLess(t *testing.T) {
	require.True(t, OrderedLess(1, 2))
	require.False(t, OrderedLess(2, 1))
	require.False(t, OrderedLess(2, 2))
	require.True(t, OrderedLess("abc", "abd"))
	require.True(t, OrderedLess(1.5, 1.75))

	type myKey uint16
	assert.True(t, OrderedLess(myKey(3), myKey(4)))
}

func TestLessFuncEquality(t *testing.T) {
	var less LessFunc[int] = OrderedLess[int]
	// Equality is "neither less than the other".
	equal := func(i, j int) bool { return !less(i, j) && !less(j, i) }
	assert.True(t, equal(7, 7))
	assert.False(t, equal(7, 8))
}
