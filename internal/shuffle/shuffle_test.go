package shuffle

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomShuffleIsPermutation(t *testing.T) {
	s, err := New(&Config{Seed: 42})
	require.NoError(t, err)

	in := []string{"a", "b", "c", "d", "e", "f"}
	out := append([]string{}, in...)
	s.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	sorted := append([]string{}, out...)
	sort.Strings(sorted)
	assert.Equal(t, in, sorted)
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	a, err := New(&Config{Seed: 7})
	require.NoError(t, err)
	b, err := New(&Config{Seed: 7})
	require.NoError(t, err)

	x := []int{1, 2, 3, 4, 5, 6, 7, 8}
	y := append([]int{}, x...)
	a.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	b.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })
	assert.Equal(t, x, y)
}

func TestNewWithoutSeed(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestReverse(t *testing.T) {
	x := []int{1, 2, 3, 4}
	Reverse{}.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	assert.Equal(t, []int{4, 3, 2, 1}, x)
}
