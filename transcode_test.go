package pyxel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreesFromQuadrant(t *testing.T) {
	for q, want := range map[uint64]float64{0: 0.0, 1: 90.0, 2: 180.0, 3: 270.0} {
		got, err := degreesFromQuadrant(q)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDegreesFromQuadrantOutOfRange(t *testing.T) {
	_, err := degreesFromQuadrant(4)
	require.ErrorIs(t, err, ErrDeserialize)
	_, err = degreesFromQuadrant(1 << 40)
	require.ErrorIs(t, err, ErrDeserialize)
}

func TestDurationFromMillis(t *testing.T) {
	assert.Equal(t, 150*time.Millisecond, durationFromMillis(150))
	assert.Equal(t, time.Duration(0), durationFromMillis(0))
	assert.Equal(t, 86_400_000*time.Millisecond, durationFromMillis(86_400_000))
}

func TestMultipliersFromPercents(t *testing.T) {
	assert.Equal(t, []float64{1.0, 2.0, 0.5}, multipliersFromPercents([]uint64{100, 200, 50}))
	assert.Equal(t, []float64{}, multipliersFromPercents(nil))
}

func TestColorFromHex(t *testing.T) {
	c, err := colorFromHex("ffaabbcc")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 170, G: 187, B: 204, A: 255}, c)

	c, err = colorFromHex("80ff0000")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 255, G: 0, B: 0, A: 128}, c)
}

func TestColorFromHexMalformed(t *testing.T) {
	for _, s := range []string{"", "ffaabb", "ffaabbccdd", "zzaabbcc", "ffaabbc "} {
		_, err := colorFromHex(s)
		assert.ErrorIs(t, err, ErrDeserialize, "input %q", s)
	}
}

func TestDenseSlice(t *testing.T) {
	got, err := denseSlice("test", map[string]string{"0": "a", "1": "b", "2": "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got, err = denseSlice("test", map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDenseSliceRejectsGaps(t *testing.T) {
	_, err := denseSlice("test", map[string]string{"0": "a", "2": "c"})
	require.ErrorIs(t, err, ErrDeserialize)
}

func TestDenseSliceRejectsBadKeys(t *testing.T) {
	_, err := denseSlice("test", map[string]string{"-1": "a", "0": "b"})
	require.ErrorIs(t, err, ErrDeserialize)

	_, err = denseSlice("test", map[string]string{"x": "a"})
	require.ErrorIs(t, err, ErrDeserialize)
}

func TestSparseSlice(t *testing.T) {
	got, err := sparseSlice("test", map[string]int{"0": 10, "3": 40}, 100)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.NotNil(t, got[0])
	assert.Equal(t, 10, *got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, got[2])
	require.NotNil(t, got[3])
	assert.Equal(t, 40, *got[3])
}

func TestSparseSliceRejectsOversizedKey(t *testing.T) {
	_, err := sparseSlice("test", map[string]int{"100": 1}, 100)
	require.ErrorIs(t, err, ErrLimitExceeded)
}

func TestSparseSliceRejectsNegativeKey(t *testing.T) {
	_, err := sparseSlice("test", map[string]int{"-3": 1}, 100)
	require.ErrorIs(t, err, ErrDeserialize)
}
