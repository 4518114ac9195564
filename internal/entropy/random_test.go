package entropy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSource_SameSeedSameStream(t *testing.T) {
	a := NewSource(7)
	b := NewSource(7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Chance(0.5), b.Chance(0.5))
		assert.Equal(t, a.Intn(24), b.Intn(24))
	}
	assert.Equal(t, a.NewID(), b.NewID())
}

func TestSource_ZeroSeedIsReplaced(t *testing.T) {
	s := NewSource(0)
	assert.NotZero(t, s.Seed())
}

func TestWeighted_ForcedChoice(t *testing.T) {
	s := NewSource(1)
	for i := 0; i < 200; i++ {
		assert.Equal(t, 1, s.Weighted(0, 1))
		assert.Equal(t, 0, s.Weighted(1, 0))
	}
}

func TestWeighted_AllZeroPicksLast(t *testing.T) {
	s := NewSource(1)
	assert.Equal(t, 2, s.Weighted(0, 0, 0))
	assert.Equal(t, 0, s.Weighted())
}

func TestWeighted_RoughlyProportional(t *testing.T) {
	s := NewSource(99)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if s.Weighted(0.8, 0.2) == 0 {
			hits++
		}
	}
	assert.InDelta(t, 0.8, float64(hits)/n, 0.02)
}

func TestChance_Bounds(t *testing.T) {
	s := NewSource(3)
	for i := 0; i < 200; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}

func TestIntn_NonPositive(t *testing.T) {
	s := NewSource(3)
	assert.Equal(t, 0, s.Intn(0))
	assert.Equal(t, 0, s.Intn(-5))
}

func TestNewID_IsVersion4(t *testing.T) {
	id := NewSource(11).NewID()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())
}
