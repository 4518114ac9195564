package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/nudge-sim/internal/entropy"
)

func seeded(t *testing.T, seed int64, hour int) (*Exogenous, *entropy.Source) {
	t.Helper()
	src := entropy.NewSource(seed)
	e := NewExogenous()
	e.Seed(src, hour)
	return e, src
}

func TestSeed_FillsFullHistories(t *testing.T) {
	e, _ := seeded(t, 1, 12)

	assert.Len(t, e.sleep.Values(), HistoryLength)
	assert.Len(t, e.motion.Values(), HistoryLength)
}

func TestSeed_SmallHoursStartAtHome(t *testing.T) {
	for hour := 2; hour < 7; hour++ {
		for seed := int64(1); seed < 20; seed++ {
			e, _ := seeded(t, seed, hour)
			assert.Equal(t, Home, e.Location(), "hour %d seed %d", hour, seed)
		}
	}
}

func TestHistoriesStayBounded(t *testing.T) {
	e, src := seeded(t, 2, 0)
	for hour := 0; hour < 100; hour++ {
		e.ResampleSleep(src, hour%24)
		e.ResampleMotion(src, false)
		assert.LessOrEqual(t, len(e.sleep.Values()), HistoryLength)
		assert.LessOrEqual(t, len(e.motion.Values()), HistoryLength)
		assert.GreaterOrEqual(t, len(e.sleep.Values()), 1)
	}
}

func TestResampleMotion_PerformedForcesWalking(t *testing.T) {
	e, src := seeded(t, 3, 12)
	for i := 0; i < 50; i++ {
		assert.Equal(t, Walking, e.ResampleMotion(src, true))
	}
}

func TestResampleMotion_FollowsHistory(t *testing.T) {
	e, src := seeded(t, 4, 12)
	for i := 0; i < HistoryLength; i++ {
		e.ForceAsleep()
	}
	// An all-stationary history gives walking zero weight.
	for i := 0; i < 50; i++ {
		assert.Equal(t, Stationary, e.ResampleMotion(src, false))
	}
}

func TestResampleLocation_WalkingIsOther(t *testing.T) {
	e, src := seeded(t, 5, 12)
	e.ResampleMotion(src, true)
	assert.Equal(t, Other, e.ResampleLocation(src))
}

func TestResampleLocation_StationaryMostlyHome(t *testing.T) {
	e, src := seeded(t, 12, 12)
	for i := 0; i < HistoryLength; i++ {
		e.ForceAsleep()
	}

	const n = 5000
	home := 0
	for i := 0; i < n; i++ {
		require.Equal(t, Stationary, e.ResampleMotion(src, false))
		if e.ResampleLocation(src) == Home {
			home++
		}
	}
	assert.InDelta(t, stillAtHome, float64(home)/n, 0.03)
}

func TestForceAsleep(t *testing.T) {
	e, src := seeded(t, 6, 12)
	e.ResampleMotion(src, true)
	e.ForceAsleep()

	assert.Equal(t, Home, e.Location())
	assert.Equal(t, Stationary, e.Motion())
}

func TestResampleSleep_FollowsWakeTable(t *testing.T) {
	e, src := seeded(t, 7, 0)
	const n = 4000
	awakeAtNoon, awakeAt3 := 0, 0
	for i := 0; i < n; i++ {
		if e.ResampleSleep(src, 12) == Awake {
			awakeAtNoon++
		}
		if e.ResampleSleep(src, 3) == Awake {
			awakeAt3++
		}
	}
	assert.InDelta(t, 0.95, float64(awakeAtNoon)/n, 0.03)
	assert.InDelta(t, 0.1, float64(awakeAt3)/n, 0.03)
}

func TestHoursSlept_LiteralIsAlwaysZero(t *testing.T) {
	e, src := seeded(t, 8, 0)
	for i := 0; i < 48; i++ {
		e.ResampleSleep(src, 3)
		assert.Equal(t, 0, e.HoursSlept(SleepCountLiteral))
		assert.False(t, e.SufficientSleep(SleepCountLiteral))
	}
}

func TestHoursSlept_LastDayCountsWindow(t *testing.T) {
	e, _ := seeded(t, 9, 0)
	want := 0
	for _, s := range e.sleep.Values() {
		if s == Asleep {
			want++
		}
	}
	assert.Equal(t, want, e.HoursSlept(SleepCountLastDay))
	assert.Equal(t, want > 7, e.SufficientSleep(SleepCountLastDay))
}

func TestHoursSlept_LastDayAllAsleep(t *testing.T) {
	e := NewExogenous()
	src := entropy.NewSource(10)
	// Hour 3 wakes with p=0.1, so a full window is mostly asleep.
	for i := 0; i < 4*HistoryLength; i++ {
		e.ResampleSleep(src, 3)
	}
	require.Len(t, e.sleep.Values(), HistoryLength)
	require.GreaterOrEqual(t, e.HoursSlept(SleepCountLastDay), sufficientSleep+1)
	assert.True(t, e.SufficientSleep(SleepCountLastDay))
}

func TestWakeProbability_WrapsHour(t *testing.T) {
	assert.Equal(t, WakeProbability(0), WakeProbability(24))
	assert.Equal(t, WakeProbability(23), WakeProbability(-1))
}
