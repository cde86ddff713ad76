package lapledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapwatch/lapwatch/internal/lapledger"
)

func TestRecordSplitsAgainstLapStart(t *testing.T) {
	l := lapledger.New()

	first := l.Record(1500 * time.Millisecond)
	second := l.Record(3500 * time.Millisecond)

	assert.Equal(t, lapledger.Lap{Split: 1500 * time.Millisecond, Total: 1500 * time.Millisecond}, first)
	assert.Equal(t, lapledger.Lap{Split: 2 * time.Second, Total: 3500 * time.Millisecond}, second)
	assert.Equal(t, 2, l.Len())
}

func TestTotalsAndSplitsStayConsistent(t *testing.T) {
	l := lapledger.New()

	readings := []time.Duration{
		700 * time.Millisecond,
		1300 * time.Millisecond,
		4 * time.Second,
		4100 * time.Millisecond,
	}
	for _, r := range readings {
		l.Record(r)
	}

	laps := l.Laps()
	require.Len(t, laps, len(readings))

	var sum time.Duration
	var prevTotal time.Duration
	for _, lap := range laps {
		assert.GreaterOrEqual(t, lap.Total, prevTotal)
		sum += lap.Split
		assert.Equal(t, lap.Total, sum)
		prevTotal = lap.Total
	}
}

func TestCurrentLap(t *testing.T) {
	l := lapledger.New()

	assert.Equal(t, time.Second, l.CurrentLap(time.Second))

	l.Record(time.Second)

	assert.Equal(t, 500*time.Millisecond, l.CurrentLap(1500*time.Millisecond))
}

func TestClearRestartsLapAtReading(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)
	l.Record(2 * time.Second)

	l.Clear(2500 * time.Millisecond)

	assert.Zero(t, l.Len())
	assert.Empty(t, l.Laps())

	// The next lap measures only time after the clear.
	lap := l.Record(4 * time.Second)
	assert.Equal(t, 1500*time.Millisecond, lap.Split)
	assert.Equal(t, 4*time.Second, lap.Total)
}

func TestResetDiscardsEverything(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)

	l.Reset()

	assert.Zero(t, l.Len())
	assert.Equal(t, 2*time.Second, l.CurrentLap(2*time.Second))
}

func TestRestoreContinuesFromLastTotal(t *testing.T) {
	l := lapledger.New()

	saved := []lapledger.Lap{
		{Split: time.Second, Total: time.Second},
		{Split: 2 * time.Second, Total: 3 * time.Second},
	}
	l.Restore(saved)

	assert.Equal(t, saved, l.Laps())
	assert.Equal(t, 500*time.Millisecond, l.CurrentLap(3500*time.Millisecond))

	lap := l.Record(5 * time.Second)
	assert.Equal(t, 2*time.Second, lap.Split)
}

func TestRestoreEmpty(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)

	l.Restore(nil)

	assert.Zero(t, l.Len())
	assert.Equal(t, time.Second, l.CurrentLap(time.Second))
}

func TestLapsReturnsCopy(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)

	laps := l.Laps()
	laps[0].Split = 0

	assert.Equal(t, time.Second, l.Laps()[0].Split)
}

func TestStatsEmpty(t *testing.T) {
	l := lapledger.New()

	s := l.Stats()

	assert.True(t, s.AllEqual)
	assert.False(t, s.HasAverage)
	assert.Empty(t, s.Fastest)
	assert.Empty(t, s.Slowest)
}

func TestStatsSingleLapFlagsNothing(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)

	s := l.Stats()

	assert.True(t, s.AllEqual)
	assert.Equal(t, []bool{false}, s.Fastest)
	assert.Equal(t, []bool{false}, s.Slowest)
	assert.False(t, s.HasAverage)
	assert.Nil(t, s.Deltas)
}

func TestStatsAllEqualFlagsNothing(t *testing.T) {
	l := lapledger.New()
	l.Record(time.Second)
	l.Record(2 * time.Second)
	l.Record(3 * time.Second)

	s := l.Stats()

	assert.True(t, s.AllEqual)
	assert.Equal(t, []bool{false, false, false}, s.Fastest)
	assert.Equal(t, []bool{false, false, false}, s.Slowest)

	// The average is still defined for two or more laps.
	require.True(t, s.HasAverage)
	assert.Equal(t, time.Second, s.Average)
	assert.Equal(t, []time.Duration{0, 0, 0}, s.Deltas)
}

func TestStatsPartialTiesFlagAllHolders(t *testing.T) {
	l := lapledger.New()
	// Splits 1000ms, 2000ms, 1000ms.
	l.Record(1000 * time.Millisecond)
	l.Record(3000 * time.Millisecond)
	l.Record(4000 * time.Millisecond)

	s := l.Stats()

	assert.False(t, s.AllEqual)
	assert.Equal(t, []bool{true, false, true}, s.Fastest)
	assert.Equal(t, []bool{false, true, false}, s.Slowest)
}

func TestStatsAverageAndDeltas(t *testing.T) {
	l := lapledger.New()
	// Splits 1s, 2s, 3s.
	l.Record(1 * time.Second)
	l.Record(3 * time.Second)
	l.Record(6 * time.Second)

	s := l.Stats()

	require.True(t, s.HasAverage)
	assert.Equal(t, 2*time.Second, s.Average)
	assert.Equal(t, []time.Duration{-time.Second, 0, time.Second}, s.Deltas)

	var sum time.Duration
	for _, d := range s.Deltas {
		sum += d
	}
	assert.Zero(t, sum)
}
