package timefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lapwatch/lapwatch/internal/timefmt"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want timefmt.Parts
	}{
		{"zero", 0, timefmt.Parts{}},
		{"under a centisecond", 9 * time.Millisecond, timefmt.Parts{}},
		{"one centisecond", 10 * time.Millisecond, timefmt.Parts{Centis: 1}},
		{"truncates within a centi", 1009 * time.Millisecond, timefmt.Parts{Seconds: 1}},
		{"just under a second", 999 * time.Millisecond, timefmt.Parts{Centis: 99}},
		{"seconds roll into minutes", 60 * time.Second, timefmt.Parts{Minutes: 1}},
		{"just under a minute", 59*time.Second + 990*time.Millisecond, timefmt.Parts{Seconds: 59, Centis: 99}},
		{"minutes roll into hours", time.Hour, timefmt.Parts{Hours: 1}},
		{"just under an hour", 59*time.Minute + 59*time.Second, timefmt.Parts{Minutes: 59, Seconds: 59}},
		{"mixed", time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond, timefmt.Parts{Hours: 1, Minutes: 2, Seconds: 3, Centis: 45}},
		{"hours unbounded", 100 * time.Hour, timefmt.Parts{Hours: 100}},
		{"negative clamps to zero", -time.Second, timefmt.Parts{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timefmt.Split(tt.d))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00:00.00", timefmt.Format(0))
	assert.Equal(t, "00:00:01.50", timefmt.Format(1500*time.Millisecond))
	assert.Equal(t, "00:02:03.04", timefmt.Format(2*time.Minute+3*time.Second+40*time.Millisecond))
	assert.Equal(t, "12:34:56.78", timefmt.Format(12*time.Hour+34*time.Minute+56*time.Second+780*time.Millisecond))

	// The hour field widens rather than wrapping.
	assert.Equal(t, "123:00:00.00", timefmt.Format(123*time.Hour))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "00.00", timefmt.Compact(0))
	assert.Equal(t, "01.50", timefmt.Compact(1500*time.Millisecond))
	assert.Equal(t, "02:03.40", timefmt.Compact(2*time.Minute+3*time.Second+400*time.Millisecond))
	assert.Equal(t, "01:00:00.00", timefmt.Compact(time.Hour))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+00.00", timefmt.FormatDelta(0))
	assert.Equal(t, "+01.50", timefmt.FormatDelta(1500*time.Millisecond))
	assert.Equal(t, "-00.20", timefmt.FormatDelta(-200*time.Millisecond))
	assert.Equal(t, "-01:40.00", timefmt.FormatDelta(-100*time.Second))
}
