package tickloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lapwatch/lapwatch/internal/clocktest"
	"github.com/lapwatch/lapwatch/internal/tickloop"
)

func TestTicksOncePerInterval(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 10*time.Millisecond)

	count := 0
	loop.Start(func() { count++ })

	clk.Advance(9 * time.Millisecond)
	assert.Zero(t, count)

	clk.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, count)

	clk.Advance(30 * time.Millisecond)
	assert.Equal(t, 4, count)
}

func TestStopEndsChain(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 10*time.Millisecond)

	count := 0
	loop.Start(func() { count++ })
	clk.Advance(10 * time.Millisecond)

	loop.Stop()
	clk.Advance(time.Second)

	assert.Equal(t, 1, count)
	assert.False(t, loop.Running())
}

func TestStopBeforeFirstTick(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 10*time.Millisecond)

	count := 0
	loop.Start(func() { count++ })
	loop.Stop()
	clk.Advance(time.Second)

	assert.Zero(t, count)
}

func TestStartReplacesChain(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 10*time.Millisecond)

	first, second := 0, 0
	loop.Start(func() { first++ })
	clk.Advance(10 * time.Millisecond)

	loop.Start(func() { second++ })
	clk.Advance(20 * time.Millisecond)

	// Only the second chain is live; no interval double-fires.
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestRestartAfterStop(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 10*time.Millisecond)

	count := 0
	loop.Start(func() { count++ })
	clk.Advance(10 * time.Millisecond)
	loop.Stop()

	loop.Start(func() { count++ })
	clk.Advance(10 * time.Millisecond)

	assert.Equal(t, 2, count)
	assert.True(t, loop.Running())
}

func TestNonPositiveIntervalUsesDefault(t *testing.T) {
	clk := clocktest.NewFakeClock()
	loop := tickloop.New(clk, 0)

	assert.Equal(t, tickloop.DefaultInterval, loop.Interval())

	count := 0
	loop.Start(func() { count++ })
	clk.Advance(tickloop.DefaultInterval)

	assert.Equal(t, 1, count)
}
