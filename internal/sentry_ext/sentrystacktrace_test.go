package sentry_ext_test

import (
	"reflect"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/sentry_ext"
)

// Builds frames using the real package paths via reflection, so this
// fails if the hard-coded prefix in shouldHideFrame ever goes stale.
func TestRemoveLoggerFrames(t *testing.T) {
	loggerPath := reflect.TypeFor[observability.CoreLogger]().PkgPath()
	clientPath := reflect.TypeFor[sentry_ext.Client]().PkgPath()

	event := &sentry.Event{
		Exception: []sentry.Exception{{
			Stacktrace: &sentry.Stacktrace{
				Frames: []sentry.Frame{
					{Module: "main", Function: "main"},
					{Module: "github.com/lapwatch/lapwatch/internal/stopwatch", Function: "persistLaps"},
					{Module: loggerPath, Function: "(*CoreLogger).CaptureError"},
					{Module: clientPath, Function: "(*Client).CaptureException"},
				},
			},
		}},
	}

	got := sentry_ext.RemoveLoggerFrames(event, nil)

	frames := got.Exception[0].Stacktrace.Frames
	require.Len(t, frames, 2)
	assert.Equal(t, "persistLaps", frames[1].Function,
		"the caller of the logger should be the top frame")
}

func TestRemoveLoggerFramesLeavesOtherEventsAlone(t *testing.T) {
	event := &sentry.Event{
		Exception: []sentry.Exception{
			{Stacktrace: nil},
			{Stacktrace: &sentry.Stacktrace{
				Frames: []sentry.Frame{
					{Module: "main", Function: "main"},
				},
			}},
		},
	}

	got := sentry_ext.RemoveLoggerFrames(event, nil)

	require.NotNil(t, got)
	assert.Len(t, got.Exception[1].Stacktrace.Frames, 1)
}
