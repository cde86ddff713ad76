// Package sentry_ext reports errors to Sentry, suppressing repeats.
package sentry_ext

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

type Params struct {
	// Disabled turns the client into a no-op regardless of the DSN.
	Disabled bool
	// DSN is the Data Source Name for the sentry client.
	// When empty, events are not sent anywhere.
	DSN string
	// AttachStacktrace is a flag to attach a stacktrace to sentry events.
	AttachStacktrace bool
	// Release is the version of the application.
	Release string
	// Environment is the environment the application is running in.
	Environment string
	// LRUSize is the size of the recent-error cache.
	LRUSize int
}

// Client deduplicates and forwards errors to Sentry.
//
// All methods are safe on a nil receiver, which behaves like a disabled
// client.
type Client struct {
	disabled bool

	// recent tracks errors sent recently so repeats are not re-sent.
	recent *cache
}

// New initializes the sentry client.
//
// If the DSN is not set, events are captured but not sent anywhere,
// which is how tests observe them.
func New(params Params) *Client {
	if params.Disabled {
		return &Client{disabled: true}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.DSN,
		AttachStacktrace: params.AttachStacktrace,
		Release:          params.Release,
		Environment:      params.Environment,
		BeforeSend:       RemoveLoggerFrames,
	}); err != nil {
		slog.Error("sentry_ext: failed to initialize sentry", "err", err)
		return &Client{disabled: true}
	}

	if params.DSN == "" {
		slog.Debug("sentry_ext: sentry is disabled, no DSN provided")
	} else {
		slog.Debug("sentry_ext: sentry is enabled", "dsn", params.DSN)
	}

	recent, err := newCache(params.LRUSize)
	if err != nil {
		slog.Error("sentry_ext: failed to create cache", "err", err)
		return &Client{disabled: true}
	}

	return &Client{recent: recent}
}

// CaptureException sends an error to sentry as an error level event,
// enriched with the given tags. Errors seen recently are skipped.
func (c *Client) CaptureException(err error, tags map[string]string) {
	if c == nil || c.disabled {
		return
	}
	if !c.recent.shouldCapture(err) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
	localHub.CaptureException(err)
}

// CaptureMessage sends a non-error message to sentry as an info level
// event, enriched with the given tags.
func (c *Client) CaptureMessage(msg string, tags map[string]string) {
	if c == nil || c.disabled {
		return
	}
	if !c.recent.shouldCapture(fmt.Errorf("%s", msg)) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
	localHub.CaptureMessage(msg)
}

// Flush waits for buffered events to be sent, up to the timeout.
func (c *Client) Flush(timeout time.Duration) bool {
	if c == nil || c.disabled {
		return true
	}
	return sentry.CurrentHub().Flush(timeout)
}
