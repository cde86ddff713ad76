// Package observability provides the logger used across the app.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lapwatch/lapwatch/internal/sentry_ext"
)

type Tags map[string]string

// NewTags creates a new Tags from a mix of slog.Attr and a string and its
// corresponding value. It ignores incomplete pairs and other types.
func NewTags(args ...any) Tags {
	var done bool
	tags := Tags{}
	for len(args) > 0 && !done {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				done = true
				break
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

type CoreLoggerParams struct {
	Sentry *sentry_ext.Client
	Tags   Tags
}

// CoreLogger is a slog.Logger that can forward errors and warnings to
// Sentry, annotated with the logger's tags.
type CoreLogger struct {
	*slog.Logger
	baseTags Tags
	sentry   *sentry_ext.Client
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:   logger.With(args...),
		sentry:   params.Sentry,
		baseTags: tags,
	}
}

// withArgs applies the given args to the logger's base tags.
//
// Merges the given args with the logger's base tags and returns the
// result. The logger's base tags take precedence over args.
func (cl *CoreLogger) withArgs(args ...any) Tags {
	tags := NewTags(args...)
	for key, value := range cl.baseTags {
		tags[key] = value
	}
	return tags
}

// With returns a derived logger that includes the given tags in each message.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	return &CoreLogger{
		Logger:   cl.Logger.With(args...),
		baseTags: cl.baseTags,
		sentry:   cl.sentry,
	}
}

// CaptureError logs an error and sends it to Sentry.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	cl.Error(err.Error(), args...)

	if cl.sentry != nil {
		cl.sentry.CaptureException(err, cl.withArgs(args...))
	}
}

// CaptureWarn logs a warning and sends it to Sentry.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)

	if cl.sentry != nil {
		cl.sentry.CaptureMessage(msg, cl.withArgs(args...))
	}
}

// Reraise logs a recovered panic and panics again.
//
// A non-error panic value is wrapped in an error first. Meant to run
// deferred at goroutine entry points.
func (cl *CoreLogger) Reraise(args ...any) {
	val := recover()
	if val == nil {
		return
	}

	err, ok := val.(error)
	if !ok {
		err = fmt.Errorf("%v", val)
	}
	cl.CaptureError(err, args...)
	cl.sentry.Flush(2 * time.Second)

	panic(err)
}

// GetTags returns the tags associated with the logger.
//
// Used for testing.
func (cl *CoreLogger) GetTags() Tags {
	return cl.baseTags
}

// GetSentry returns the logger's Sentry client.
//
// Used for testing.
func (cl *CoreLogger) GetSentry() *sentry_ext.Client {
	return cl.sentry
}

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		nil,
	)
}
