// Package logging contains logrus extensions.
package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const flushTimeout = 2 * time.Second

// SentryHook forwards entries of the configured levels to sentry.
type SentryHook struct {
	levels []logrus.Level
}

// NewSentryHook initializes the sentry client and returns the hook.
func NewSentryHook(opts sentry.ClientOptions, levels ...logrus.Level) (*SentryHook, error) {
	if err := sentry.Init(opts); err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	return &SentryHook{levels: levels}, nil
}

// Levels ...
func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *SentryHook) Fire(e *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Message = e.Message
	event.Timestamp = e.Time
	event.Level = toSentryLevel(e.Level)

	for k, v := range e.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = fmt.Sprintf("%s: %s", e.Message, err)
				continue
			}
		}
		event.Extra[k] = v
	}

	sentry.CaptureEvent(event)

	if e.Level <= logrus.FatalLevel {
		sentry.Flush(flushTimeout)
	}

	return nil
}

func toSentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sentry.LevelDebug
	default:
		return sentry.LevelInfo
	}
}
