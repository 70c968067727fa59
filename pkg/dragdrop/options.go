package dragdrop

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultActiveClass    = "dragging"
	defaultTransferFormat = "text/plain"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithOnDragStart registers the callback fired when a gesture starts.
func WithOnDragStart(fn func(item any, index int)) Option {
	return func(a *Adapter) {
		a.onDragStart = fn
	}
}

// WithOnDragOver registers the callback fired while hovering a drop target.
func WithOnDragOver(fn func()) Option {
	return func(a *Adapter) {
		a.onDragOver = fn
	}
}

// WithOnDrop registers the callback fired with the resolved source and target
// indices.
func WithOnDrop(fn func(source, target int)) Option {
	return func(a *Adapter) {
		a.onDrop = fn
	}
}

// WithOnDragEnd registers the callback fired when a gesture ends, with or
// without a drop.
func WithOnDragEnd(fn func()) Option {
	return func(a *Adapter) {
		a.onDragEnd = fn
	}
}

// WithActiveClass overrides the CSS class applied to the dragged element.
func WithActiveClass(class string) Option {
	return func(a *Adapter) {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			a.activeClass = trimmed
		}
	}
}

// WithTransferFormat overrides the transfer channel key holding the source
// index.
func WithTransferFormat(format string) Option {
	return func(a *Adapter) {
		if trimmed := strings.TrimSpace(format); trimmed != "" {
			a.transferFormat = trimmed
		}
	}
}

// WithLogger attaches a logger for gesture tracing at debug level.
func WithLogger(entry *logrus.Entry) Option {
	return func(a *Adapter) {
		if entry != nil {
			a.log = entry
		}
	}
}

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
