package slot

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// slotOpts - configures behavior of a slot.
type slotOpts struct {
	name          string
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	clone         any
	cloneSet      bool
}

func (so *slotOpts) validate() error {
	if so.name == "" {
		return newInvalidNameError(so.name)
	}
	if so.logger == nil {
		return errNilLogger
	}
	if so.meterProvider == nil {
		return errNilMeterProvider
	}
	if so.cloneSet && so.clone == nil {
		return errNilClone
	}
	return nil
}

// Opt - options used to configure New and NewWithUpdate.
type Opt func(so *slotOpts)

// WithName - set the name reported in logs and metrics.
//
// Uses "slot" by default.
func WithName(name string) Opt {
	return func(so *slotOpts) {
		so.name = name
	}
}

// WithLogger - set the logger used to report lock failures.
//
// Discards all logs by default.
func WithLogger(logger *slog.Logger) Opt {
	return func(so *slotOpts) {
		so.logger = logger
	}
}

// WithMeterProvider - set the OpenTelemetry MeterProvider used to count reads, writes and lock failures.
//
// Uses a no-op provider by default.
func WithMeterProvider(mp metric.MeterProvider) Opt {
	return func(so *slotOpts) {
		so.meterProvider = mp
	}
}

// WithClone - set the function Read uses to duplicate the stored value.
// T must match the slot's type.
//
// By default Read calls Clone when T implements Cloner[T] and copies the value otherwise.
func WithClone[T any](clone func(T) T) Opt {
	return func(so *slotOpts) {
		so.cloneSet = true
		so.clone = nil
		if clone != nil {
			so.clone = clone
		}
	}
}

func newSlotOpts(opts []Opt) *slotOpts {
	so := &slotOpts{
		name:          "slot",
		logger:        slog.New(slog.DiscardHandler),
		meterProvider: noop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(so)
	}
	return so
}
