// Package telemetry registers the OpenTelemetry instruments recorded by slots.
//
// Instruments (all Int64Counter):
//
//	slot.reads          - every Read, labelled with slot.name and result
//	slot.writes         - every Set/Update, labelled with slot.name and result
//	slot.lock_failures  - reads and writes that hit a poisoned lock, labelled with operation
//
// A no-op MeterProvider is used unless the caller passes one in.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScopeName - instrumentation scope used for the slot meter.
const ScopeName = "github.com/jaredmtdev/slot"

// Attribute keys for metric labels.
var (
	AttrSlotName  = attribute.Key("slot.name")
	AttrResult    = attribute.Key("result")
	AttrOperation = attribute.Key("operation")
)

// Result values.
const (
	ResultOK          = "ok"
	ResultLockFailure = "lock_failure"
	ResultPanic       = "panic"
)

// Operation values.
const (
	OperationRead  = "read"
	OperationWrite = "write"
)

// Metrics - pre-registered slot instruments.
type Metrics struct {
	Reads        metric.Int64Counter
	Writes       metric.Int64Counter
	LockFailures metric.Int64Counter
}

// NewMetrics - creates all instruments using the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(ScopeName)

	reads, err := meter.Int64Counter(
		"slot.reads",
		metric.WithDescription("Number of reads from a slot"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slot.reads: %w", err)
	}

	writes, err := meter.Int64Counter(
		"slot.writes",
		metric.WithDescription("Number of writes to a slot"),
		metric.WithUnit("{write}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slot.writes: %w", err)
	}

	lockFailures, err := meter.Int64Counter(
		"slot.lock_failures",
		metric.WithDescription("Number of slot operations that found the lock poisoned"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slot.lock_failures: %w", err)
	}

	return &Metrics{
		Reads:        reads,
		Writes:       writes,
		LockFailures: lockFailures,
	}, nil
}

// RecordRead - counts one read with the given result.
func (m *Metrics) RecordRead(ctx context.Context, name, result string) {
	m.Reads.Add(ctx, 1, metric.WithAttributes(AttrSlotName.String(name), AttrResult.String(result)))
	if result == ResultLockFailure {
		m.recordLockFailure(ctx, name, OperationRead)
	}
}

// RecordWrite - counts one write with the given result.
func (m *Metrics) RecordWrite(ctx context.Context, name, result string) {
	m.Writes.Add(ctx, 1, metric.WithAttributes(AttrSlotName.String(name), AttrResult.String(result)))
	if result == ResultLockFailure {
		m.recordLockFailure(ctx, name, OperationWrite)
	}
}

func (m *Metrics) recordLockFailure(ctx context.Context, name, operation string) {
	m.LockFailures.Add(ctx, 1, metric.WithAttributes(AttrSlotName.String(name), AttrOperation.String(operation)))
}
