package slot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/jaredmtdev/slot/internal/syncvalue"
	"github.com/jaredmtdev/slot/internal/telemetry"
)

// Cloner - implemented by types that need a deep copy when read from a slot.
type Cloner[T any] interface {
	Clone() T
}

// State - a handle to a slot's shared storage.
// Copy the pointer to hand the slot to more readers.
type State[T any] struct {
	value   *syncvalue.Value[Option[T]]
	clone   func(T) T
	name    string
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Setter - replaces the whole content of the slot it was created with.
// Passing None clears the slot.
//
// Returns an error wrapping ErrLockFailure if the slot's lock is poisoned.
type Setter[T any] func(Option[T]) error

// Updater - replaces the content of the slot with fn(current) inside one exclusive section.
//
// If fn panics, the slot's lock is poisoned and the panic is re-raised.
// From then on every Setter and Updater call fails with ErrLockFailure and every Read returns None.
type Updater[T any] func(fn func(Option[T]) Option[T]) error

// New - creates a slot holding initial and returns a read handle plus the setter for it.
//
// Panics if any option is invalid.
func New[T any](initial Option[T], opts ...Opt) (*State[T], Setter[T]) {
	s := newState(initial, opts)
	return s, s.set
}

// NewWithUpdate - same as New but also returns an Updater for read-modify-write changes.
func NewWithUpdate[T any](initial Option[T], opts ...Opt) (*State[T], Setter[T], Updater[T]) {
	s := newState(initial, opts)
	return s, s.set, s.update
}

func newState[T any](initial Option[T], opts []Opt) *State[T] {
	so := newSlotOpts(opts)
	if err := so.validate(); err != nil {
		panic(err)
	}

	clone := cloneValue[T]
	if so.clone != nil {
		fn, ok := so.clone.(func(T) T)
		if !ok {
			panic(newTypeMismatchError(reflect.TypeFor[func(T) T](), so.clone))
		}
		clone = fn
	}

	metrics, err := telemetry.NewMetrics(so.meterProvider)
	if err != nil {
		panic(fmt.Errorf("slot %q: %w", so.name, err))
	}

	return &State[T]{
		value:   syncvalue.New(initial),
		clone:   clone,
		name:    so.name,
		logger:  so.logger,
		metrics: metrics,
	}
}

// cloneValue - default duplication: Clone for Cloner types, plain copy otherwise.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func (s *State[T]) duplicate(o Option[T]) Option[T] {
	v, ok := o.Get()
	if !ok {
		return o
	}
	return Some(s.clone(v))
}

// Read - returns a copy of the slot's content.
//
// Read never reports an error: if the lock is poisoned it returns None.
// Use IsPoisoned to tell a poisoned slot from an empty one.
func (s *State[T]) Read() Option[T] {
	ctx := context.Background()
	v, err := s.value.Load(s.duplicate)
	if err != nil {
		s.metrics.RecordRead(ctx, s.name, telemetry.ResultLockFailure)
		s.logger.WarnContext(ctx, "slot read on poisoned lock, returning no value",
			slog.String("slot", s.name),
			slog.Any("error", err),
		)
		return None[T]()
	}
	s.metrics.RecordRead(ctx, s.name, telemetry.ResultOK)
	return v
}

// IsPoisoned - reports whether an Updater panicked while holding the slot's lock.
func (s *State[T]) IsPoisoned() bool {
	return s.value.Poisoned()
}

func (s *State[T]) set(v Option[T]) error {
	return s.writeResult(context.Background(), s.value.Store(v))
}

func (s *State[T]) update(fn func(Option[T]) Option[T]) error {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordWrite(ctx, s.name, telemetry.ResultPanic)
			s.logger.ErrorContext(ctx, "slot update panicked, lock poisoned",
				slog.String("slot", s.name),
				slog.Any("panic", r),
			)
			panic(r)
		}
	}()
	return s.writeResult(ctx, s.value.Update(fn))
}

func (s *State[T]) writeResult(ctx context.Context, err error) error {
	if err == nil {
		s.metrics.RecordWrite(ctx, s.name, telemetry.ResultOK)
		return nil
	}
	s.metrics.RecordWrite(ctx, s.name, telemetry.ResultLockFailure)
	s.logger.WarnContext(ctx, "slot write rejected",
		slog.String("slot", s.name),
		slog.Any("error", err),
	)
	if errors.Is(err, syncvalue.ErrPoisoned) {
		return newLockFailureError(err.Error())
	}
	return err
}

// SetAny - sets the slot from a dynamically typed value.
//
// Accepts nil (clears), Option[T], T, or *T (a nil pointer clears).
// Any other type returns an error wrapping ErrTypeMismatch and leaves the slot untouched.
func (set Setter[T]) SetAny(v any) error {
	switch x := v.(type) {
	case nil:
		return set(None[T]())
	case Option[T]:
		return set(x)
	case T:
		return set(Some(x))
	case *T:
		if x == nil {
			return set(None[T]())
		}
		return set(Some(*x))
	default:
		return newTypeMismatchError(reflect.TypeFor[T](), v)
	}
}
