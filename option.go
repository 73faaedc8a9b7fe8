package slot

import "fmt"

// Option - either holds a value (Some) or holds nothing (None).
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some - an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None - an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get - returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse - returns the value if present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
