package slot

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeMismatch - a value's dynamic type does not match the slot's type.
	ErrTypeMismatch = errors.New("given object has different type")
	// ErrLockFailure - the slot's lock cannot be acquired because a previous writer stopped while holding it.
	ErrLockFailure = errors.New("lock error")

	errInvalidName      = errors.New("slot name must not be empty")
	errNilLogger        = errors.New("logger must not be nil")
	errNilMeterProvider = errors.New("meter provider must not be nil")
	errNilClone         = errors.New("clone func must not be nil")
)

func newTypeMismatchError(want reflect.Type, got any) error {
	return fmt.Errorf("%w. want: %v got: %T", ErrTypeMismatch, want, got)
}

func newLockFailureError(msg string) error {
	return fmt.Errorf("%w: %s", ErrLockFailure, msg)
}

func newInvalidNameError(name string) error {
	return fmt.Errorf("%w. name: %q", errInvalidName, name)
}
