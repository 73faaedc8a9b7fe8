// Package syncvalue - a value guarded by a reader/writer lock that can be poisoned.
package syncvalue

import (
	"errors"
	"sync"
)

// ErrPoisoned - a writer stopped abnormally while holding the lock.
var ErrPoisoned = errors.New("lock poisoned")

// Value - allow storing and loading of values while guarding against race conditions.
//
// If the function passed to Update panics (or calls runtime.Goexit) the value is poisoned.
// Every later Load, Store and Update reports ErrPoisoned.
type Value[T any] struct {
	mu       sync.RWMutex
	value    T
	poisoned bool
}

// New - creates a Value holding v.
func New[T any](v T) *Value[T] {
	return &Value[T]{value: v}
}

// Load - loads current value.
// dup (if not nil) runs while the read lock is held so the caller gets an independent copy.
func (l *Value[T]) Load(dup func(T) T) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.poisoned {
		var v T
		return v, ErrPoisoned
	}
	if dup == nil {
		return l.value, nil
	}
	return dup(l.value), nil
}

// Store - stores new value.
func (l *Value[T]) Store(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.poisoned {
		return ErrPoisoned
	}
	l.value = v
	return nil
}

// Update - replaces the value with fn(current) inside one exclusive section.
func (l *Value[T]) Update(fn func(T) T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.poisoned {
		return ErrPoisoned
	}
	done := false
	defer func() {
		if !done {
			l.poisoned = true
		}
	}()
	l.value = fn(l.value)
	done = true
	return nil
}

// Poisoned - reports whether a writer stopped abnormally while holding the lock.
func (l *Value[T]) Poisoned() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.poisoned
}
