/*
Package slot shares a single optional value between goroutines.

New returns a read handle and a setter bound to the same storage:

	state, set := slot.New(slot.Some(42))
	go func() {
		v, ok := state.Read().Get()
		...
	}()
	if err := set(slot.None[int]()); err != nil {
		// the lock is poisoned
	}

Any number of goroutines may call Read at once; a Setter call waits for them and excludes all other access while it writes.
Read returns a copy of the value (see Cloner and WithClone), so callers never hold the lock after it returns.

Reads and writes do not take a context. To bound how long a caller waits, run the call in its own goroutine and select on a timer.

A slot only fails when its lock is poisoned, which happens when the fn passed to an Updater panics.
Writers then get an error wrapping ErrLockFailure, while Read keeps returning None.
*/
package slot
