package slot_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/jaredmtdev/slot"
	"github.com/stretchr/testify/require"
)

// === payloads ===

type point struct {
	X, Y int
}

// block - a value large enough that a torn write would be visible: every cell holds the same number.
type block [64]int

func newBlock(n int) block {
	var b block
	for i := range b {
		b[i] = n
	}
	return b
}

func (b block) uniform() bool {
	for _, v := range b {
		if v != b[0] {
			return false
		}
	}
	return true
}

type tags struct {
	Names []string
	Meta  map[string]string
}

func (t tags) Clone() tags {
	out := tags{Names: append([]string(nil), t.Names...)}
	if t.Meta != nil {
		out.Meta = make(map[string]string, len(t.Meta))
		for k, v := range t.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

// === helpers ===

// poison - makes update panic while holding the lock.
func poison[T any](t *testing.T, update slot.Updater[T]) {
	t.Helper()
	require.PanicsWithValue(t, "boom", func() {
		_ = update(func(slot.Option[T]) slot.Option[T] {
			panic("boom")
		})
	})
}

// readAll - starts n readers at once and collects their results.
func readAll[T any](state *slot.State[T], n int) []slot.Option[T] {
	results := make([]slot.Option[T], n)
	start := make(chan struct{})
	wg := sync.WaitGroup{}
	for i := range n {
		wg.Go(func() {
			<-start
			results[i] = state.Read()
		})
	}
	close(start)
	wg.Wait()
	return results
}

// syncBuffer - bytes.Buffer that can be written by many goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
