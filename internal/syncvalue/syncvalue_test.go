package syncvalue_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/jaredmtdev/slot/internal/syncvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentLoad(t *testing.T) {
	v := syncvalue.New(3)

	wg := sync.WaitGroup{}
	for range 1000 {
		wg.Go(func() {
			got, err := v.Load(nil)
			assert.NoError(t, err)
			assert.Equal(t, 3, got)
		})
	}
	wg.Wait()
}

func TestConcurrentStore(t *testing.T) {
	v := syncvalue.New(0)
	wg := sync.WaitGroup{}
	for i := range 1000 {
		wg.Go(func() {
			assert.NoError(t, v.Store(i))
		})
	}
	wg.Wait()

	got, err := v.Load(nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, 0, got)
	assert.Less(t, got, 1000)
}

func TestLoadDuplicatesUnderLock(t *testing.T) {
	v := syncvalue.New([]int{1, 2, 3})
	got, err := v.Load(func(in []int) []int {
		return append([]int(nil), in...)
	})
	require.NoError(t, err)
	got[0] = 100

	again, err := v.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, again)
}

func TestConcurrentUpdate(t *testing.T) {
	v := syncvalue.New(0)
	wg := sync.WaitGroup{}
	for range 1000 {
		wg.Go(func() {
			assert.NoError(t, v.Update(func(n int) int { return n + 1 }))
		})
	}
	wg.Wait()

	got, err := v.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
}

func TestUpdatePanicPoisons(t *testing.T) {
	v := syncvalue.New(7)
	assert.PanicsWithValue(t, "boom", func() {
		_ = v.Update(func(int) int { panic("boom") })
	})
	assert.True(t, v.Poisoned())

	_, err := v.Load(nil)
	require.ErrorIs(t, err, syncvalue.ErrPoisoned)
	require.ErrorIs(t, v.Store(1), syncvalue.ErrPoisoned)
	require.ErrorIs(t, v.Update(func(n int) int { return n }), syncvalue.ErrPoisoned)
}

func TestUpdateGoexitPoisons(t *testing.T) {
	v := syncvalue.New(7)
	wg := sync.WaitGroup{}
	wg.Go(func() {
		_ = v.Update(func(int) int {
			runtime.Goexit()
			return 0
		})
	})
	wg.Wait()
	assert.True(t, v.Poisoned())
}

func TestUnpoisonedByDefault(t *testing.T) {
	v := syncvalue.New("a")
	assert.False(t, v.Poisoned())
	require.NoError(t, v.Update(func(s string) string { return s + "b" }))
	assert.False(t, v.Poisoned())
	got, err := v.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}
