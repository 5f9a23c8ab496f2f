package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, paths []string, debounce time.Duration, calls *atomic.Int32) *Watcher {
	t.Helper()
	w, err := New(paths, debounce, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	return w
}

func TestWatcher_RebuildsOnWatchedFileChange(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(logo, []byte("<svg/>"), 0o600))

	var calls atomic.Int32
	startWatcher(t, []string{logo}, 20*time.Millisecond, &calls)

	require.NoError(t, os.WriteFile(logo, []byte("<svg>v2</svg>"), 0o600))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(logo, []byte("<svg/>"), 0o600))

	var calls atomic.Int32
	startWatcher(t, []string{logo}, 20*time.Millisecond, &calls)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(logo, []byte("<svg/>"), 0o600))

	var calls atomic.Int32
	startWatcher(t, []string{logo}, 250*time.Millisecond, &calls)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(logo, []byte{byte('a' + i)}, 0o600))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "site.yaml")}, 0, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StopWaitsForInFlightRebuild(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.svg")
	require.NoError(t, os.WriteFile(logo, []byte("<svg/>"), 0o600))

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	var once sync.Once
	w, err := New([]string{logo}, 10*time.Millisecond, func(context.Context) error {
		once.Do(func() { close(started) })
		<-release
		finished.Store(true)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(logo, []byte("<svg>v2</svg>"), 0o600))
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild did not start")
	}

	stopped := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a rebuild was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after rebuild finished")
	}
	assert.True(t, finished.Load())
}
