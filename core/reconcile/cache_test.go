package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mod-compat/core/plugin"
	"mod-compat/core/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCache_GetOrBuild(t *testing.T) {
	cache := NewDiffCache(10, time.Minute)
	builds := 0
	build := func() (*LobbyDiff, error) {
		builds++
		return &LobbyDiff{Published: true}, nil
	}

	first, err := cache.GetOrBuild("lobby-1", build)
	require.NoError(t, err)
	second, err := cache.GetOrBuild("lobby-1", build)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, cache.Len())
}

func TestDiffCache_ErrorsAreNotCached(t *testing.T) {
	cache := NewDiffCache(10, time.Minute)

	_, err := cache.GetOrBuild("lobby-1", func() (*LobbyDiff, error) {
		return nil, errors.New("source down")
	})
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestDiffCache_BoundedAndInvalidation(t *testing.T) {
	cache := NewDiffCache(2, 0)
	build := func() (*LobbyDiff, error) { return &LobbyDiff{}, nil }

	for _, id := range []string{"a", "b", "c"} {
		_, err := cache.GetOrBuild(id, build)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok, "least recently used entry should be evicted")

	cache.Invalidate("b")
	_, ok = cache.Get("b")
	assert.False(t, ok)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestDiffCache_Expires(t *testing.T) {
	cache := NewDiffCache(10, 20*time.Millisecond)
	_, err := cache.GetOrBuild("a", func() (*LobbyDiff, error) { return &LobbyDiff{}, nil })
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, ok := cache.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestDiffCache_SingleFlight(t *testing.T) {
	cache := NewDiffCache(10, time.Minute)
	var builds atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetOrBuild("lobby", func() (*LobbyDiff, error) {
				builds.Add(1)
				<-release
				return &LobbyDiff{}, nil
			})
			assert.NoError(t, err)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, builds.Load(), int32(2))
	assert.Equal(t, 1, cache.Len())
}

type fakeSource struct {
	mu    sync.Mutex
	meta  map[string]map[string]string
	calls int
	err   error
}

func (f *fakeSource) Metadata(_ context.Context, lobbyID string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.meta[lobbyID], nil
}

func publishedMetadata(records ...plugin.Record) map[string]string {
	meta := map[string]string{}
	wire.Publish(meta, wire.DefaultEncoder().Encode(records), "")
	return meta
}

func TestReconciler_Diff(t *testing.T) {
	reg := plugin.NewRegistry()
	require.NoError(t, reg.Register(rec("A", "1.0.0", plugin.LevelEveryone, plugin.StrictnessPatch)))

	src := &fakeSource{meta: map[string]map[string]string{
		"good":      publishedMetadata(rec("A", "1.0.0", plugin.LevelEveryone, plugin.StrictnessPatch)),
		"vanilla":   {"name": "no plugins"},
		"malformed": {wire.PageKey(0): "garbage"},
	}}
	r := NewRegistryReconciler(reg, src, NewDiffCache(10, time.Minute))
	ctx := context.Background()

	diff, err := r.Diff(ctx, "good")
	require.NoError(t, err)
	assert.True(t, diff.Published)
	assert.Equal(t, LobbyCompatible, diff.Classify())

	diff, err = r.Diff(ctx, "vanilla")
	require.NoError(t, err)
	assert.False(t, diff.Published)
	assert.Equal(t, LobbyUnknown, diff.Classify())

	diff, err = r.Diff(ctx, "malformed")
	require.NoError(t, err)
	assert.ErrorIs(t, diff.ParseError, wire.ErrMetadataParse)
	assert.Equal(t, LobbyUnknown, diff.Classify())

	// Cached
	calls := src.calls
	_, err = r.Diff(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, calls, src.calls)

	// Registry changes purge the cache.
	require.NoError(t, reg.Register(rec("A", "2.0.0", plugin.LevelEveryone, plugin.StrictnessPatch)))
	diff, err = r.Diff(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, calls+1, src.calls)
	assert.Equal(t, LobbyIncompatible, diff.Classify())
}

func TestReconciler_SourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("not reachable")}
	r := NewReconciler(plugin.NewRegistry(), src, nil)

	_, err := r.Diff(context.Background(), "any")
	assert.EqualError(t, err, "not reachable")
}
