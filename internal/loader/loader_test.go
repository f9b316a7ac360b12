package loader

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) (*Loader[string], *gatedInit, *MemoryPublisher) {
	t.Helper()
	g := newGatedInit()
	pub := NewMemoryPublisher()
	return New(NewTable(g.fn, pub), pub), g, pub
}

func TestLoader_RequestResetsToLoading(t *testing.T) {
	l, g, _ := newTestLoader(t)

	st := l.Request("1.0")
	assert.Equal(t, "1.0", st.Key)
	assert.True(t, st.Loading)
	assert.False(t, st.Ready())
	assert.Empty(t, st.Handle)

	g.release("1.0", nil)
	st, err := l.Wait(testCtx(t))
	require.NoError(t, err)
	assert.True(t, st.Ready())
	assert.False(t, st.Loading)
	assert.Equal(t, "handle-1.0", st.Handle)
}

func TestLoader_SameKeyIsNoop(t *testing.T) {
	l, g, pub := newTestLoader(t)
	l.Request("1.0")
	l.Request("1.0")
	g.release("1.0", nil)
	_, err := l.Wait(testCtx(t))
	require.NoError(t, err)

	st := l.Request("1.0")
	assert.True(t, st.Ready())
	assert.Equal(t, 1, pub.Count(EventRequest))
	assert.Equal(t, 1, g.count("1.0"))
}

func TestLoader_StaleCompletionIsSuppressed(t *testing.T) {
	l, g, pub := newTestLoader(t)

	l.Request("A")
	st := l.Request("B")
	assert.Equal(t, "B", st.Key)
	assert.True(t, st.Loading)

	g.release("A", nil)
	waitFor(t, func() bool { return l.StaleCompletions() == 1 })

	st = l.Current()
	assert.Equal(t, "B", st.Key)
	assert.True(t, st.Loading)
	assert.Empty(t, st.Handle)
	assert.Equal(t, 1, pub.Count(EventStaleCompletion))

	g.release("B", nil)
	st, err := l.Wait(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "B", st.Key)
	assert.Equal(t, "handle-B", st.Handle)
}

func TestLoader_StaleFailureIsSuppressed(t *testing.T) {
	l, g, _ := newTestLoader(t)
	l.Request("A")
	g.release("B", nil)
	l.Request("B")
	_, err := l.Wait(testCtx(t))
	require.NoError(t, err)

	g.release("A", errBoom)
	waitFor(t, func() bool { return l.StaleCompletions() == 1 })
	st := l.Current()
	assert.Equal(t, "B", st.Key)
	assert.True(t, st.Ready())
	assert.NoError(t, st.Err)
}

func TestLoader_FailureIsStickyAndInspectable(t *testing.T) {
	l, g, _ := newTestLoader(t)
	g.release("bad", errBoom)
	g.release("ok", nil)

	l.Request("bad")
	st, err := l.Wait(testCtx(t))
	require.NoError(t, err)
	assert.False(t, st.Loading)
	assert.False(t, st.Ready())
	assert.Empty(t, st.Handle)
	assert.True(t, st.Failed())
	assert.ErrorIs(t, st.Err, errBoom)

	l.Request("ok")
	st = l.Request("bad")
	assert.False(t, st.Loading)
	assert.True(t, st.Failed())
	assert.Empty(t, st.Handle)
	assert.Equal(t, 1, g.count("bad"))
}

func TestLoader_SwitchBackReusesHandle(t *testing.T) {
	l, g, _ := newTestLoader(t)
	g.release("A", nil)
	l.Request("A")
	_, err := l.Wait(testCtx(t))
	require.NoError(t, err)

	l.Request("B")
	st := l.Request("A")
	assert.False(t, st.Loading)
	assert.True(t, st.Ready())
	assert.Equal(t, "handle-A", st.Handle)
	assert.Equal(t, 1, g.count("A"))

	g.release("B", nil)
	waitFor(t, func() bool { return l.StaleCompletions() == 1 })
	assert.Equal(t, "A", l.Current().Key)
}

func TestLoader_IndependentKeysLoadIndependently(t *testing.T) {
	g := newGatedInit()
	tbl := NewTable(g.fn, nil)
	la := New(tbl, nil)
	lb := New(tbl, nil)

	la.Request("A")
	lb.Request("B")
	g.release("B", nil)
	g.release("A", nil)

	sa, err := la.Wait(testCtx(t))
	require.NoError(t, err)
	sb, err := lb.Wait(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "handle-A", sa.Handle)
	assert.Equal(t, "handle-B", sb.Handle)
	assert.Equal(t, 1, g.count("A"))
	assert.Equal(t, 1, g.count("B"))
}

func TestLoader_SubscribeSeesOrderedTransitions(t *testing.T) {
	l, g, _ := newTestLoader(t)
	var mu sync.Mutex
	var seen []State[string]
	cancel := l.Subscribe(func(s State[string]) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})
	defer cancel()

	l.Request("A")
	l.Request("B")
	g.release("B", nil)
	_, err := l.Wait(testCtx(t))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 3)
	assert.Equal(t, "A", seen[0].Key)
	assert.True(t, seen[0].Loading)
	assert.Equal(t, "B", seen[1].Key)
	assert.True(t, seen[1].Loading)
	assert.Equal(t, "B", seen[2].Key)
	assert.True(t, seen[2].Ready())
}

func TestLoader_WaitHonorsContext(t *testing.T) {
	l, _, _ := newTestLoader(t)
	l.Request("slow")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st, err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, st.Loading)
	assert.Equal(t, "slow", st.Key)
}

func TestLoader_ConcurrentRequestsConverge(t *testing.T) {
	l, g, _ := newTestLoader(t)
	keys := []string{"A", "B", "C", "D"}
	for _, k := range keys {
		g.release(k, nil)
	}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Request(keys[i%len(keys)])
		}(i)
	}
	wg.Wait()
	st, err := l.Wait(testCtx(t))
	require.NoError(t, err)
	assert.True(t, st.Ready())
	assert.Equal(t, "handle-"+st.Key, st.Handle)
	for _, k := range keys {
		assert.LessOrEqual(t, g.count(k), 1)
	}
}
