package bearer

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetEvict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	entry := Entry{Principal: Principal{Kind: KindUser, ID: "u1"}, IssuedAt: time.Now()}
	require.NoError(t, s.Put(ctx, "tok", entry))

	got, ok, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entry, got)

	_, ok, err = s.Get(ctx, "unknown")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, _ = s.Get(ctx, "")
	require.False(t, ok)

	require.NoError(t, s.Evict(ctx, "tok"))
	require.NoError(t, s.Evict(ctx, "tok"), "double evict is fine")
	_, ok, _ = s.Get(ctx, "tok")
	require.False(t, ok)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()

	require.NoError(t, a.Put(ctx, "tok", Entry{Principal: Principal{Kind: KindAdmin, ID: "a1"}}))
	_, ok, _ := b.Get(ctx, "tok")
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return base }

	require.NoError(t, s.Put(ctx, "forever", Entry{Principal: Principal{Kind: KindUser, ID: "u1"}}))
	require.NoError(t, s.Put(ctx, "short", Entry{
		Principal: Principal{Kind: KindUser, ID: "u2"},
		ExpiresAt: base.Add(time.Minute),
	}))

	_, ok, _ := s.Get(ctx, "short")
	require.True(t, ok)

	s.now = func() time.Time { return base.Add(time.Minute) }
	_, ok, _ = s.Get(ctx, "short")
	require.False(t, ok, "expiry is exclusive")

	removed, err := s.EvictExpired(ctx, base.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, 1, s.Len())

	_, ok, _ = s.Get(ctx, "forever")
	require.True(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			_ = s.Put(ctx, tok, Entry{Principal: Principal{Kind: KindUser, ID: tok}})
			got, ok, _ := s.Get(ctx, tok)
			if ok && got.Principal.ID != tok {
				t.Errorf("token %s resolved to %s", tok, got.Principal.ID)
			}
			_ = s.Evict(ctx, tok)
		}()
	}
	wg.Wait()
	require.Zero(t, s.Len())
}

func TestMemoryStoreWithClock(t *testing.T) {
	ctx := context.Background()
	pinned := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStoreWithClock(func() time.Time { return pinned })

	require.NoError(t, s.Put(ctx, "tok", Entry{IssuedAt: pinned, ExpiresAt: pinned.Add(time.Hour)}))
	_, ok, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok, "expiry is judged by the store's clock, not the wall clock")
}
