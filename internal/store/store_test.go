package store

import (
	"context"
	"errors"
	"testing"
)

type stubDirectory struct {
	stores []Context
	err    error
}

func (s stubDirectory) ListStores(ctx context.Context) ([]Context, error) {
	return s.stores, s.err
}

func TestResolveByDID_MatchesStore(t *testing.T) {
	r := NewResolver(stubDirectory{stores: []Context{
		{ID: "s1", Name: "Downtown", DID: "+15550001111"},
		{ID: "s2", Name: "Mall", DID: "+15550002222"},
	}}, nil)

	got := r.ResolveByDID(context.Background(), "+15550002222")
	if got.ID != "s2" {
		t.Fatalf("expected s2, got %q", got.ID)
	}
}

func TestResolveByDID_FallsBackOnError(t *testing.T) {
	r := NewResolver(stubDirectory{err: errors.New("backend down")}, nil)

	got := r.ResolveByDID(context.Background(), "+15550001111")
	if got.ID != "default" {
		t.Fatalf("expected default store, got %q", got.ID)
	}
}

func TestResolveByDID_FallsBackOnUnknownNumber(t *testing.T) {
	r := NewResolver(stubDirectory{stores: []Context{{ID: "s1", DID: "+1"}}}, nil)

	if got := r.ResolveByDID(context.Background(), "+2"); got.ID != "default" {
		t.Fatalf("expected default store, got %q", got.ID)
	}
}

type countingBehaviorSource struct {
	calls int
	b     Behavior
	err   error
}

func (s *countingBehaviorSource) GetBehavior(ctx context.Context, storeID string) (Behavior, error) {
	s.calls++
	return s.b, s.err
}

func TestBehaviorCache_FetchesOncePerStore(t *testing.T) {
	src := &countingBehaviorSource{b: Behavior{StoreID: "s1", Greeting: "hi"}}
	c := NewBehaviorCache(src)

	for i := 0; i < 3; i++ {
		b, ok := c.Get(context.Background(), "s1")
		if !ok {
			t.Fatalf("expected hit")
		}
		if b.Greeting != "hi" {
			t.Fatalf("unexpected greeting %q", b.Greeting)
		}
	}
	if src.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", src.calls)
	}
}

func TestBehaviorCache_FailuresAreNotCached(t *testing.T) {
	src := &countingBehaviorSource{err: errors.New("down")}
	c := NewBehaviorCache(src)

	if _, ok := c.Get(context.Background(), "s1"); ok {
		t.Fatalf("expected miss on fetch failure")
	}
	src.err = nil
	src.b = Behavior{StoreID: "s1"}
	if _, ok := c.Get(context.Background(), "s1"); !ok {
		t.Fatalf("expected retry to succeed")
	}
	if src.calls != 2 {
		t.Fatalf("expected two fetches, got %d", src.calls)
	}
}

func TestBehaviorCache_Invalidate(t *testing.T) {
	src := &countingBehaviorSource{b: Behavior{StoreID: "s1"}}
	c := NewBehaviorCache(src)

	c.Get(context.Background(), "s1")
	c.Invalidate("s1")
	c.Get(context.Background(), "s1")
	if src.calls != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", src.calls)
	}
}
