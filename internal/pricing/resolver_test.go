package pricing

import (
	"context"
	"errors"
	"testing"
)

func testSource() *MemorySource {
	return &MemorySource{Lists: map[string][]CatalogEntry{
		"s1": {
			{DeviceModelName: "iPhone 13", RepairTypeName: "Glass_LCD", Price: 129.99},
			{DeviceModelName: "iPhone 14", RepairTypeName: "Battery Replacement", Price: 89.00},
			{DeviceModelName: "PS5", RepairTypeName: "HDMI Port", Price: 149.50},
		},
	}}
}

func TestResolve_DirectAndSynonymMatch(t *testing.T) {
	r := NewResolver(testSource(), nil)

	// "screen" resolves via synonym table to glass_lcd.
	q, ok := r.Resolve(context.Background(), "s1", "phone", "iPhone 13", "screen")
	if !ok {
		t.Fatalf("expected quote")
	}
	if q.Amount != 129.99 || q.Currency != "USD" {
		t.Fatalf("unexpected quote: %+v", q)
	}

	// "battery" matches the repair type directly.
	q, ok = r.Resolve(context.Background(), "s1", "phone", "iPhone 14", "battery")
	if !ok || q.Amount != 89.00 {
		t.Fatalf("expected battery quote, got %+v ok=%v", q, ok)
	}
}

func TestResolve_ModelMatchIsCaseInsensitiveBothWays(t *testing.T) {
	r := NewResolver(testSource(), nil)

	if _, ok := r.Resolve(context.Background(), "s1", "phone", "IPHONE 13", "screen"); !ok {
		t.Fatalf("expected case-insensitive match")
	}
	// Spoken model is longer than the catalog's name.
	if _, ok := r.Resolve(context.Background(), "s1", "phone", "Apple iPhone 13", "screen"); !ok {
		t.Fatalf("expected containment match in either direction")
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver(testSource(), nil)

	if _, ok := r.Resolve(context.Background(), "s1", "phone", "iPhone 13", "hdmi"); ok {
		t.Fatalf("expected no quote for mismatched issue")
	}
	if _, ok := r.Resolve(context.Background(), "s2", "phone", "iPhone 13", "screen"); ok {
		t.Fatalf("expected no quote for empty store")
	}
}

func TestResolve_CatalogFailureResolvesToNotFound(t *testing.T) {
	r := NewResolver(&MemorySource{Err: errors.New("backend down")}, nil)

	if _, ok := r.Resolve(context.Background(), "s1", "phone", "iPhone 13", "screen"); ok {
		t.Fatalf("expected not-found on catalog failure")
	}
}

func TestResolve_RequiresModelAndIssue(t *testing.T) {
	r := NewResolver(testSource(), nil)

	if _, ok := r.Resolve(context.Background(), "s1", "phone", "", "screen"); ok {
		t.Fatalf("expected not-found without model")
	}
	if _, ok := r.Resolve(context.Background(), "s1", "phone", "iPhone 13", ""); ok {
		t.Fatalf("expected not-found without issue")
	}
}
