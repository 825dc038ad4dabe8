package cache

import (
	"context"
	"testing"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set(ctx, "split-1", `{"transfers":[]}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get(ctx, "split-1")
	if !ok || val != `{"transfers":[]}` {
		t.Errorf("Get = (%q, %v), want cached value", val, ok)
	}

	if err := c.Set(ctx, "split-1", "replaced"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if val, _ := c.Get(ctx, "split-1"); val != "replaced" {
		t.Errorf("expected replacement, got %q", val)
	}

	if err := c.Delete(ctx, "split-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := c.Get(ctx, "split-1"); ok {
		t.Error("expected miss after delete")
	}

	// Deleting an absent key is not an error.
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}
