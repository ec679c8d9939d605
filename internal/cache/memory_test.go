package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(10)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get = %q, %v; want \"v\", true", got, ok)
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(10)

	if err := c.Set("k", "v", time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestMemoryCache_BoundedSize(t *testing.T) {
	c := NewMemoryCache(5)
	for i := 0; i < 20; i++ {
		if err := c.Set(fmt.Sprintf("k%d", i), "v", 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if n := len(c.entries); n > 5 {
		t.Errorf("cache grew to %d entries, cap is 5", n)
	}
}
