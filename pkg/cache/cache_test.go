package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New[string, int](time.Minute)
	defer c.Close()

	if _, ok := c.Get("missing"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("a", 1, 0)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("got (%v, %v), want (1, true)", v, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("len=%d", c.Len())
	}
}

func TestExpiry(t *testing.T) {
	c := New[string, string](time.Minute)
	defer c.Close()

	c.Set("soon", "v", 10*time.Millisecond)
	if _, ok := c.Get("soon"); !ok {
		t.Fatal("entry should be live before its TTL")
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("soon"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int](time.Minute)
	defer c.Close()

	c.Set("a", 1, 0)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted entry should miss")
	}
}

func TestCloseIdempotent(t *testing.T) {
	c := New[string, int](time.Minute)
	c.Close()
	c.Close()
}
