package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/laokip/advisor/domain/cache"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("value")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if string(got) != "value" {
		t.Errorf("Get() = %q, want value", got)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()

	_, found, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for missing key")
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	s.Set(ctx, "k", []byte("v"))
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, found, _ := s.Get(ctx, "k")
	if found {
		t.Error("key still present after Delete()")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreEmptyKeyRejected(t *testing.T) {
	s := NewStore()

	if err := s.Set(context.Background(), "", []byte("v")); err != cache.ErrInvalidKey {
		t.Errorf("Set() error = %v, want ErrInvalidKey", err)
	}
}

func TestStoreCopiesValues(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	original := []byte("immutable")
	s.Set(ctx, "k", original)
	original[0] = 'X'

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "immutable" {
		t.Errorf("stored value mutated through caller slice: %q", got)
	}

	got[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "immutable" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}

func TestStoreCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "k", []byte("v")); err == nil {
		t.Error("Set() with cancelled context succeeded")
	}
	if _, _, err := s.Get(ctx, "k"); err == nil {
		t.Error("Get() with cancelled context succeeded")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%4))
			for j := 0; j < 100; j++ {
				s.Set(ctx, key, []byte{byte(j)})
				s.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}
