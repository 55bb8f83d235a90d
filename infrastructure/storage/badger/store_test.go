package badger

import (
	"context"
	"testing"

	"github.com/laokip/advisor/domain/cache"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	s, err := NewStore(Config{InMemory: true}, opts...)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
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
	s := newTestStore(t)

	_, found, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for missing key")
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", []byte("first"))
	if err := s.Set(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "second" {
		t.Errorf("Get() = %q, want second", got)
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "k", []byte("v"))
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, found, _ := s.Get(ctx, "k")
	if found {
		t.Error("key still present after Delete()")
	}
}

func TestStoreKeyPrefixIsolation(t *testing.T) {
	s, err := NewStore(Config{InMemory: true}, WithKeyPrefix("a:"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer s.Close()

	other := NewStoreFromDB(s.DB(), "b:")
	ctx := context.Background()

	s.Set(ctx, "k", []byte("from-a"))
	other.Set(ctx, "k", []byte("from-b"))

	gotA, _, _ := s.Get(ctx, "k")
	gotB, _, _ := other.Get(ctx, "k")
	if string(gotA) != "from-a" || string(gotB) != "from-b" {
		t.Errorf("prefixes collided: a=%q b=%q", gotA, gotB)
	}
}

func TestStoreEmptyKeyRejected(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set(context.Background(), "", []byte("v")); err != cache.ErrInvalidKey {
		t.Errorf("Set() error = %v, want ErrInvalidKey", err)
	}
}

func TestStoreDurableOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStore(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := s.Set(ctx, "k", []byte("persisted")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewStore(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewStore() reopen error = %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get() after reopen = %v, found %v", err, found)
	}
	if string(got) != "persisted" {
		t.Errorf("Get() = %q, want persisted", got)
	}
}
