package sessions

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	entry := Entry{AccountID: "acc-1", Email: "jane@example.com", Role: "customer", CreatedAt: time.Now().UTC()}

	if err := store.Put("sess-1", entry, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.Email != "jane@example.com" || got.Role != "customer" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put("sess-1", Entry{AccountID: "acc-1"}, time.Nanosecond); err != nil {
		t.Fatalf("put: %v", err)
	}
	time.Sleep(time.Millisecond)

	_, ok, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected session to be expired")
	}
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put("sess-1", Entry{AccountID: "acc-1"}, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := store.Delete("sess-1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete("sess-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, ok, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected session to be gone")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	redis := miniredis.RunT(t)
	store := NewRedisStore(redis.Addr(), "")

	entry := Entry{AccountID: "acc-2", Email: "admin@clefmusic.com", Role: "admin", CreatedAt: time.Now().UTC()}
	if err := store.Put("sess-2", entry, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get("sess-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.Role != "admin" || got.AccountID != "acc-2" {
		t.Fatalf("unexpected entry: %+v", got)
	}

	if err := store.Delete("sess-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete("sess-2"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, ok, err = store.Get("sess-2")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if ok {
		t.Fatal("expected session to be gone")
	}
}
