package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStore_ReserveNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	reserved, resp, err := store.Reserve(ctx, "pending", time.Minute)
	if err != nil || !reserved || resp != nil {
		t.Fatalf("unexpected result: reserved=%v resp=%v err=%v", reserved, resp, err)
	}

	val, err := client.Get(ctx, store.prefix+"pending").Result()
	if err != nil || val != pendingMarker {
		t.Fatalf("expected placeholder lock, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_ReserveInFlight(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "key", time.Minute); err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}

	reserved, resp, err := store.Reserve(ctx, "key", time.Minute)
	if err != nil || reserved || resp != nil {
		t.Fatalf("expected in-flight result, got reserved=%v resp=%s err=%v", reserved, resp, err)
	}
}

func TestIdempotencyStore_CompleteThenReplay(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "done", time.Minute); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := store.Complete(ctx, "done", []byte(`{"status":201}`), time.Minute); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	reserved, resp, err := store.Reserve(ctx, "done", time.Minute)
	if err != nil || reserved || string(resp) != `{"status":201}` {
		t.Fatalf("expected stored response, got reserved=%v resp=%s err=%v", reserved, resp, err)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Reserve(ctx, "retry", time.Minute); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := store.Release(ctx, "retry"); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	reserved, _, err := store.Reserve(ctx, "retry", time.Minute)
	if err != nil || !reserved {
		t.Fatalf("expected key to be reservable after release, got reserved=%v err=%v", reserved, err)
	}
}
