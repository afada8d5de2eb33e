package storage

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const testRedisAddr = "localhost:6379"

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "test:" + t.Name() + ":" + time.Now().Format("150405.000") + ":"
	t.Cleanup(func() {
		client.Del(ctx, prefix+"products")
		client.Close()
	})
	return NewRedisStore(client, prefix)
}

func TestRedisStore(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if _, ok, err := store.Read(ctx, "products"); err != nil || ok {
		t.Fatalf("Read() of absent key = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Write(ctx, "products", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	value, ok, err := store.Read(ctx, "products")
	if err != nil || !ok {
		t.Fatalf("Read() = ok=%v err=%v, want stored value", ok, err)
	}
	if string(value) != `[{"id":1}]` {
		t.Errorf("value = %q", value)
	}

	if err := store.Write(ctx, "products", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite Write() error = %v", err)
	}
	value, _, _ = store.Read(ctx, "products")
	if string(value) != `[]` {
		t.Errorf("value after overwrite = %q, want []", value)
	}
}
