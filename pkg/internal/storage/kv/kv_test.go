package kv_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yasameenmsa/talentvault/pkg/internal/storage/kv"
)

// TestMemoryKVBasic 内存 KV 的基本 Set/Get/Delete 流程.
func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "file:record:1", []byte(`{"id":"1"}`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "file:record:1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != `{"id":"1"}` {
		t.Errorf("unexpected value: %s", got)
	}

	exists, err := store.Exists(ctx, "file:record:1")
	if err != nil || !exists {
		t.Errorf("expected key to exist, exists=%v err=%v", exists, err)
	}

	if err := store.Delete(ctx, "file:record:1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "file:record:1"); err == nil {
		t.Error("expected error for deleted key, got nil")
	}
}

// TestMemoryKVValueIsolation Get 返回副本，修改不影响存储.
func TestMemoryKVValueIsolation(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k", []byte("abc"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	first, _ := store.Get(ctx, "k")
	first[0] = 'z'

	second, _ := store.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("stored value mutated: %s", second)
	}
}

// TestMemoryKVTTL 过期键惰性删除.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := store.Get(ctx, "short"); err != nil {
		t.Fatalf("get before expiry failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := store.Get(ctx, "short"); err == nil {
		t.Error("expected error for expired key, got nil")
	}

	exists, err := store.Exists(ctx, "short")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}

	if exists {
		t.Error("expired key still reported as existing")
	}
}

func BenchmarkMemoryKV(b *testing.B) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	payload := []byte(`{"id":"01J8","file_name":"cv.pdf","size":4096}`)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		key := fmt.Sprintf("bench-%d", i)
		if err := store.Set(ctx, key, payload, 0); err != nil {
			b.Fatalf("set failed: %v", err)
		}

		if _, err := store.Get(ctx, key); err != nil {
			b.Fatalf("get failed: %v", err)
		}

		if err := store.Delete(ctx, key); err != nil {
			b.Fatalf("delete failed: %v", err)
		}
	}
}
