package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "inventory.db"))
	ctx := context.Background()

	if _, ok, err := store.Read(ctx, "products"); err != nil || ok {
		t.Fatalf("Read() of absent key = ok=%v err=%v, want absent", ok, err)
	}

	if err := store.Write(ctx, "products", []byte(`[{"id":1,"name":"Pen"}]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	value, ok, err := store.Read(ctx, "products")
	if err != nil || !ok {
		t.Fatalf("Read() = ok=%v err=%v, want stored value", ok, err)
	}
	if string(value) != `[{"id":1,"name":"Pen"}]` {
		t.Errorf("value = %q", value)
	}
}

func TestSQLiteStore_Upsert(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "inventory.db"))
	ctx := context.Background()

	store.Write(ctx, "products", []byte("first"))
	if err := store.Write(ctx, "products", []byte("second")); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	value, _, _ := store.Read(ctx, "products")
	if string(value) != "second" {
		t.Errorf("value = %q, want second", value)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := context.Background()

	first, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	first.Write(ctx, "products", []byte(`[{"id":1}]`))
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second := openTestStore(t, path)
	value, ok, err := second.Read(ctx, "products")
	if err != nil || !ok {
		t.Fatalf("Read() after reopen = ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":1}]` {
		t.Errorf("value = %q", value)
	}
}
