package kv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/runcache/internal/adapters/kv"
	"go.trai.ch/runcache/internal/core/domain"
)

func loadRaw(t *testing.T, store *kv.Store, key domain.Fingerprint) ([]byte, bool, error) {
	t.Helper()
	var got []byte
	found, err := store.LoadBytesWith(context.Background(), key, func(data []byte) error {
		got = append([]byte(nil), data...)
		return nil
	})
	return got, found, err
}

func TestStore_RoundTrip(t *testing.T) {
	store, err := kv.NewStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	key := domain.FingerprintOf([]byte("request one"))
	payload := []byte(`{"platform":"linux_x86_64"}`)

	if err := store.StoreBytes(context.Background(), key, payload, true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}

	got, found, err := loadRaw(t, store, key)
	if err != nil {
		t.Fatalf("LoadBytesWith failed: %v", err)
	}
	if !found {
		t.Fatal("expected entry to be found")
	}
	if string(got) != string(payload) {
		t.Errorf("expected payload %q, got %q", payload, got)
	}
}

func TestStore_MissingEntryIsNotAnError(t *testing.T) {
	store, err := kv.NewStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, found, err := loadRaw(t, store, domain.FingerprintOf([]byte("never stored")))
	if err != nil {
		t.Fatalf("expected nil error for missing entry, got: %v", err)
	}
	if found {
		t.Fatal("expected entry to be absent")
	}
}

func TestStore_CorruptionDetected(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")
	store, err := kv.NewStore(root)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	key := domain.FingerprintOf([]byte("request"))
	if err := store.StoreBytes(context.Background(), key, []byte("payload"), true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}

	// Flip a payload byte on disk.
	hex := key.String()
	path := filepath.Join(root, hex[:2], hex+".bin")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, _, err = loadRaw(t, store, key)
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got: %v", err)
	}
}

func TestStore_OverwriteReplaces(t *testing.T) {
	store, err := kv.NewStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	key := domain.FingerprintOf([]byte("request"))
	ctx := context.Background()
	if err := store.StoreBytes(ctx, key, []byte("first"), true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}
	if err := store.StoreBytes(ctx, key, []byte("second"), true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}

	got, _, err := loadRaw(t, store, key)
	if err != nil {
		t.Fatalf("LoadBytesWith failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestStore_NoOverwriteKeepsExisting(t *testing.T) {
	store, err := kv.NewStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	key := domain.FingerprintOf([]byte("request"))
	ctx := context.Background()
	if err := store.StoreBytes(ctx, key, []byte("first"), true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}
	if err := store.StoreBytes(ctx, key, []byte("second"), false); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}

	got, _, err := loadRaw(t, store, key)
	if err != nil {
		t.Fatalf("LoadBytesWith failed: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("expected %q, got %q", "first", got)
	}
}

func TestStore_IdempotentWrites(t *testing.T) {
	store, err := kv.NewStore(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	key := domain.FingerprintOf([]byte("request"))
	ctx := context.Background()
	payload := []byte("same bytes")
	if err := store.StoreBytes(ctx, key, payload, true); err != nil {
		t.Fatalf("StoreBytes failed: %v", err)
	}
	if err := store.StoreBytes(ctx, key, payload, true); err != nil {
		t.Fatalf("repeat StoreBytes failed: %v", err)
	}

	got, found, err := loadRaw(t, store, key)
	if err != nil || !found {
		t.Fatalf("LoadBytesWith failed: found=%v err=%v", found, err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected %q, got %q", payload, got)
	}
}
