package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func openTestDB(t *testing.T) *KVRepo {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db, 64)
}

func TestKVRepoRoundTrip(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()

	v, err := r.Get(ctx, "missing")
	if err != nil || v != nil {
		t.Fatalf("Get(missing)=%q,%v; want nil,nil", v, err)
	}
	if err := r.Put(ctx, "a", []byte("one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := r.Put(ctx, "a", []byte("two")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	v, err = r.Get(ctx, "a")
	if err != nil || string(v) != "two" {
		t.Fatalf("Get(a)=%q,%v; want two", v, err)
	}
	if err := r.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v, _ := r.Get(ctx, "a"); v != nil {
		t.Fatalf("value survived delete: %q", v)
	}
}

func TestKVRepoQuotaLeavesValue(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()

	if err := r.Put(ctx, "k", []byte("small")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	err := r.Put(ctx, "k", []byte(strings.Repeat("x", 65)))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err=%v, want ErrQuotaExceeded", err)
	}
	v, _ := r.Get(ctx, "k")
	if string(v) != "small" {
		t.Fatalf("value=%q after rejected write, want small", v)
	}
}

func TestKVRepoUpdateErrorRollsBack(t *testing.T) {
	r := openTestDB(t)
	ctx := context.Background()
	_ = r.Put(ctx, "k", []byte("keep"))

	boom := errors.New("boom")
	err := r.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		if string(cur) != "keep" {
			t.Fatalf("current=%q, want keep", cur)
		}
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	v, _ := r.Get(ctx, "k")
	if string(v) != "keep" {
		t.Fatalf("value=%q, want keep", v)
	}
}

func TestMemoryKVQuota(t *testing.T) {
	m := NewMemoryKV(4)
	ctx := context.Background()
	if err := m.Put(ctx, "k", []byte("abcd")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := m.Put(ctx, "k", []byte("abcde")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("err=%v, want ErrQuotaExceeded", err)
	}
	v, _ := m.Get(ctx, "k")
	if string(v) != "abcd" {
		t.Fatalf("value=%q, want abcd", v)
	}
}
