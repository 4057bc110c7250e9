package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// BuildsNamespace is the single key under which every build is stored.
const BuildsNamespace = "pitchbuild/builds"

// BuildRepository persists named build snapshots.
type BuildRepository interface {
	Load(ctx context.Context, name string) (BuildSnapshot, error)
	Save(ctx context.Context, name string, snap BuildSnapshot) error
	ListNames(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Purge(ctx context.Context) error
}

// KVStore is a flat key-value store. Get returns nil, nil for a missing key.
// Update must apply fn atomically: if fn or the write fails the stored value
// is unchanged. Deleting a missing key is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
	Delete(ctx context.Context, key string) error
}

// KVBuildRepository keeps every build in one namespace record, a JSON object
// mapping build name to snapshot, so a write can never leave builds
// inconsistent with each other.
type KVBuildRepository struct {
	kv  KVStore
	key string
}

func NewKVBuildRepository(kv KVStore) *KVBuildRepository {
	return &KVBuildRepository{kv: kv, key: BuildsNamespace}
}

type namespaceRecord map[string]json.RawMessage

func decodeNamespace(data []byte) (namespaceRecord, error) {
	rec := namespaceRecord{}
	if len(data) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return rec, nil
}

func (r *KVBuildRepository) read(ctx context.Context) (namespaceRecord, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return decodeNamespace(data)
}

func (r *KVBuildRepository) Load(ctx context.Context, name string) (BuildSnapshot, error) {
	name, err := normalizeBuildName(name)
	if err != nil {
		return BuildSnapshot{}, err
	}
	rec, err := r.read(ctx)
	if err != nil {
		return BuildSnapshot{}, PersistenceError{Op: "load", Name: name, Err: err}
	}
	raw, ok := rec[name]
	if !ok {
		return BuildSnapshot{}, fmt.Errorf("%w: %s", ErrBuildNotFound, name)
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		return BuildSnapshot{}, PersistenceError{Op: "load", Name: name, Err: err}
	}
	snap.Name = name
	return snap, nil
}

func (r *KVBuildRepository) Save(ctx context.Context, name string, snap BuildSnapshot) error {
	name, err := normalizeBuildName(name)
	if err != nil {
		return err
	}
	snap.Name = name
	body, err := json.Marshal(snap)
	if err != nil {
		return PersistenceError{Op: "save", Name: name, Err: fmt.Errorf("%w: %v", ErrSerialization, err)}
	}

	err = r.kv.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		rec, err := decodeNamespace(current)
		if err != nil {
			return nil, err
		}
		rec[name] = body
		out, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		return out, nil
	})
	if err != nil {
		return PersistenceError{Op: "save", Name: name, Err: err}
	}
	return nil
}

func (r *KVBuildRepository) ListNames(ctx context.Context) ([]string, error) {
	rec, err := r.read(ctx)
	if err != nil {
		return nil, PersistenceError{Op: "list", Err: err}
	}
	names := make([]string, 0, len(rec))
	for n := range rec {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (r *KVBuildRepository) Delete(ctx context.Context, name string) error {
	name, err := normalizeBuildName(name)
	if err != nil {
		return err
	}
	missing := false
	err = r.kv.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		rec, err := decodeNamespace(current)
		if err != nil {
			return nil, err
		}
		if _, ok := rec[name]; !ok {
			missing = true
			return current, nil
		}
		delete(rec, name)
		return json.Marshal(rec)
	})
	if err != nil {
		return PersistenceError{Op: "delete", Name: name, Err: err}
	}
	if missing {
		return fmt.Errorf("%w: %s", ErrBuildNotFound, name)
	}
	return nil
}

// Purge drops the whole namespace record, including one too corrupt to decode.
func (r *KVBuildRepository) Purge(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key); err != nil {
		return PersistenceError{Op: "purge", Err: err}
	}
	return nil
}

func normalizeBuildName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ErrInvalidBuildName
	}
	return n, nil
}
