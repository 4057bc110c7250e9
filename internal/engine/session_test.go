package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pitchbuild/internal/storage"
)

type stubCatalog map[string]ArchetypeProfile

func (c stubCatalog) Profile(role, name string) (ArchetypeProfile, bool) {
	p, ok := c[role+"/"+name]
	return p, ok
}

var testCatalog = stubCatalog{
	"Forward/Target": {
		Role: "Forward", Name: "Target",
		SkillStars: 3, WeakFootStars: 4,
		KeyAttributes: []string{"Finishing", "Strength", "Jumping"},
	},
	"Midfielder/Maestro": {
		Role: "Midfielder", Name: "Maestro",
		SkillStars: 4, WeakFootStars: 3,
		KeyAttributes: []string{"Vision", "Short Pass"},
	},
}

func newTestSession(t *testing.T, kv KVStore) *Session {
	t.Helper()
	opts := []SessionOption{
		WithCatalog(testCatalog),
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
	}
	if kv != nil {
		opts = append(opts, WithRepository(NewKVBuildRepository(kv)))
	}
	s, err := NewSession(FC26Ruleset(), opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func newSQLiteKV(t *testing.T, quota int) *storage.KVRepo {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "builds.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewKVRepo(db, quota)
}

func raise(t *testing.T, s *Session, name string, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		if _, err := s.Increment(name); err != nil {
			t.Fatalf("increment %s step %d: %v", name, i+1, err)
		}
	}
}

func TestSessionStartsAtLevelOne(t *testing.T) {
	s := newTestSession(t, nil)
	if s.Level() != 1 || s.Granted() != 40 || s.Spent() != 0 || s.Available() != 40 {
		t.Fatalf("level=%d granted=%d spent=%d available=%d", s.Level(), s.Granted(), s.Spent(), s.Available())
	}
	if _, ok := s.Archetype(); ok {
		t.Fatalf("fresh session should have no archetype")
	}
}

func TestSessionIncrementSpends(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetLevel(5)
	m, err := s.Increment("Finishing")
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if m.APDelta != 8 || s.Spent() != 8 || s.Available() != 68 {
		t.Fatalf("delta=%d spent=%d available=%d", m.APDelta, s.Spent(), s.Available())
	}
	if !s.CanAfford("Finishing") {
		t.Fatalf("should afford next Finishing step")
	}
	cost, ok, err := s.NextCost("Finishing")
	if err != nil || !ok || cost != 8 {
		t.Fatalf("NextCost=%d,%v,%v want 8", cost, ok, err)
	}
}

func TestSessionRejectionLeavesStateAlone(t *testing.T) {
	s := newTestSession(t, nil)
	raise(t, s, "Finishing", 4) // 76..79 at 8 AP each
	if s.Available() != 8 {
		t.Fatalf("available=%d, want 8", s.Available())
	}
	before := s.Attributes()
	spent := s.Spent()

	_, err := s.Increment("Finishing") // 80 costs 10
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("err=%v, want ErrBudgetExceeded", err)
	}
	if s.Spent() != spent {
		t.Fatalf("spent moved on rejection: %d -> %d", spent, s.Spent())
	}
	a, _ := s.Attribute("Finishing")
	b, _ := before.Get("Finishing")
	if a != b {
		t.Fatalf("attribute moved on rejection: %+v -> %+v", b, a)
	}
	if s.CanAfford("Finishing") {
		t.Fatalf("CanAfford should be false")
	}
}

func TestSessionLevelDropKeepsSpent(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetLevel(10)
	raise(t, s, "Finishing", 10) // 4*8 + 5*10 + 15 = 97
	if s.Spent() != 97 {
		t.Fatalf("spent=%d, want 97", s.Spent())
	}

	s.SetLevel(1)
	if s.Spent() != 97 || s.Available() != 0 || s.Overspent() != 57 {
		t.Fatalf("spent=%d available=%d overspent=%d", s.Spent(), s.Available(), s.Overspent())
	}
	if _, err := s.Increment("Curve"); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("err=%v, want ErrBudgetExceeded while overspent", err)
	}
	m, err := s.Decrement("Finishing")
	if err != nil || m.APDelta != -15 {
		t.Fatalf("decrement while overspent: %+v %v", m, err)
	}
	if s.Spent() != 82 {
		t.Fatalf("spent=%d, want 82", s.Spent())
	}
}

func TestSessionSetLevelClamps(t *testing.T) {
	s := newTestSession(t, nil)
	if got := s.SetLevel(0); got != 1 {
		t.Fatalf("SetLevel(0)=%d, want 1", got)
	}
	if got := s.SetLevel(80); got != 50 {
		t.Fatalf("SetLevel(80)=%d, want 50", got)
	}
}

func TestSessionSlots(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetLevel(9)
	slots := s.UnlockedSlots()
	if !slots[0] || slots[1] || slots[2] || slots[3] {
		t.Fatalf("slots at 9=%v", slots)
	}
	s.SetLevel(40)
	for i, ok := range s.UnlockedSlots() {
		if !ok {
			t.Fatalf("slot %d locked at level 40", i)
		}
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, nil)
	raise(t, s, "Curve", 3)
	s.Reset()
	if s.Spent() != 0 {
		t.Fatalf("spent=%d after reset", s.Spent())
	}
	a, _ := s.Attribute("Curve")
	if a.Value != 75 {
		t.Fatalf("Curve=%d after reset, want 75", a.Value)
	}
}

func TestSelectArchetypeRebuildsBaseline(t *testing.T) {
	s := newTestSession(t, nil)
	raise(t, s, "Curve", 2)
	if err := s.SelectArchetype("Midfielder", "Maestro"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.Spent() != 0 {
		t.Fatalf("spent=%d after archetype change", s.Spent())
	}
	skill, _ := s.Attribute(AttrSkill)
	if skill.Stars != 4 || skill.Value != 85 {
		t.Fatalf("Skill=%+v, want archetype 4 stars", skill)
	}
	vision, _ := s.Attribute("Vision")
	if !vision.Key {
		t.Fatalf("Vision should be a key attribute")
	}

	if err := s.SelectArchetype("Keeper", "Sweeper"); !errors.Is(err, ErrUnknownArchetype) {
		t.Fatalf("err=%v, want ErrUnknownArchetype", err)
	}
	if p, _ := s.Archetype(); p.Name != "Maestro" {
		t.Fatalf("failed select replaced archetype with %q", p.Name)
	}

	s.ClearArchetype()
	skill, _ = s.Attribute(AttrSkill)
	if skill.Stars != 3 {
		t.Fatalf("Skill stars=%d after clear, want 3", skill.Stars)
	}
}

func TestSetSpecialization(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.SetSpecialization("Power Shot"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetSpecialization("Rabona"); !errors.Is(err, ErrBadSpecialization) {
		t.Fatalf("err=%v, want ErrBadSpecialization", err)
	}
	if s.Specialization() != "Power Shot" {
		t.Fatalf("specialization=%q", s.Specialization())
	}
}

func TestSaveLoadRoundTripSQLite(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t, 0)
	s := newTestSession(t, kv)

	if err := s.SelectArchetype("Forward", "Target"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.SetLevel(20)
	raise(t, s, "Finishing", 6)
	raise(t, s, AttrSkill, 1)
	if err := s.SetSpecialization("Finesse Shot"); err != nil {
		t.Fatalf("spec: %v", err)
	}
	if s.Spent() != 52+15 {
		t.Fatalf("spent=%d before save, want 67", s.Spent())
	}
	// Load prices the star over its representative range, not per step.
	wantSpent := FC26Schedule.RangeCost(75, 81) + FC26Schedule.RangeCost(75, 85)
	wantAttrs := s.Attributes()

	if err := s.Save(ctx, "  striker  "); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.BuildName() != "striker" {
		t.Fatalf("build name=%q", s.BuildName())
	}

	other := newTestSession(t, kv)
	if err := other.Load(ctx, "striker"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if other.Spent() != wantSpent {
		t.Fatalf("spent=%d after load, want %d", other.Spent(), wantSpent)
	}
	if other.Level() != 20 || other.Specialization() != "Finesse Shot" {
		t.Fatalf("level=%d spec=%q", other.Level(), other.Specialization())
	}
	if p, ok := other.Archetype(); !ok || p.Name != "Target" {
		t.Fatalf("archetype not restored: %+v", p)
	}
	for _, a := range wantAttrs.All() {
		got, _ := other.Attribute(a.Name)
		if got != a {
			t.Fatalf("%s: got %+v, want %+v", a.Name, got, a)
		}
	}

	names, err := other.ListBuilds(ctx)
	if err != nil || len(names) != 1 || names[0] != "striker" {
		t.Fatalf("ListBuilds=%v, %v", names, err)
	}
}

func TestLoadRecomputesSpent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV(0)
	repo := NewKVBuildRepository(kv)
	snap := BuildSnapshot{
		Level: 50,
		Attributes: []SnapshotAttribute{
			{Name: "finishing", Value: 85},
			{Name: "Jumping", Value: 10},
			{Name: "Skill", Stars: 5},
		},
	}
	if err := repo.Save(ctx, "edited", snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := newTestSession(t, kv)
	if err := s.Load(ctx, "edited"); err != nil {
		t.Fatalf("load: %v", err)
	}
	want := FC26Schedule.RangeCost(75, 85) + FC26Schedule.RangeCost(75, 95)
	if s.Spent() != want {
		t.Fatalf("spent=%d, want %d", s.Spent(), want)
	}
	fin, _ := s.Attribute("Finishing")
	if fin.Value != 85 {
		t.Fatalf("Finishing=%d, want 85", fin.Value)
	}
}

func TestLoadToleratesCorruptAttributes(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV(0)
	raw := `{"messy":{"name":"messy","level":3,"archetype":{"role":"Keeper","name":"Gone"},"specialization":"Rabona","attributes":[
		{"name":"Finishing","value":"high"},
		{"name":"Curve","value":80},
		{"name":"Ghost","value":50},
		{"name":"WF","value":70},
		"junk"
	]}}`
	if err := kv.Put(ctx, BuildsNamespace, []byte(raw)); err != nil {
		t.Fatalf("put: %v", err)
	}

	s := newTestSession(t, kv)
	if err := s.Load(ctx, "messy"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := s.Archetype(); ok {
		t.Fatalf("unknown archetype should fall back to none")
	}
	if s.Specialization() != "" {
		t.Fatalf("invalid specialization kept: %q", s.Specialization())
	}
	fin, _ := s.Attribute("Finishing")
	curve, _ := s.Attribute("Curve")
	wf, _ := s.Attribute(AttrWeakFoot)
	if fin.Value != 75 || curve.Value != 80 || wf.Stars != 3 {
		t.Fatalf("Finishing=%d Curve=%d WF=%d", fin.Value, curve.Value, wf.Stars)
	}
	if s.Level() != 3 || s.Spent() != FC26Schedule.RangeCost(75, 80) {
		t.Fatalf("level=%d spent=%d", s.Level(), s.Spent())
	}
}

func TestLoadToleratesMistypedFields(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV(0)
	raw := `{"b":{"name":"b","level":"ten","archetype":"Target","specialization":7,
		"saved_at":"yesterday","attributes":[{"name":"Finishing","value":85}]},
		"c":{"name":"c","level":12,"attributes":{"Finishing":85}}}`
	if err := kv.Put(ctx, BuildsNamespace, []byte(raw)); err != nil {
		t.Fatalf("put: %v", err)
	}

	s := newTestSession(t, kv)
	if err := s.Load(ctx, "b"); err != nil {
		t.Fatalf("load b: %v", err)
	}
	if s.Level() != 1 || s.Specialization() != "" {
		t.Fatalf("level=%d spec=%q, want 1 and none", s.Level(), s.Specialization())
	}
	if _, ok := s.Archetype(); ok {
		t.Fatalf("non-object archetype should be dropped")
	}
	fin, _ := s.Attribute("Finishing")
	if fin.Value != 85 || s.Spent() != FC26Schedule.RangeCost(75, 85) {
		t.Fatalf("Finishing=%d spent=%d", fin.Value, s.Spent())
	}

	if err := s.Load(ctx, "c"); err != nil {
		t.Fatalf("load c: %v", err)
	}
	fin, _ = s.Attribute("Finishing")
	if s.Level() != 12 || fin.Value != 75 || s.Spent() != 0 {
		t.Fatalf("level=%d Finishing=%d spent=%d, want 12/75/0", s.Level(), fin.Value, s.Spent())
	}
}

func TestLoadWarnsOnRulesetMismatch(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV(0)
	repo := NewKVBuildRepository(kv)
	snap := BuildSnapshot{
		Ruleset:    RulesetFC26Legacy,
		Level:      10,
		Attributes: []SnapshotAttribute{{Name: "Finishing", Value: 80}},
	}
	if err := repo.Save(ctx, "old", snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	var logs bytes.Buffer
	s, err := NewSession(FC26Ruleset(), WithRepository(repo), WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Load(ctx, "old"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "saved="+RulesetFC26Legacy) {
		t.Fatalf("missing ruleset warning in logs:\n%s", logs.String())
	}
	if s.Spent() != FC26Schedule.RangeCost(75, 80) {
		t.Fatalf("spent=%d, want current ruleset pricing", s.Spent())
	}

	logs.Reset()
	if err := s.Save(ctx, "now"); err != nil {
		t.Fatalf("save now: %v", err)
	}
	if err := s.Load(ctx, "now"); err != nil {
		t.Fatalf("load now: %v", err)
	}
	if strings.Contains(logs.String(), "another ruleset") {
		t.Fatalf("unexpected ruleset warning:\n%s", logs.String())
	}
}

func TestLoadFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV(0)
	if err := kv.Put(ctx, BuildsNamespace, []byte(`{"broken": 5}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s := newTestSession(t, kv)
	raise(t, s, "Curve", 1)
	spent := s.Spent()

	err := s.Load(ctx, "broken")
	var pe PersistenceError
	if !errors.As(err, &pe) || !errors.Is(err, ErrSerialization) {
		t.Fatalf("err=%v, want PersistenceError wrapping ErrSerialization", err)
	}
	if s.Spent() != spent {
		t.Fatalf("failed load changed spent")
	}

	if err := s.Load(ctx, "missing"); !errors.Is(err, ErrBuildNotFound) {
		t.Fatalf("err=%v, want ErrBuildNotFound", err)
	}

	if err := kv.Put(ctx, BuildsNamespace, []byte(`not json`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.ListBuilds(ctx); !errors.Is(err, ErrSerialization) {
		t.Fatalf("ListBuilds err=%v, want ErrSerialization", err)
	}
}

func TestSaveQuotaExceeded(t *testing.T) {
	ctx := context.Background()
	for _, kv := range []KVStore{storage.NewMemoryKV(64), newSQLiteKV(t, 64)} {
		s := newTestSession(t, kv)
		raise(t, s, "Curve", 1)
		err := s.Save(ctx, "big")
		var pe PersistenceError
		if !errors.As(err, &pe) || !errors.Is(err, storage.ErrQuotaExceeded) {
			t.Fatalf("err=%v, want PersistenceError wrapping ErrQuotaExceeded", err)
		}
		if s.BuildName() != "" || s.Spent() != 8 {
			t.Fatalf("failed save changed session: name=%q spent=%d", s.BuildName(), s.Spent())
		}
		names, err := s.ListBuilds(ctx)
		if err != nil || len(names) != 0 {
			t.Fatalf("ListBuilds after failed save=%v, %v", names, err)
		}
	}
}

func TestPersistLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, storage.NewMemoryKV(0))
	raise(t, s, "Curve", 1)

	snap := s.Snapshot("later")
	if err := s.Persist(ctx, snap); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if s.BuildName() != "" {
		t.Fatalf("Persist set build name %q", s.BuildName())
	}
	s.MarkSaved(" later ")
	if s.BuildName() != "later" {
		t.Fatalf("build name=%q, want later", s.BuildName())
	}
}

func TestDeleteBuild(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, storage.NewMemoryKV(0))
	if err := s.Save(ctx, "a"); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := s.Save(ctx, "b"); err != nil {
		t.Fatalf("save b: %v", err)
	}
	if err := s.DeleteBuild(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.BuildName() != "" {
		t.Fatalf("deleting the current build should clear its name")
	}
	names, _ := s.ListBuilds(ctx)
	if len(names) != 1 || names[0] != "a" {
		t.Fatalf("names=%v", names)
	}
	if err := s.DeleteBuild(ctx, "b"); !errors.Is(err, ErrBuildNotFound) {
		t.Fatalf("err=%v, want ErrBuildNotFound", err)
	}
}

func TestPurgeBuildsClearsCorruptNamespace(t *testing.T) {
	ctx := context.Background()
	for _, kv := range []KVStore{storage.NewMemoryKV(0), newSQLiteKV(t, 0)} {
		s := newTestSession(t, kv)
		if err := s.Save(ctx, "a"); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := kv.Update(ctx, BuildsNamespace, func([]byte) ([]byte, error) { return []byte("not json"), nil }); err != nil {
			t.Fatalf("corrupt: %v", err)
		}
		if _, err := s.ListBuilds(ctx); !errors.Is(err, ErrSerialization) {
			t.Fatalf("ListBuilds err=%v, want ErrSerialization", err)
		}

		if err := s.PurgeBuilds(ctx); err != nil {
			t.Fatalf("purge: %v", err)
		}
		names, err := s.ListBuilds(ctx)
		if err != nil || len(names) != 0 {
			t.Fatalf("ListBuilds after purge=%v, %v", names, err)
		}
		if s.BuildName() != "" {
			t.Fatalf("build name kept after purge: %q", s.BuildName())
		}
		if err := s.PurgeBuilds(ctx); err != nil {
			t.Fatalf("purge of empty store: %v", err)
		}
	}
}

func TestPersistenceWithoutRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, nil)
	if err := s.Save(ctx, "x"); !errors.Is(err, ErrNoRepository) {
		t.Fatalf("save err=%v", err)
	}
	if err := s.Load(ctx, "x"); !errors.Is(err, ErrNoRepository) {
		t.Fatalf("load err=%v", err)
	}
	if err := NewKVBuildRepository(storage.NewMemoryKV(0)).Save(ctx, "  ", BuildSnapshot{}); !errors.Is(err, ErrInvalidBuildName) {
		t.Fatalf("blank name err=%v", err)
	}
}
