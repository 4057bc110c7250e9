package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ArchetypeCatalog resolves archetypes to the profile the engine needs.
type ArchetypeCatalog interface {
	Profile(role, name string) (ArchetypeProfile, bool)
}

// Session is the single mutable editing context: ruleset, archetype, level,
// attribute store, ledger and the optional build repository. It is owned by
// one caller and is not safe for concurrent use. Every command either
// completes or leaves the session as it was.
type Session struct {
	rules   Ruleset
	catalog ArchetypeCatalog
	repo    BuildRepository
	log     *slog.Logger
	now     func() time.Time

	archetype      *ArchetypeProfile
	baseline       AttributeSet
	store          *AttributeStore
	ledger         *BudgetLedger
	specialization string
	buildName      string
}

type SessionOption func(*Session)

func WithCatalog(c ArchetypeCatalog) SessionOption {
	return func(s *Session) { s.catalog = c }
}

func WithRepository(r BuildRepository) SessionOption {
	return func(s *Session) { s.repo = r }
}

func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession starts at level 1 on the plain baseline with no archetype.
func NewSession(rules Ruleset, opts ...SessionOption) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &Session{rules: rules, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.baseline = normalizeSet(rules, BaselineSet(rules.Stars))
	s.store = NewAttributeStore(rules, s.baseline)
	s.ledger = NewBudgetLedger(rules, 1)
	return s, nil
}

func (s *Session) Rules() Ruleset { return s.rules }
func (s *Session) Level() int     { return s.ledger.Level() }
func (s *Session) Granted() int   { return s.ledger.Granted() }
func (s *Session) Spent() int     { return s.ledger.Spent() }
func (s *Session) Available() int { return s.ledger.Available() }
func (s *Session) Overspent() int { return s.ledger.Overspent() }

// BuildName is the name last saved or loaded, empty for a fresh build.
func (s *Session) BuildName() string { return s.buildName }

func (s *Session) Specialization() string { return s.specialization }

// Attributes returns a copy of the current set.
func (s *Session) Attributes() AttributeSet { return s.store.Set() }

// Baseline returns a copy of the set spend is measured against.
func (s *Session) Baseline() AttributeSet { return s.baseline.Clone() }

func (s *Session) Attribute(name string) (Attribute, bool) { return s.store.Get(name) }

// Archetype returns the selected archetype, if any.
func (s *Session) Archetype() (ArchetypeProfile, bool) {
	if s.archetype == nil {
		return ArchetypeProfile{}, false
	}
	return *s.archetype, true
}

// NextCost previews the next increment of name. ok is false at the ceiling.
func (s *Session) NextCost(name string) (int, bool, error) {
	return s.store.NextCost(name)
}

// CanAfford reports whether the next increment of name fits the budget.
func (s *Session) CanAfford(name string) bool {
	cost, ok, err := s.store.NextCost(name)
	return err == nil && ok && cost <= s.ledger.Available()
}

func (s *Session) UnlockedSlots() []bool { return UnlockedSlots(s.ledger.Level()) }

// SetLevel clamps and applies level. Spent is kept even when it now exceeds
// the grant.
func (s *Session) SetLevel(level int) int {
	before := s.ledger.Level()
	applied := s.ledger.SetLevel(level)
	if applied != before {
		s.log.Info("level changed", "from", before, "to", applied, "granted", s.ledger.Granted(), "overspent", s.ledger.Overspent())
	}
	return applied
}

// Increment spends AP to raise name one step. Budget and boundary rejections
// are returned as errors wrapping ErrBudgetExceeded / ErrBoundaryReached and
// leave the session untouched.
func (s *Session) Increment(name string) (Mutation, error) {
	m, err := s.store.Increment(name, s.ledger.Available())
	if err != nil {
		s.log.Debug("increment rejected", "attribute", name, "err", err)
		return m, err
	}
	s.ledger.Apply(m.APDelta)
	return m, nil
}

// Decrement lowers name one step and refunds its price.
func (s *Session) Decrement(name string) (Mutation, error) {
	m, err := s.store.Decrement(name)
	if err != nil {
		s.log.Debug("decrement rejected", "attribute", name, "err", err)
		return m, err
	}
	s.ledger.Apply(m.APDelta)
	return m, nil
}

// Reset returns every attribute to baseline and clears spent.
func (s *Session) Reset() {
	s.store.Reset(s.baseline)
	s.ledger.Clear()
}

// SelectArchetype rebuilds the baseline for the archetype and resets the build.
func (s *Session) SelectArchetype(role, name string) error {
	p, err := s.lookupArchetype(role, name)
	if err != nil {
		return err
	}
	s.archetype = &p
	s.baseline = s.baselineFor(&p)
	s.Reset()
	s.log.Info("archetype selected", "role", p.Role, "name", p.Name)
	return nil
}

// ClearArchetype drops the archetype and resets to the plain baseline.
func (s *Session) ClearArchetype() {
	s.archetype = nil
	s.baseline = s.baselineFor(nil)
	s.Reset()
}

// SetSpecialization picks one of Specializations; an empty name clears it.
func (s *Session) SetSpecialization(name string) error {
	if name != "" && !IsSpecialization(name) {
		return fmt.Errorf("%w: %s", ErrBadSpecialization, name)
	}
	s.specialization = name
	return nil
}

// Save stores the current build under name.
func (s *Session) Save(ctx context.Context, name string) error {
	snap := s.Snapshot(name)
	if err := s.Persist(ctx, snap); err != nil {
		return err
	}
	s.MarkSaved(name)
	return nil
}

// Snapshot captures the current build under name without persisting it.
func (s *Session) Snapshot(name string) BuildSnapshot {
	snap := BuildSnapshot{
		Name:           name,
		Ruleset:        s.rules.Name,
		Level:          s.ledger.Level(),
		Specialization: s.specialization,
		Attributes:     CaptureAttributes(s.store.Set()),
		SavedAt:        s.now().UTC(),
	}
	if s.archetype != nil {
		snap.Archetype = &ArchetypeRef{Role: s.archetype.Role, Name: s.archetype.Name}
	}
	return snap
}

// Persist writes snap to the repository. It reads no mutable session state,
// so it may run off the goroutine that owns the session.
func (s *Session) Persist(ctx context.Context, snap BuildSnapshot) error {
	if s.repo == nil {
		return ErrNoRepository
	}
	if err := s.repo.Save(ctx, snap.Name, snap); err != nil {
		s.log.Warn("save failed", "build", snap.Name, "err", err)
		return err
	}
	return nil
}

// MarkSaved records name as the current build after a successful Persist.
func (s *Session) MarkSaved(name string) {
	s.buildName, _ = normalizeBuildName(name)
	s.log.Info("build saved", "build", s.buildName, "spent", s.ledger.Spent())
}

// Load replaces the session state with the stored build. Spent is recomputed
// against the archetype baseline; unknown attributes or archetypes fall back
// to baseline instead of failing the load.
func (s *Session) Load(ctx context.Context, name string) error {
	if s.repo == nil {
		return ErrNoRepository
	}
	snap, err := s.repo.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrBuildNotFound) {
			s.log.Warn("load failed", "build", name, "err", err)
		}
		return err
	}

	if snap.Ruleset != "" && snap.Ruleset != s.rules.Name {
		s.log.Warn("build saved under another ruleset, repricing", "build", snap.Name, "saved", snap.Ruleset, "current", s.rules.Name)
	}

	var profile *ArchetypeProfile
	if snap.Archetype != nil {
		p, err := s.lookupArchetype(snap.Archetype.Role, snap.Archetype.Name)
		if err != nil {
			s.log.Warn("stored archetype unavailable, using default baseline", "build", snap.Name, "err", err)
		} else {
			profile = &p
		}
	}
	baseline := s.baselineFor(profile)
	current, unknown := ApplySnapshot(s.rules, baseline, snap.Attributes)
	if len(unknown) > 0 {
		s.log.Warn("ignored unknown attributes", "build", snap.Name, "names", unknown)
	}
	spec := snap.Specialization
	if spec != "" && !IsSpecialization(spec) {
		spec = ""
	}

	s.archetype = profile
	s.baseline = baseline
	s.store.Reset(current)
	s.ledger.SetLevel(snap.Level)
	spent := s.ledger.RecomputeFromAttributeSet(s.store.Set(), s.baseline)
	s.specialization = spec
	s.buildName = snap.Name
	s.log.Info("build loaded", "build", snap.Name, "level", s.ledger.Level(), "spent", spent)
	return nil
}

// ListBuilds returns stored build names in order.
func (s *Session) ListBuilds(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	return s.repo.ListNames(ctx)
}

// DeleteBuild removes a stored build. The in-memory build is unaffected.
func (s *Session) DeleteBuild(ctx context.Context, name string) error {
	if s.repo == nil {
		return ErrNoRepository
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	if n, _ := normalizeBuildName(name); n == s.buildName {
		s.buildName = ""
	}
	return nil
}

// PurgeBuilds removes every stored build. The in-memory build is kept but no
// longer carries a saved name.
func (s *Session) PurgeBuilds(ctx context.Context) error {
	if s.repo == nil {
		return ErrNoRepository
	}
	if err := s.repo.Purge(ctx); err != nil {
		s.log.Warn("purge failed", "err", err)
		return err
	}
	s.buildName = ""
	s.log.Info("builds purged")
	return nil
}

func (s *Session) lookupArchetype(role, name string) (ArchetypeProfile, error) {
	if s.catalog == nil {
		return ArchetypeProfile{}, fmt.Errorf("%w: %s/%s (no catalog)", ErrUnknownArchetype, role, name)
	}
	p, ok := s.catalog.Profile(role, name)
	if !ok {
		return ArchetypeProfile{}, fmt.Errorf("%w: %s/%s", ErrUnknownArchetype, role, name)
	}
	return p, nil
}

func (s *Session) baselineFor(p *ArchetypeProfile) AttributeSet {
	base := BaselineSet(s.rules.Stars)
	if p != nil {
		base = ApplyProfile(base, s.rules.Stars, *p)
	}
	return normalizeSet(s.rules, base)
}
