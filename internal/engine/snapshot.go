package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ArchetypeRef names the archetype a build was made for.
type ArchetypeRef struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// SnapshotAttribute is the persisted state of one attribute. Star-based
// attributes persist only their rating.
type SnapshotAttribute struct {
	Name  string `json:"name"`
	Value int    `json:"value,omitempty"`
	Stars int    `json:"stars,omitempty"`
}

// BuildSnapshot is what a repository stores for a named build. It carries no
// spent total: spend is always re-derived from the attributes on load.
type BuildSnapshot struct {
	Name           string              `json:"name"`
	Ruleset        string              `json:"ruleset,omitempty"`
	Archetype      *ArchetypeRef       `json:"archetype,omitempty"`
	Level          int                 `json:"level"`
	Specialization string              `json:"specialization,omitempty"`
	Attributes     []SnapshotAttribute `json:"attributes"`
	SavedAt        time.Time           `json:"saved_at"`
}

// CaptureAttributes records every attribute of set.
func CaptureAttributes(set AttributeSet) []SnapshotAttribute {
	all := set.All()
	out := make([]SnapshotAttribute, 0, len(all))
	for _, a := range all {
		if a.IsStarBased() {
			out = append(out, SnapshotAttribute{Name: a.Name, Stars: a.Stars})
			continue
		}
		out = append(out, SnapshotAttribute{Name: a.Name, Value: a.Value})
	}
	return out
}

// ApplySnapshot overlays stored attributes onto a copy of baseline. Names are
// matched case-insensitively. Unknown names are skipped and returned;
// attributes missing from the snapshot keep their baseline state, as do
// entries whose shape does not fit the attribute (a star rating for a numeric
// attribute and vice versa).
func ApplySnapshot(rules Ruleset, baseline AttributeSet, attrs []SnapshotAttribute) (AttributeSet, []string) {
	out := baseline.Clone()
	index := make(map[string]string, out.Len())
	for _, name := range out.Names() {
		index[foldName(name)] = name
	}

	var unknown []string
	for _, sa := range attrs {
		name, ok := index[foldName(sa.Name)]
		if !ok {
			unknown = append(unknown, sa.Name)
			continue
		}
		a, _ := out.Get(name)
		if a.IsStarBased() {
			if sa.Stars <= 0 {
				continue
			}
			a.Stars = sa.Stars
		} else {
			if sa.Stars > 0 || sa.Value <= 0 {
				continue
			}
			a.Value = sa.Value
		}
		out.set(normalizeAttribute(rules, a))
	}
	return out, unknown
}

// foldName builds a fresh Caser per call; Casers carry state.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// decodeSnapshot parses one stored build. A body that is not an object is a
// serialization error. Fields of the wrong type are dropped and keep their
// zero value (level 0 clamps to 1 on load); so are attributes that fail to
// decode.
func decodeSnapshot(raw json.RawMessage) (BuildSnapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return BuildSnapshot{}, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if fields == nil {
		return BuildSnapshot{}, fmt.Errorf("%w: build is null", ErrSerialization)
	}

	var snap BuildSnapshot
	field := func(key string, dst any) {
		if v, ok := fields[key]; ok {
			_ = json.Unmarshal(v, dst)
		}
	}
	field("name", &snap.Name)
	field("ruleset", &snap.Ruleset)
	field("level", &snap.Level)
	field("specialization", &snap.Specialization)
	field("saved_at", &snap.SavedAt)

	var ref ArchetypeRef
	if v, ok := fields["archetype"]; ok && json.Unmarshal(v, &ref) == nil && ref.Name != "" {
		snap.Archetype = &ref
	}

	var attrs []json.RawMessage
	field("attributes", &attrs)
	for _, ra := range attrs {
		var sa SnapshotAttribute
		if err := json.Unmarshal(ra, &sa); err != nil || sa.Name == "" {
			continue
		}
		snap.Attributes = append(snap.Attributes, sa)
	}
	return snap, nil
}
