// Package catalog holds the read-only archetype catalog: roles, their
// archetypes in display order, star ratings, key attributes and playstyles.
package catalog

import (
	"sort"
	"strings"

	"pitchbuild/internal/engine"
)

// Archetype is one role template.
type Archetype struct {
	Role          string
	Name          string
	Order         int
	Description   string
	InspiredBy    string
	Playstyles    []string
	Positions     []string
	SkillStars    int
	WeakFootStars int
	KeyAttributes []string
}

// Profile converts the archetype into what the engine consumes. Key
// attribute names are normalized to the engine's attribute names.
func (a Archetype) Profile() engine.ArchetypeProfile {
	keys := make([]string, 0, len(a.KeyAttributes))
	for _, k := range a.KeyAttributes {
		keys = append(keys, NormalizeAttrName(k))
	}
	return engine.ArchetypeProfile{
		Role:          a.Role,
		Name:          a.Name,
		SkillStars:    a.SkillStars,
		WeakFootStars: a.WeakFootStars,
		KeyAttributes: keys,
	}
}

// Role groups archetypes and carries the role accent color.
type Role struct {
	Name       string
	Accent     string
	Archetypes []Archetype
}

// Catalog is an immutable set of roles.
type Catalog struct {
	roles []Role
}

// New builds a catalog, sorting each role's archetypes by Order.
func New(roles []Role) *Catalog {
	out := make([]Role, len(roles))
	for i, r := range roles {
		items := make([]Archetype, len(r.Archetypes))
		copy(items, r.Archetypes)
		for j := range items {
			items[j].Role = r.Name
		}
		sort.SliceStable(items, func(a, b int) bool { return items[a].Order < items[b].Order })
		out[i] = Role{Name: r.Name, Accent: r.Accent, Archetypes: items}
	}
	return &Catalog{roles: out}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtinRoles())
}

func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	copy(out, c.roles)
	return out
}

// Find looks an archetype up by role and name, case-insensitively.
func (c *Catalog) Find(role, name string) (Archetype, bool) {
	for _, r := range c.roles {
		if !strings.EqualFold(r.Name, strings.TrimSpace(role)) {
			continue
		}
		for _, a := range r.Archetypes {
			if strings.EqualFold(a.Name, strings.TrimSpace(name)) {
				return a, true
			}
		}
	}
	return Archetype{}, false
}

// FindByName looks an archetype up by name alone. Archetype names are unique
// across roles in the built-in catalog.
func (c *Catalog) FindByName(name string) (Archetype, bool) {
	for _, r := range c.roles {
		for _, a := range r.Archetypes {
			if strings.EqualFold(a.Name, strings.TrimSpace(name)) {
				return a, true
			}
		}
	}
	return Archetype{}, false
}

// Accent returns the role's accent color, or a neutral gray.
func (c *Catalog) Accent(role string) string {
	for _, r := range c.roles {
		if strings.EqualFold(r.Name, role) {
			return r.Accent
		}
	}
	return "#9ca3af"
}

// Profile implements engine.ArchetypeCatalog.
func (c *Catalog) Profile(role, name string) (engine.ArchetypeProfile, bool) {
	a, ok := c.Find(role, name)
	if !ok {
		return engine.ArchetypeProfile{}, false
	}
	return a.Profile(), true
}

var attrAliases = map[string]string{
	"Heading Accuracy": "Heading Acc.",
	"Composture":       "Composure",
	"Long Shot":        "Long Shots",
	"FK Accuracy":      "FK Acc.",
}

// NormalizeAttrName maps catalog spellings onto attribute names. Aliases
// match case-insensitively.
func NormalizeAttrName(s string) string {
	s = strings.TrimSpace(s)
	for alias, n := range attrAliases {
		if strings.EqualFold(alias, s) {
			return n
		}
	}
	return s
}
