package engine

// Attribute is a single trait of a build. Star-based attributes carry a
// rating in [1,5] and their Value always mirrors the star scale; numeric
// attributes keep Stars at 0.
type Attribute struct {
	Name     string
	Category string
	Value    int
	Stars    int
	Key      bool
}

func (a Attribute) IsStarBased() bool {
	return a.Stars > 0
}

// Category groups attributes under a display title.
type Category struct {
	ID         string
	Title      string
	Attributes []Attribute
}

// AttributeSet is the ordered set of categories of a build. Membership and
// names are fixed for the life of a build; only values and stars change.
type AttributeSet struct {
	Categories []Category
}

// Clone returns a deep copy.
func (s AttributeSet) Clone() AttributeSet {
	out := AttributeSet{Categories: make([]Category, len(s.Categories))}
	for i, c := range s.Categories {
		attrs := make([]Attribute, len(c.Attributes))
		copy(attrs, c.Attributes)
		out.Categories[i] = Category{ID: c.ID, Title: c.Title, Attributes: attrs}
	}
	return out
}

func (s AttributeSet) locate(name string) (int, int, bool) {
	for ci, c := range s.Categories {
		for ai, a := range c.Attributes {
			if a.Name == name {
				return ci, ai, true
			}
		}
	}
	return 0, 0, false
}

// Get returns the attribute called name.
func (s AttributeSet) Get(name string) (Attribute, bool) {
	ci, ai, ok := s.locate(name)
	if !ok {
		return Attribute{}, false
	}
	return s.Categories[ci].Attributes[ai], true
}

func (s *AttributeSet) set(a Attribute) bool {
	ci, ai, ok := s.locate(a.Name)
	if !ok {
		return false
	}
	s.Categories[ci].Attributes[ai] = a
	return true
}

// All returns every attribute in display order.
func (s AttributeSet) All() []Attribute {
	var out []Attribute
	for _, c := range s.Categories {
		out = append(out, c.Attributes...)
	}
	return out
}

// Names returns every attribute name in display order.
func (s AttributeSet) Names() []string {
	var out []string
	for _, c := range s.Categories {
		for _, a := range c.Attributes {
			out = append(out, a.Name)
		}
	}
	return out
}

// Len returns the number of attributes.
func (s AttributeSet) Len() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Attributes)
	}
	return n
}
