package engine

type baselineStat struct {
	name  string
	value int
	stars int
}

type baselineCategory struct {
	id    string
	title string
	stats []baselineStat
}

var baselineCategories = []baselineCategory{
	{id: "ball-control", title: "Ball Control", stats: []baselineStat{
		{"Agility", 75, 0}, {"Balance", 75, 0}, {"Reactions", 75, 0},
		{"Ball Control", 75, 0}, {"Dribbling", 75, 0}, {"Composure", 75, 0},
	}},
	{id: "pace", title: "Pace", stats: []baselineStat{
		{"Acceleration", 75, 0}, {"Sprint Speed", 70, 0},
	}},
	{id: "scoring", title: "Scoring", stats: []baselineStat{
		{"Att. Position", 75, 0}, {"Finishing", 75, 0}, {"Shot Power", 75, 0},
		{"Long Shots", 65, 0}, {"Volleys", 75, 0}, {"Penalties", 75, 0},
	}},
	{id: "passing", title: "Passing", stats: []baselineStat{
		{"Vision", 75, 0}, {"Crossing", 65, 0}, {"FK Acc.", 65, 0},
		{"Short Pass", 75, 0}, {"Long Pass", 50, 0}, {"Curve", 75, 0},
	}},
	{id: "physical", title: "Physical", stats: []baselineStat{
		{"Jumping", 40, 0}, {"Strength", 65, 0}, {"Stamina", 75, 0}, {"Aggression", 50, 0},
	}},
	{id: "defending", title: "Defending", stats: []baselineStat{
		{"Interceptions", 50, 0}, {"Heading Acc.", 65, 0}, {"Def. Aware", 40, 0},
		{"Stand Tackle", 40, 0}, {"Slide Tackle", 40, 0},
	}},
	{id: "others", title: "Others", stats: []baselineStat{
		{AttrSkill, 0, 3}, {AttrWeakFoot, 0, 3},
	}},
}

const (
	AttrSkill    = "Skill"
	AttrWeakFoot = "WF"
)

// BaselineSet returns the default attribute set before any AP is spent.
// Star attributes take their value from scale.
func BaselineSet(scale StarScale) AttributeSet {
	set := AttributeSet{Categories: make([]Category, 0, len(baselineCategories))}
	for _, bc := range baselineCategories {
		c := Category{ID: bc.id, Title: bc.title, Attributes: make([]Attribute, 0, len(bc.stats))}
		for _, st := range bc.stats {
			a := Attribute{Name: st.name, Category: bc.title, Value: st.value, Stars: st.stars}
			if a.IsStarBased() {
				a.Value = scale.Value(a.Stars)
			}
			c.Attributes = append(c.Attributes, a)
		}
		set.Categories = append(set.Categories, c)
	}
	return set
}

// ArchetypeProfile is the slice of an archetype the engine consumes.
type ArchetypeProfile struct {
	Role          string
	Name          string
	SkillStars    int
	WeakFootStars int
	KeyAttributes []string
}

// ApplyProfile tags key attributes and seeds the Skill/WF star ratings.
// Unknown key attribute names are ignored.
func ApplyProfile(set AttributeSet, scale StarScale, p ArchetypeProfile) AttributeSet {
	out := set.Clone()
	keys := make(map[string]bool, len(p.KeyAttributes))
	for _, k := range p.KeyAttributes {
		keys[k] = true
	}
	for ci := range out.Categories {
		attrs := out.Categories[ci].Attributes
		for ai := range attrs {
			a := &attrs[ai]
			a.Key = keys[a.Name]
			switch {
			case a.Name == AttrSkill && p.SkillStars > 0:
				a.Stars = clampStars(p.SkillStars)
			case a.Name == AttrWeakFoot && p.WeakFootStars > 0:
				a.Stars = clampStars(p.WeakFootStars)
			}
			if a.IsStarBased() {
				a.Value = scale.Value(a.Stars)
			}
		}
	}
	return out
}
