// Package archetype declares the fixed stylistic templates used to diversify
// generated variations. Declaration order is the canonical result ordering.
package archetype

// Archetype is one of the fixed stylistic templates
type Archetype string

// The six archetypes in canonical order
const (
	ShortPunchy         Archetype = "short-punchy"
	MediumStory         Archetype = "medium-story"
	LongDetailed        Archetype = "long-detailed"
	ThreadStyle         Archetype = "thread-style"
	CasualPersonal      Archetype = "casual-personal"
	ProfessionalInsight Archetype = "professional-insight"
)

// all holds the archetypes in declaration order
// index position doubles as the canonical sort key
var all = []Archetype{
	ShortPunchy,
	MediumStory,
	LongDetailed,
	ThreadStyle,
	CasualPersonal,
	ProfessionalInsight,
}

// spec describes how a variation of this archetype should be shaped
type spec struct {
	instruction string
	lengthHint  string
}

var specs = map[Archetype]spec{
	ShortPunchy: {
		instruction: "Write a single short, punchy post. One or two sentences, a strong hook, no hashtags unless the creator uses them",
		lengthHint:  "under 100 characters",
	},
	MediumStory: {
		instruction: "Write a post that tells a small story arc: setup, turn, payoff. Keep the creator's pacing and line-break habits",
		lengthHint:  "150 to 280 characters",
	},
	LongDetailed: {
		instruction: "Write a longer, substantive post that unpacks the idea with specifics. Dense but readable, no filler",
		lengthHint:  "280 to 500 characters",
	},
	ThreadStyle: {
		instruction: "Write the opening post of a thread. Promise a payoff, number nothing, end with a reason to read on",
		lengthHint:  "under 280 characters",
	},
	CasualPersonal: {
		instruction: "Write a casual, first-person post as if talking to a friend. Lowercase and loose punctuation are fine if the creator writes that way",
		lengthHint:  "under 200 characters",
	},
	ProfessionalInsight: {
		instruction: "Write a polished, insight-forward post. Lead with the takeaway, back it with one concrete detail",
		lengthHint:  "under 280 characters",
	},
}

// All returns the archetypes in declaration order
// callers must not mutate the returned slice
func All() []Archetype { return all }

// Count is the number of fixed archetypes
func Count() int { return len(all) }

// Valid reports whether s names a known archetype
func Valid(s string) bool {
	_, ok := specs[Archetype(s)]
	return ok
}

// Index returns the declaration-order position of a, or -1 when unknown
func Index(a Archetype) int {
	for i, x := range all {
		if x == a {
			return i
		}
	}
	return -1
}

// Instruction returns the structural instruction for a
// empty when a is unknown
func Instruction(a Archetype) string { return specs[a].instruction }

// LengthHint returns the length target for a
// empty when a is unknown
func LengthHint(a Archetype) string { return specs[a].lengthHint }
