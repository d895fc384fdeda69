package parser

// Lexicon holds the keyword literals the matchers look for. Matching is
// case-insensitive. The defaults are the Korean phrasing used in the channel
// plus English glosses of the same words.
type Lexicon struct {
	Cancel    []string
	AllDay    []string
	Morning   []string
	Afternoon []string
	// Half marks a half day without saying which half.
	Half []string
	// Annual names a full day off. It only sets the kind of a cancellation;
	// creations need an explicit all-day keyword.
	Annual []string
}

// DefaultLexicon returns the built-in keyword set.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Cancel:    []string{"취소", "cancel"},
		AllDay:    []string{"하루종일", "all day", "all-day", "full day"},
		Morning:   []string{"오전", "morning"},
		Afternoon: []string{"오후", "afternoon"},
		Half:      []string{"반차", "half day", "half-day"},
		Annual:    []string{"연차", "annual leave"},
	}
}

// Merge returns l with every non-empty list in override replacing its own.
func (l Lexicon) Merge(override Lexicon) Lexicon {
	pick := func(base, over []string) []string {
		if len(over) > 0 {
			return over
		}
		return base
	}
	return Lexicon{
		Cancel:    pick(l.Cancel, override.Cancel),
		AllDay:    pick(l.AllDay, override.AllDay),
		Morning:   pick(l.Morning, override.Morning),
		Afternoon: pick(l.Afternoon, override.Afternoon),
		Half:      pick(l.Half, override.Half),
		Annual:    pick(l.Annual, override.Annual),
	}
}
