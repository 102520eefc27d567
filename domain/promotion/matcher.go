package promotion

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher finds promotions mentioned in free-form chat text by
// scanning for their keywords with an Aho-Corasick automaton. Build it
// once per aggregate snapshot; matching is read-only.
type Matcher struct {
	machine *goahocorasick.Machine
	// byKeyword maps a normalized keyword to the ids of the
	// promotions that declare it, in insertion order.
	byKeyword map[string][]string
	config    *Config
}

// NewMatcher indexes every keyword of the aggregate's promotions.
// Returns a matcher that never matches when no promotion declares a
// keyword.
func NewMatcher(c *Config) (*Matcher, error) {
	byKeyword := map[string][]string{}
	for _, item := range c.Promotions {
		for _, kw := range item.Keywords {
			norm := string(normalizeRunes([]rune(kw)))
			if norm == "" {
				continue
			}
			byKeyword[norm] = append(byKeyword[norm], item.PromotionID)
		}
	}
	m := &Matcher{byKeyword: byKeyword, config: c}
	if len(byKeyword) == 0 {
		return m, nil
	}
	patterns := make([][]rune, 0, len(byKeyword))
	for kw := range byKeyword {
		patterns = append(patterns, []rune(kw))
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.machine = machine
	return m, nil
}

// Match returns the promotions whose keywords occur in text, in
// aggregate insertion order, each at most once. Matching is
// case-insensitive and ignores punctuation.
func (m *Matcher) Match(text string) []Item {
	if m.machine == nil {
		return nil
	}
	normalized := normalizeRunes([]rune(text))
	terms := m.machine.MultiPatternSearch(normalized, false)
	if len(terms) == 0 {
		return nil
	}
	matched := map[string]bool{}
	for _, term := range terms {
		for _, id := range m.byKeyword[string(term.Word)] {
			matched[id] = true
		}
	}
	var out []Item
	for _, item := range m.config.Promotions {
		if matched[item.PromotionID] {
			out = append(out, item)
		}
	}
	return out
}

// normalizeRunes lowercases and strips punctuation and symbols so
// "Free-Bet!" and "FREEBET" both reduce to "freebet".
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
