package promotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func matcherConfig(t *testing.T) *Config {
	t.Helper()
	req := require.New(t)

	c := FromMinimal()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := c.Add(ItemParams{
		PromotionID: "promo-freebet",
		Title:       "Free bet week",
		StartDate:   start,
		EndDate:     end,
		Details:     "A free bet for every new member.",
		Keywords:    []string{"free bet", "freebet"},
	})
	req.NoError(err)

	_, err = c.Add(ItemParams{
		PromotionID: "promo-combo",
		Title:       "Combo boost",
		StartDate:   start,
		EndDate:     end,
		Details:     "Boosted odds on combos.",
		Keywords:    []string{"combo"},
	})
	req.NoError(err)

	return c
}

func TestMatcher_Match(t *testing.T) {
	req := require.New(t)

	m, err := NewMatcher(matcherConfig(t))
	req.NoError(err)

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "plain keyword",
			text:     "do you have a free bet for me",
			expected: []string{"promo-freebet"},
		},
		{
			name:     "case insensitive",
			text:     "FREE BET please",
			expected: []string{"promo-freebet"},
		},
		{
			name:     "punctuation ignored",
			text:     "any Free-Bet! today?",
			expected: []string{"promo-freebet"},
		},
		{
			name:     "two promotions in insertion order",
			text:     "combo plus a freebet",
			expected: []string{"promo-freebet", "promo-combo"},
		},
		{
			name:     "same promotion matched once",
			text:     "freebet freebet free bet",
			expected: []string{"promo-freebet"},
		},
		{
			name:     "no match",
			text:     "what are the odds tonight",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, item := range m.Match(tt.text) {
				ids = append(ids, item.PromotionID)
			}
			req.Equal(tt.expected, ids, "test=%s", tt.name)
		})
	}
}

func TestMatcher_NoKeywords(t *testing.T) {
	req := require.New(t)

	m, err := NewMatcher(FromMinimal())
	req.NoError(err)
	req.Nil(m.Match("free bet"))
}
