package legacy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name:     "moves old key to new",
			input:    map[string]any{"support_message": "text"},
			expected: map[string]any{"support": "text"},
		},
		{
			name:     "new key wins when both are present",
			input:    map[string]any{"support_message": "old", "support": "new"},
			expected: map[string]any{"support_message": "old", "support": "new"},
		},
		{
			name:     "absent old key is a no-op",
			input:    map[string]any{"other": 1},
			expected: map[string]any{"other": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Rename(tt.input, "support_message", "support")
			req.Equal(tt.expected, tt.input)

			// Idempotent: a second application changes nothing.
			Rename(tt.input, "support_message", "support")
			req.Equal(tt.expected, tt.input)
		})
	}
}

func TestRenamePrefix(t *testing.T) {
	req := require.New(t)

	m := map[string]any{
		"sumary_bet":   "a",
		"sumary_combo": "b",
		"summary_bet":  "kept",
		"unrelated":    "c",
	}
	RenamePrefix(m, "sumary_", "summary_")

	req.Equal(map[string]any{
		"sumary_bet":    "a",
		"summary_bet":   "kept",
		"summary_combo": "b",
		"unrelated":     "c",
	}, m)
}

func TestWrapString(t *testing.T) {
	req := require.New(t)

	m := map[string]any{
		"welcome": "Hello!",
		"menu":    map[string]any{"text": "Pick one"},
		"count":   3,
	}
	WrapStrings(m, "text")

	req.Equal(map[string]any{
		"welcome": map[string]any{"text": "Hello!"},
		"menu":    map[string]any{"text": "Pick one"},
		"count":   3,
	}, m)

	WrapStrings(m, "text")
	req.Equal(map[string]any{"text": "Hello!"}, m["welcome"])
}

func TestEnsureDefault(t *testing.T) {
	req := require.New(t)

	m := map[string]any{"enabled": false, "token": nil}

	EnsureDefault(m, "enabled", true)
	req.Equal(false, m["enabled"])

	EnsureDefault(m, "token", "placeholder")
	req.Equal("placeholder", m["token"])

	EnsureDefault(m, "provider", "whapi")
	req.Equal("whapi", m["provider"])
}

func TestSection(t *testing.T) {
	req := require.New(t)

	m := map[string]any{"locale": map[string]any{"currency": "USD"}, "flag": true}

	sub, ok := Section(m, "locale")
	req.True(ok)
	req.Equal("USD", sub["currency"])

	_, ok = Section(m, "flag")
	req.False(ok)

	_, ok = Section(m, "missing")
	req.False(ok)
}
