package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_LegacyShapes(t *testing.T) {
	req := require.New(t)

	raw := map[string]any{}
	payload := `{
		"menu": {
			"support_message": "Contact us",
			"deposit": {"text": "Deposit here"},
			"deposit_message": "stale alias"
		},
		"combos": {
			"errro_to_place_bet": "Could not place your combo",
			"sumary_after_bet": {"text": "Your combo summary"}
		},
		"onboarding": {
			"greeting_message": "Hello!"
		}
	}`
	req.NoError(json.Unmarshal([]byte(payload), &raw))

	Normalize(raw)

	menu := raw["menu"].(map[string]any)
	req.Equal(map[string]any{"text": "Contact us"}, menu["support"])
	req.NotContains(menu, "support_message")
	// The current spelling wins over its alias.
	req.Equal(map[string]any{"text": "Deposit here"}, menu["deposit"])

	combos := raw["combos"].(map[string]any)
	req.Equal(map[string]any{"text": "Could not place your combo"}, combos["error_to_place_bet"])
	req.Equal(map[string]any{"text": "Your combo summary"}, combos["summary_after_bet"])
	req.Equal(map[string]any{"text": "Recommended combos"}, combos["combos_recommendation"])

	onboarding := raw["onboarding"].(map[string]any)
	req.Equal(map[string]any{"text": "Hello!"}, onboarding["greeting_message"])

	// Idempotent: a second pass changes nothing.
	before, err := json.Marshal(raw)
	req.NoError(err)
	Normalize(raw)
	after, err := json.Marshal(raw)
	req.NoError(err)
	req.JSONEq(string(before), string(after))
}

func TestParse(t *testing.T) {
	req := require.New(t)

	templates, err := Parse([]byte(`{
		"menu": {"support_message": "Contact us"},
		"bets": {"select_sport": "Pick a sport"}
	}`))
	req.NoError(err)
	req.Equal("Contact us", templates.Menu.Support.Text)
	req.Equal("Pick a sport", templates.Bets.SelectSport.Text)

	_, err = Parse([]byte(`{"menu": {"not_a_menu_field": "x"}}`))
	req.Error(err)

	_, err = Parse([]byte(`[1,2,3]`))
	req.Error(err)
}

func TestFromMinimal(t *testing.T) {
	req := require.New(t)

	templates, err := FromMinimal()
	req.NoError(err)
	req.NoError(templates.Validate())

	req.NotNil(templates.Onboarding.GreetingMessage)
	req.NotNil(templates.Menu.ShowLinks.ReplyMarkup)
	req.Equal("https://example.com/help",
		templates.Menu.ShowLinks.ReplyMarkup.InlineKeyboard[0][0].URL)
	req.False(templates.CreatedAt.IsZero())
}

func TestTemplates_Language(t *testing.T) {
	req := require.New(t)

	spanish := &Templates{
		Onboarding: &Onboarding{
			GreetingMessage: NewItem("Hola, bienvenido a nuestro canal de apuestas deportivas"),
		},
		Menu: &Menu{
			MainMenu: NewItem("Este es el menú principal, elige una opción para continuar"),
		},
	}
	req.Equal("spa", spanish.Language())

	empty := &Templates{}
	req.Equal("", empty.Language())
}

func TestTemplatesDB_RoundTrip(t *testing.T) {
	req := require.New(t)

	db, err := FromMinimalDB("betvip")
	req.NoError(err)
	req.Equal("company#betvip", db.PK)
	req.Equal(SortKey, db.SK)

	item, err := db.Item()
	req.NoError(err)

	restored, err := FromItem(item)
	req.NoError(err)
	req.Equal(db, restored)
}

func TestNewDB_Keys(t *testing.T) {
	req := require.New(t)

	base, err := FromMinimal()
	req.NoError(err)

	db, err := NewDB(*base, "betvip")
	req.NoError(err)
	req.Equal("company#betvip", db.PK)
	req.Equal("message_templates", db.SK)
}
