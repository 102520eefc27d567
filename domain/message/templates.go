package message

import (
	"encoding/json"
	"strings"
	"time"

	"chatbet-models/errors"
	"chatbet-models/legacy"
	"chatbet-models/validation"

	"github.com/abadojack/whatlanggo"
)

// Templates is the aggregate of every message group a tenant has
// configured.
type Templates struct {
	Onboarding   *Onboarding   `json:"onboarding,omitempty" dynamodbav:"onboarding,omitempty"`
	Validation   *Validation   `json:"validation,omitempty" dynamodbav:"validation,omitempty"`
	Registration *Registration `json:"registration,omitempty" dynamodbav:"registration,omitempty"`
	Menu         *Menu         `json:"menu,omitempty" dynamodbav:"menu,omitempty"`
	Bets         *Bets         `json:"bets,omitempty" dynamodbav:"bets,omitempty"`
	Combos       *Combos       `json:"combos,omitempty" dynamodbav:"combos,omitempty"`
	Errors       *Errors       `json:"errors,omitempty" dynamodbav:"errors,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty" dynamodbav:"confirmation,omitempty"`
	Labels       *Labels       `json:"labels,omitempty" dynamodbav:"labels,omitempty"`
	End          *End          `json:"end,omitempty" dynamodbav:"end,omitempty"`
	Guidance     *Guidance     `json:"guidance,omitempty" dynamodbav:"guidance,omitempty"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// groupKeys lists every template group accepting message items.
var groupKeys = []string{
	"onboarding", "validation", "registration", "menu", "bets",
	"combos", "errors", "confirmation", "labels", "end", "guidance",
}

// menuRenames maps deprecated menu field names to their current
// spelling. Consulted by Normalize; renames never overwrite a field
// already present under the new name.
var menuRenames = map[string]string{
	"support_message":    "support",
	"withdrawal_message": "withdrawal",
	"deposit_message":    "deposit",
	"show_links_message": "show_links",
}

// Normalize rewrites legacy template payload shapes in place: menu
// field aliases, combos typos, combos defaults, and bare strings
// wrapped into {"text": ...}. Idempotent.
func Normalize(raw map[string]any) {
	if menu, ok := legacy.Section(raw, "menu"); ok {
		legacy.ApplyRenames(menu, menuRenames)
	}
	if combos, ok := legacy.Section(raw, "combos"); ok {
		legacy.Rename(combos, "errro_to_place_bet", "error_to_place_bet")
		legacy.RenamePrefix(combos, "sumary_", "summary_")
		legacy.EnsureDefault(combos, "combos_recommendation",
			map[string]any{"text": "Recommended combos"})
		legacy.EnsureDefault(combos, "combos_confirm_add_recommended",
			map[string]any{"text": "Do you want to add these recommended combos?"})
	}
	for _, key := range groupKeys {
		if group, ok := legacy.Section(raw, key); ok {
			legacy.WrapStrings(group, "text")
		}
	}
}

// Parse builds validated Templates from a raw payload, accepting
// legacy shapes.
func Parse(data []byte) (*Templates, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidation("", "payload is not an object: "+err.Error())
	}
	Normalize(raw)
	t := &Templates{}
	if err := decodeInto(raw, t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Templates) Validate() error {
	return validation.Struct(t)
}

// Touch refreshes the update timestamp after an aggregate mutation.
func (t *Templates) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// FromMinimal builds a fully populated template set with baseline
// texts, so a new tenant has something to say in every flow.
func FromMinimal() (*Templates, error) {
	now := time.Now().UTC()
	t := &Templates{
		Onboarding: &Onboarding{
			MemberOnboarding: NewItem("Welcome to our chatbot!"),
			GreetingMessage:  NewItem("Hello! 👋 How can I help you today?"),
		},
		Validation: &Validation{
			MemberValidation: NewItem("Please validate your account."),
			SendOTP:          NewItem("We've sent you an OTP."),
			BadOTP:           NewItem("Invalid OTP, try again."),
		},
		Registration: &Registration{
			NotRegisteredUser: NewItem("You are not registered."),
		},
		Menu: &Menu{
			MainMenu: NewItem("Main menu"),
			ShowLinks: &Item{
				Text: "Quick links",
				ReplyMarkup: &InlineKeyboardMarkup{
					InlineKeyboard: [][]InlineKeyboardButton{
						{{Text: "Help", URL: "https://example.com/help"}},
					},
				},
			},
		},
		Bets: &Bets{
			SelectSport:      NewItem("Select a sport"),
			SelectTournament: NewItem("Select a tournament"),
			BetAmount:        NewItem("Enter your bet amount"),
		},
		Combos: &Combos{
			ShowAllMarketsByFixtures:    NewItem("Showing all markets"),
			CombosRecommendation:        NewItem("Recommended combos"),
			CombosConfirmAddRecommended: NewItem("Do you want to add these recommended combos?"),
		},
		Errors: &Errors{
			InvalidInput: NewItem("Invalid input."),
			Error:        NewItem("An error occurred."),
		},
		Confirmation: &Confirmation{
			ConfirmBet: NewItem("Confirm your bet?"),
		},
		Labels: &Labels{
			MenuLabelText:         NewItem("Menu"),
			ListFixturesLabelText: NewItem("Fixtures"),
		},
		End: &End{
			EndConversation: NewItem("Bye!"),
		},
		Guidance: &Guidance{
			ValidInputText:   NewItem("Looks good ✅"),
			InvalidInputText: NewItem("Please check your input ⚠️"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Language reports the dominant language of the configured texts as an
// ISO 639-3 code, so admin tooling can cross-check a tenant's locale.
// Returns "" when no text is configured.
func (t *Templates) Language() string {
	texts := t.texts()
	if len(texts) == 0 {
		return ""
	}
	info := whatlanggo.Detect(strings.Join(texts, "\n"))
	return whatlanggo.LangToString(info.Lang)
}

// texts collects every configured text value, including button labels.
func (t *Templates) texts() []string {
	buf, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	var tree any
	if err := json.Unmarshal(buf, &tree); err != nil {
		return nil
	}
	var out []string
	collectTexts(tree, &out)
	return out
}

func collectTexts(node any, out *[]string) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if k == "text" {
				if s, ok := v.(string); ok && s != "" {
					*out = append(*out, s)
				}
				continue
			}
			collectTexts(v, out)
		}
	case []any:
		for _, v := range n {
			collectTexts(v, out)
		}
	}
}

// decodeInto re-encodes a normalized payload and strict-decodes it
// into the target record, so unknown fields are rejected after the
// legacy rewrite had its chance.
func decodeInto(raw map[string]any, v any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return errors.NewValidation("", err.Error())
	}
	return validation.DecodeStrict(buf, v)
}
