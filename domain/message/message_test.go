package message

import (
	"testing"

	"chatbet-models/errors"

	"github.com/stretchr/testify/require"
)

func TestInlineKeyboardButton_Validate(t *testing.T) {
	req := require.New(t)

	valid := Item{
		Text: "Pick an option",
		ReplyMarkup: &InlineKeyboardMarkup{
			InlineKeyboard: [][]InlineKeyboardButton{
				{{Text: "Bet now", CallbackData: "bet"}},
				{{Text: "Help", URL: "https://example.com/help"}},
			},
		},
	}

	tests := []struct {
		name    string
		modify  func(*Item)
		wantErr bool
	}{
		{
			name:   "callback button and url button",
			modify: func(*Item) {},
		},
		{
			name: "neither callback nor url",
			modify: func(i *Item) {
				i.ReplyMarkup.InlineKeyboard[0][0] = InlineKeyboardButton{Text: "Bet now"}
			},
			wantErr: true,
		},
		{
			name: "both callback and url",
			modify: func(i *Item) {
				i.ReplyMarkup.InlineKeyboard[0][0] = InlineKeyboardButton{
					Text: "Bet now", CallbackData: "bet", URL: "https://example.com",
				}
			},
			wantErr: true,
		},
		{
			name: "empty button text",
			modify: func(i *Item) {
				i.ReplyMarkup.InlineKeyboard[0][0].Text = ""
			},
			wantErr: true,
		},
		{
			name: "malformed url",
			modify: func(i *Item) {
				i.ReplyMarkup.InlineKeyboard[1][0].URL = "not a url"
			},
			wantErr: true,
		},
		{
			name: "empty item text",
			modify: func(i *Item) {
				i.Text = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			markup := *valid.ReplyMarkup
			rows := make([][]InlineKeyboardButton, len(markup.InlineKeyboard))
			for r := range markup.InlineKeyboard {
				rows[r] = append([]InlineKeyboardButton(nil), markup.InlineKeyboard[r]...)
			}
			markup.InlineKeyboard = rows
			item.ReplyMarkup = &markup

			tt.modify(&item)
			err := item.Validate()
			if tt.wantErr {
				req.Error(err, "test=%s", tt.name)
			} else {
				req.NoError(err, "test=%s", tt.name)
			}
		})
	}
}

func TestParseItem(t *testing.T) {
	req := require.New(t)

	item, err := ParseItem([]byte(`{"text":"Main menu"}`))
	req.NoError(err)
	req.Equal("Main menu", item.Text)

	// Legacy payloads sent bare strings.
	item, err = ParseItem([]byte(`"Main menu"`))
	req.NoError(err)
	req.Equal("Main menu", item.Text)

	_, err = ParseItem([]byte(`{"text":"hi","typo_field":1}`))
	v, ok := errors.AsValidation(err)
	req.True(ok)
	req.Equal("typo_field", v.Fields[0].Field)

	_, err = ParseItem([]byte(`{"text":""}`))
	req.Error(err)

	_, err = ParseItem([]byte(`42`))
	req.Error(err)
}
