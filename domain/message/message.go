// Package message defines the validated message templates a bot
// runtime renders in a conversation: text items, inline keyboards, and
// the per-area template groups. Records are immutable by convention
// and checked at construction. No rendering or delivery logic lives
// here.
package message

import (
	"chatbet-models/errors"
	"chatbet-models/validation"
)

// InlineKeyboardButton is one pressable button. Exactly one of
// CallbackData (an in-bot action) and URL (an external link) must be
// set; the two are mutually exclusive.
type InlineKeyboardButton struct {
	Text         string `json:"text" dynamodbav:"text" validate:"required,min=1"`
	CallbackData string `json:"callback_data,omitempty" dynamodbav:"callback_data,omitempty" validate:"required_without=URL,excluded_with=URL,max=64"`
	URL          string `json:"url,omitempty" dynamodbav:"url,omitempty" validate:"omitempty,url"`
}

// InlineKeyboardMarkup is a grid of buttons, one slice per row.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard" dynamodbav:"inline_keyboard" validate:"omitempty,dive,dive"`
}

// Item is the message primitive: a non-empty text plus an optional
// inline keyboard.
type Item struct {
	Text        string                `json:"text" dynamodbav:"text" validate:"required,min=1"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty" dynamodbav:"reply_markup,omitempty"`
}

// NewItem builds a bare text message.
func NewItem(text string) *Item {
	return &Item{Text: text}
}

func (i *Item) Validate() error {
	return validation.Struct(i)
}

// ParseItem builds an Item from a raw payload. Legacy payloads were
// allowed to send a bare string instead of an object.
func ParseItem(data []byte) (*Item, error) {
	raw := map[string]any{}
	if err := validation.DecodeStrict(data, &raw); err != nil {
		// not an object: accept the legacy bare-string form
		var s string
		if strErr := validation.DecodeStrict(data, &s); strErr != nil {
			return nil, errors.NewValidation("", "message item must be an object or a string")
		}
		raw = map[string]any{"text": s}
	}
	return itemFromMap(raw)
}

func itemFromMap(raw map[string]any) (*Item, error) {
	item := &Item{}
	if err := decodeInto(raw, item); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}
