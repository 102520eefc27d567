// Package promotion models the time-bounded promotions a tenant runs
// and the keyword matching a bot uses to surface them in conversation.
package promotion

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"chatbet-models/errors"
	"chatbet-models/validation"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	maxPromotions = 100
	maxKeywordLen = 50
)

// Item is one promotion. Keywords are normalized to trimmed,
// lowercased, deduplicated form at validation time.
type Item struct {
	PromotionID string    `json:"promotion_id" dynamodbav:"promotion_id" validate:"required"`
	Title       string    `json:"title" dynamodbav:"title" validate:"required,max=200"`
	StartDate   time.Time `json:"start_date" dynamodbav:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" dynamodbav:"end_date" validate:"required"`
	Details     string    `json:"details" dynamodbav:"details" validate:"required,max=5000"`
	Keywords    []string  `json:"keywords" dynamodbav:"keywords" validate:"max=20"`
}

// ItemParams are the inputs of a new promotion; PromotionID defaults
// to a fresh UUID.
type ItemParams struct {
	PromotionID string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Details     string
	Keywords    []string
}

// NewItem builds and validates a promotion.
func NewItem(p ItemParams) (*Item, error) {
	id := p.PromotionID
	if id == "" {
		id = uuid.NewString()
	}
	item := &Item{
		PromotionID: id,
		Title:       p.Title,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Details:     p.Details,
		Keywords:    p.Keywords,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *Item) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	cleaned := lo.FilterMap(i.Keywords, func(kw string, _ int) (string, bool) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		return kw, kw != ""
	})
	i.Keywords = lo.Uniq(cleaned)
}

// Validate normalizes the title and keywords, then checks every
// structural and cross-field constraint.
func (i *Item) Validate() error {
	i.normalize()
	v := &errors.ValidationError{}
	if err := validation.Struct(i); err != nil {
		v.Merge("", err)
	}
	if i.Title != "" && isNumeric(i.Title) {
		v.Add("title", "cannot be purely numeric")
	}
	if i.Details != "" && strings.TrimSpace(i.Details) == "" {
		v.Add("details", "cannot be blank")
	}
	for _, kw := range i.Keywords {
		if runes := []rune(kw); len(runes) > maxKeywordLen {
			v.Add("keywords", "keyword too long (max 50 chars): "+string(runes[:maxKeywordLen]))
		}
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && !i.EndDate.After(i.StartDate) {
		v.Add("end_date", "must be after start_date")
	}
	return v.OrNil()
}

// Active reports whether the promotion's [start, end) interval
// contains now.
func (i *Item) Active(now time.Time) bool {
	return !i.StartDate.After(now) && now.Before(i.EndDate)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Config is the promotions aggregate of one tenant. Promotions keep
// insertion order; promotion ids are unique within the aggregate.
type Config struct {
	Promotions []Item `json:"promotions" dynamodbav:"promotions"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// FromMinimal builds an empty promotions aggregate.
func FromMinimal() *Config {
	now := time.Now().UTC()
	return &Config{Promotions: []Item{}, CreatedAt: now, UpdatedAt: now}
}

func (c *Config) Validate() error {
	v := &errors.ValidationError{}
	if len(c.Promotions) > maxPromotions {
		v.Add("promotions", "maximum 100 promotions allowed")
	}
	seen := map[string]bool{}
	for idx := range c.Promotions {
		item := &c.Promotions[idx]
		if err := item.Validate(); err != nil {
			v.Merge("promotions", err)
		}
		if seen[item.PromotionID] {
			v.Add("promotions", "duplicate promotion_id "+item.PromotionID)
		}
		seen[item.PromotionID] = true
	}
	return v.OrNil()
}

// Touch refreshes the update timestamp.
func (c *Config) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Add validates and appends a new promotion. A params id colliding
// with an existing promotion is rejected.
func (c *Config) Add(p ItemParams) (*Item, error) {
	item, err := NewItem(p)
	if err != nil {
		return nil, err
	}
	if len(c.Promotions) >= maxPromotions {
		return nil, errors.NewValidation("promotions", "maximum 100 promotions allowed")
	}
	if c.Get(item.PromotionID) != nil {
		return nil, errors.NewValidation("promotion_id", "duplicate promotion_id "+item.PromotionID)
	}
	c.Promotions = append(c.Promotions, *item)
	c.Touch()
	return item, nil
}

// Remove deletes a promotion by id. Returns true when a promotion was
// removed, false when the id is unknown.
func (c *Config) Remove(promotionID string) bool {
	for idx := range c.Promotions {
		if c.Promotions[idx].PromotionID == promotionID {
			c.Promotions = append(c.Promotions[:idx], c.Promotions[idx+1:]...)
			c.Touch()
			return true
		}
	}
	return false
}

// Get returns the promotion with the given id, or nil.
func (c *Config) Get(promotionID string) *Item {
	for idx := range c.Promotions {
		if c.Promotions[idx].PromotionID == promotionID {
			return &c.Promotions[idx]
		}
	}
	return nil
}

// Active returns the promotions whose [start, end) interval contains
// now, in insertion order.
func (c *Config) Active(now time.Time) []Item {
	return lo.Filter(c.Promotions, func(item Item, _ int) bool {
		return item.Active(now)
	})
}

// Parse builds a validated Config from a raw payload.
func Parse(data []byte) (*Config, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidation("", "payload is not an object: "+err.Error())
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewValidation("", err.Error())
	}
	c := &Config{}
	if err := validation.DecodeStrict(buf, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
