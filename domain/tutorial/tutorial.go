// Package tutorial models the video tutorials a tenant offers its
// members. The library validates and projects the catalogue; the
// videos themselves live in an object store the library never touches.
package tutorial

import (
	"time"

	"chatbet-models/errors"
	"chatbet-models/validation"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const maxTutorials = 100

// Item is one catalogued tutorial video.
type Item struct {
	TutorialID string `json:"tutorial_id" dynamodbav:"tutorial_id" validate:"required"`
	StorageKey string `json:"s3_key" dynamodbav:"s3_key" validate:"required"`
	Title      string `json:"title" dynamodbav:"title" validate:"required"`
	FileName   string `json:"file_name" dynamodbav:"file_name" validate:"required"`
	FileSize   int64  `json:"file_size" dynamodbav:"file_size" validate:"required,gt=0"`
	FileType   string `json:"file_type" dynamodbav:"file_type" validate:"required"`
	UploadedAt string `json:"uploaded_at" dynamodbav:"uploaded_at" validate:"required"`
}

// Validate checks structural constraints and that FileType is a known
// MIME type.
func (i *Item) Validate() error {
	v := &errors.ValidationError{}
	if err := validation.Struct(i); err != nil {
		v.Merge("", err)
	}
	if i.FileType != "" && mimetype.Lookup(i.FileType) == nil {
		v.Add("file_type", "unknown MIME type "+i.FileType)
	}
	return v.OrNil()
}

// ItemParams are the inputs of a new tutorial; TutorialID defaults to
// a fresh UUID and UploadedAt to the current time.
type ItemParams struct {
	TutorialID string
	StorageKey string
	Title      string
	FileName   string
	FileSize   int64
	FileType   string
	UploadedAt string
}

// NewItem builds and validates a tutorial entry.
func NewItem(p ItemParams) (*Item, error) {
	id := p.TutorialID
	if id == "" {
		id = uuid.NewString()
	}
	uploadedAt := p.UploadedAt
	if uploadedAt == "" {
		uploadedAt = time.Now().UTC().Format(time.RFC3339)
	}
	item := &Item{
		TutorialID: id,
		StorageKey: p.StorageKey,
		Title:      p.Title,
		FileName:   p.FileName,
		FileSize:   p.FileSize,
		FileType:   p.FileType,
		UploadedAt: uploadedAt,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Tutorials is the catalogue aggregate of one tenant. Entries keep
// insertion order; tutorial ids are unique. Storage keys are not
// required to be unique: two entries may reference the same stored
// video under different titles.
type Tutorials struct {
	Items []Item `json:"tutorials" dynamodbav:"tutorials"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// FromMinimal builds an empty catalogue.
func FromMinimal() *Tutorials {
	now := time.Now().UTC()
	return &Tutorials{Items: []Item{}, CreatedAt: now, UpdatedAt: now}
}

func (t *Tutorials) Validate() error {
	v := &errors.ValidationError{}
	if len(t.Items) > maxTutorials {
		v.Add("tutorials", "maximum 100 tutorials allowed")
	}
	seen := map[string]bool{}
	for idx := range t.Items {
		if err := t.Items[idx].Validate(); err != nil {
			v.Merge("tutorials", err)
		}
		id := t.Items[idx].TutorialID
		if seen[id] {
			v.Add("tutorials", "duplicate tutorial_id "+id)
		}
		seen[id] = true
	}
	return v.OrNil()
}

// Touch refreshes the update timestamp.
func (t *Tutorials) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// Add validates and appends a new tutorial. A params id colliding with
// an existing tutorial is rejected.
func (t *Tutorials) Add(p ItemParams) (*Item, error) {
	item, err := NewItem(p)
	if err != nil {
		return nil, err
	}
	if len(t.Items) >= maxTutorials {
		return nil, errors.NewValidation("tutorials", "maximum 100 tutorials allowed")
	}
	if t.Get(item.TutorialID) != nil {
		return nil, errors.NewValidation("tutorial_id", "duplicate tutorial_id "+item.TutorialID)
	}
	t.Items = append(t.Items, *item)
	t.Touch()
	return item, nil
}

// Remove deletes a tutorial by id. Returns true when a tutorial was
// removed, false when the id is unknown.
func (t *Tutorials) Remove(tutorialID string) bool {
	for idx := range t.Items {
		if t.Items[idx].TutorialID == tutorialID {
			t.Items = append(t.Items[:idx], t.Items[idx+1:]...)
			t.Touch()
			return true
		}
	}
	return false
}

// Get returns the tutorial with the given id, or nil.
func (t *Tutorials) Get(tutorialID string) *Item {
	for idx := range t.Items {
		if t.Items[idx].TutorialID == tutorialID {
			return &t.Items[idx]
		}
	}
	return nil
}

// Parse builds a validated catalogue from a raw payload.
func Parse(data []byte) (*Tutorials, error) {
	t := &Tutorials{}
	if err := validation.DecodeStrict(data, t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
