package tutorial

import (
	"testing"

	"chatbet-models/errors"

	"github.com/stretchr/testify/require"
)

func validParams() ItemParams {
	return ItemParams{
		StorageKey: "betvip/tutorials/how-to-bet.mp4",
		Title:      "How to place your first bet",
		FileName:   "how-to-bet.mp4",
		FileSize:   15_728_640,
		FileType:   "video/mp4",
	}
}

func TestNewItem(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		modify  func(*ItemParams)
		field   string
		wantErr bool
	}{
		{
			name:   "valid",
			modify: func(*ItemParams) {},
		},
		{
			name:    "missing storage key",
			modify:  func(p *ItemParams) { p.StorageKey = "" },
			field:   "s3_key",
			wantErr: true,
		},
		{
			name:    "missing title",
			modify:  func(p *ItemParams) { p.Title = "" },
			field:   "title",
			wantErr: true,
		},
		{
			name:    "zero file size",
			modify:  func(p *ItemParams) { p.FileSize = 0 },
			field:   "file_size",
			wantErr: true,
		},
		{
			name:    "negative file size",
			modify:  func(p *ItemParams) { p.FileSize = -1 },
			field:   "file_size",
			wantErr: true,
		},
		{
			name:    "unknown mime type",
			modify:  func(p *ItemParams) { p.FileType = "video/betamax" },
			field:   "file_type",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.modify(&p)
			item, err := NewItem(p)
			if !tt.wantErr {
				req.NoError(err, "test=%s", tt.name)
				req.NotEmpty(item.TutorialID)
				req.NotEmpty(item.UploadedAt)
				return
			}
			v, ok := errors.AsValidation(err)
			req.True(ok, "test=%s", tt.name)
			var fields []string
			for _, f := range v.Fields {
				fields = append(fields, f.Field)
			}
			req.Contains(fields, tt.field, "test=%s", tt.name)
		})
	}
}

func TestTutorials_AddRemoveGet(t *testing.T) {
	req := require.New(t)

	agg := FromMinimal()

	item, err := agg.Add(validParams())
	req.NoError(err)
	req.NotNil(agg.Get(item.TutorialID))

	p := validParams()
	p.TutorialID = item.TutorialID
	_, err = agg.Add(p)
	req.Error(err)

	// The same stored video may appear under two entries.
	second, err := agg.Add(validParams())
	req.NoError(err)
	req.NotEqual(item.TutorialID, second.TutorialID)

	req.True(agg.Remove(item.TutorialID))
	req.False(agg.Remove(item.TutorialID))
	req.Nil(agg.Get(item.TutorialID))
	req.Len(agg.Items, 1)
}

func TestParse(t *testing.T) {
	req := require.New(t)

	payload := `{
		"tutorials": [{
			"tutorial_id": "t-1",
			"s3_key": "betvip/tutorials/how-to-bet.mp4",
			"title": "How to bet",
			"file_name": "how-to-bet.mp4",
			"file_size": 1024,
			"file_type": "video/mp4",
			"uploaded_at": "2026-01-05T14:30:00Z"
		}],
		"created_at": "2026-01-05T14:30:00Z",
		"updated_at": "2026-01-05T14:30:00Z"
	}`
	agg, err := Parse([]byte(payload))
	req.NoError(err)
	req.Len(agg.Items, 1)
	req.Equal("t-1", agg.Items[0].TutorialID)

	_, err = Parse([]byte(`{"tutorials":[],"mystery":1}`))
	req.Error(err)
}

func TestVideoDTOs(t *testing.T) {
	req := require.New(t)

	item, err := NewItem(validParams())
	req.NoError(err)

	video := VideoFromItem(item, "https://cdn.example/how-to-bet.mp4")
	req.Equal(item.StorageKey, video.Key)
	req.Equal(item.TutorialID, video.TutorialID)
	req.Equal("https://cdn.example/how-to-bet.mp4", video.URL)

	resp := NewGetVideosResponse([]Video{video})
	req.Equal(1, resp.Count)

	empty := NewGetVideosResponse(nil)
	req.NotNil(empty.Videos)
	req.Equal(0, empty.Count)
}

func TestTutorialsDB_RoundTrip(t *testing.T) {
	req := require.New(t)

	d := FromMinimalDB("betvip")
	_, err := d.Add(validParams())
	req.NoError(err)

	item, err := d.Item()
	req.NoError(err)

	restored, err := FromItem(item)
	req.NoError(err)
	req.Equal(d, restored)
	req.Equal("company#betvip", restored.PK)
	req.Equal("tutorials", restored.SK)
}
