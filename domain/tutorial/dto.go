package tutorial

// Admin API payloads for tutorial management. These use the camelCase
// field names the admin frontend expects, unlike the snake_case
// storage records.

// Video is a tutorial entry enriched with a presigned download URL.
type Video struct {
	TutorialID string `json:"tutorialId,omitempty"`
	Key        string `json:"key"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileType   string `json:"fileType"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

// VideoFromItem projects a catalogued tutorial into its API shape.
// The download URL is produced by the caller, usually a presigned
// object-store link.
func VideoFromItem(i *Item, url string) Video {
	return Video{
		TutorialID: i.TutorialID,
		Key:        i.StorageKey,
		Title:      i.Title,
		URL:        url,
		FileName:   i.FileName,
		FileSize:   i.FileSize,
		FileType:   i.FileType,
		UploadedAt: i.UploadedAt,
	}
}

// GetVideosResponse lists a tenant's tutorial videos.
type GetVideosResponse struct {
	Videos []Video `json:"videos"`
	Count  int     `json:"count"`
}

// NewGetVideosResponse builds a listing response; Count always matches
// the slice length.
func NewGetVideosResponse(videos []Video) GetVideosResponse {
	if videos == nil {
		videos = []Video{}
	}
	return GetVideosResponse{Videos: videos, Count: len(videos)}
}

// UploadVideoResponse acknowledges a stored upload.
type UploadVideoResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	VideoURL   string `json:"videoUrl"`
	VideoKey   string `json:"videoKey"`
	Title      string `json:"title"`
	TutorialID string `json:"tutorialId"`
}

// DeleteVideoResponse acknowledges a deletion.
type DeleteVideoResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	DeletedKey        string `json:"deletedKey"`
	DeletedTutorialID string `json:"deletedTutorialId,omitempty"`
}
