package entity

import (
	"fmt"
	"strings"
	"time"
)

type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeAudio    MediaType = "AUDIO"
	MediaTypeDocument MediaType = "DOCUMENT"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeAudio, MediaTypeDocument:
		return true
	}
	return false
}

// StoragePrefix is the key prefix media of this type is stored under.
func (t MediaType) StoragePrefix() string {
	return strings.ToLower(string(t)) + "s"
}

const mb = 1 << 20

type mediaRule struct {
	mediaType MediaType
	maxSize   int64
	ext       string
}

var allowedMedia = map[string]mediaRule{
	"image/jpeg":         {MediaTypeImage, 5 * mb, ".jpg"},
	"image/png":          {MediaTypeImage, 5 * mb, ".png"},
	"image/gif":          {MediaTypeImage, 5 * mb, ".gif"},
	"image/webp":         {MediaTypeImage, 5 * mb, ".webp"},
	"video/mp4":          {MediaTypeVideo, 100 * mb, ".mp4"},
	"video/webm":         {MediaTypeVideo, 100 * mb, ".webm"},
	"video/quicktime":    {MediaTypeVideo, 100 * mb, ".mov"},
	"audio/mpeg":         {MediaTypeAudio, 50 * mb, ".mp3"},
	"audio/wav":          {MediaTypeAudio, 50 * mb, ".wav"},
	"audio/ogg":          {MediaTypeAudio, 50 * mb, ".ogg"},
	"application/pdf":    {MediaTypeDocument, 10 * mb, ".pdf"},
	"application/msword": {MediaTypeDocument, 10 * mb, ".doc"},

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {MediaTypeDocument, 10 * mb, ".docx"},
}

// ClassifyMedia maps a MIME type to its media type, size cap and default
// extension. ok is false for unsupported types.
func ClassifyMedia(mimeType string) (t MediaType, maxSize int64, ext string, ok bool) {
	mimeType = strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	rule, ok := allowedMedia[mimeType]
	if !ok {
		return "", 0, "", false
	}
	return rule.mediaType, rule.maxSize, rule.ext, true
}

// NewStorageKey builds "<type>s/<unix-ms>-<random><ext>". ext always comes
// from the allowlisted MIME type, never from the client's filename, since
// static serving derives Content-Type from it.
func NewStorageKey(t MediaType, ext string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s%s", t.StoragePrefix(), now.UnixMilli(), randomSuffix(slugSuffixLen), ext)
}

type Media struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Type         MediaType `json:"type"`
	StorageKey   string    `json:"-"`
	URL          string    `json:"url"`
	AltText      string    `json:"altText,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	Credit       string    `json:"credit,omitempty"`
	UsageCount   int       `json:"usageCount"`
	UploadedByID string    `json:"uploadedById"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MediaFilter struct {
	OwnerID string
	Type    MediaType
	Search  string
}

type StorageUsage struct {
	TotalFiles  int64   `json:"totalFiles"`
	TotalSize   int64   `json:"totalSize"`
	TotalSizeMB float64 `json:"totalSizeMB"`
}
