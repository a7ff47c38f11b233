package domain

import (
	"context"
	"regexp"
	"time"
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidKey reports whether key can name a content item and its files.
func ValidKey(key string) bool {
	return keyRe.MatchString(key)
}

type Artifact struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	ModTime  time.Time `json:"modTime"`
	Exists   bool      `json:"exists"`
	Segments int       `json:"segments"`
	Failed   int       `json:"failed"`
}

// ArtifactName is the storage name of the audio for a content item.
func ArtifactName(key string) string {
	return "post-" + key + ".mp3"
}

// ArtifactStore keeps the finished audio files.
// Stat reports the modification time, ok is false when the file does not exist.
type ArtifactStore interface {
	Stat(ctx context.Context, name string) (modTime time.Time, ok bool, err error)
	Write(ctx context.Context, name string, data []byte, appendTo bool) error
	Delete(ctx context.Context, name string) error
	URL(name string) string
}
