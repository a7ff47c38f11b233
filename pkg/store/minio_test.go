package store

import (
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func TestMinioStoreURL(t *testing.T) {
	t.Parallel()

	client, err := minio.New("minio.local:9000", &minio.Options{Creds: credentials.NewStaticV4("", "", "")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := newMinioStore(client, "speaker", "/audio/", "")
	if got, want := s.URL("post-7.mp3"), "http://minio.local:9000/speaker/audio/post-7.mp3"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	s = newMinioStore(client, "speaker", "", "https://cdn.example.com/speaker/")
	if got, want := s.URL("post-7.mp3"), "https://cdn.example.com/speaker/post-7.mp3"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
