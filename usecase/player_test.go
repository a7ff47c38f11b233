package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"speaker/domain"
)

func TestPlayer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.config.Player.Link = "frontend"
	p := NewPlayerUsecase(testLogger(), env.config, env.store)
	ctx := context.Background()

	if _, ok := p.ArtifactURL(ctx, "5"); ok {
		t.Fatal("expected no url before audio exists")
	}
	if _, ok := p.PlayerMarkup(ctx, "5", domain.RenderModeNormal); ok {
		t.Fatal("expected no player before audio exists")
	}

	if err := env.store.Write(ctx, domain.ArtifactName("5"), []byte("mp3"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mod := time.Unix(1700000000, 0)
	if err := os.Chtimes(filepath.Join(env.store.Dir(), domain.ArtifactName("5")), mod, mod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, ok := p.ArtifactURL(ctx, "5")
	if !ok {
		t.Fatal("expected a url")
	}
	if want := "http://example.com/audio/post-5.mp3?cb=1700000000.mp3"; url != want {
		t.Errorf("expected %s, got %s", want, url)
	}

	markup, ok := p.PlayerMarkup(ctx, "5", domain.RenderModeNormal)
	if !ok {
		t.Fatal("expected player markup")
	}
	for _, want := range []string{`<audio`, `preload="metadata"`, fmt.Sprintf(`src="%s"`, url), `speaker-download`} {
		if !strings.Contains(markup, want) {
			t.Errorf("expected markup to contain %s, got %s", want, markup)
		}
	}

	if _, ok := p.PlayerMarkup(ctx, "5", domain.RenderModeContent); ok {
		t.Error("expected no player in a speech render")
	}

	if err := p.RemoveArtifact(ctx, "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.ArtifactURL(ctx, "5"); ok {
		t.Error("expected no url after removal")
	}
	if err := p.RemoveArtifact(ctx, "../5"); !errors.Is(err, domain.ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestPlayerWithoutDownloadLink(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.config.Player.Link = "backend"
	p := NewPlayerUsecase(testLogger(), env.config, env.store)
	ctx := context.Background()
	if err := env.store.Write(ctx, domain.ArtifactName("6"), []byte("mp3"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	markup, ok := p.PlayerMarkup(ctx, "6", domain.RenderModeNormal)
	if !ok {
		t.Fatal("expected player markup")
	}
	if strings.Contains(markup, "speaker-download") {
		t.Errorf("expected no download link, got %s", markup)
	}
}
