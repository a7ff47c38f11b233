package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
)

const playerHTML = `<div class="speaker-wrapper speaker-{{.Position}} {{.Style}}" style="background-color: {{.BgColor}}">
	<audio class="speaker-player" controls preload="metadata" src="{{.URL}}"></audio>
	{{- if .Download}}
	<a class="speaker-download" href="{{.URL}}" download>Download audio</a>
	{{- end}}
</div>`

var playerTmpl = template.Must(template.New("player").Parse(playerHTML))

type PlayerUsecase struct {
	l      *log.Logger
	config *config.Config
	store  domain.ArtifactStore
}

func NewPlayerUsecase(l *log.Logger, c *config.Config, store domain.ArtifactStore) *PlayerUsecase {
	return &PlayerUsecase{
		l:      l.WithModule("PlayerUsecase"),
		config: c,
		store:  store,
	}
}

// ArtifactURL returns the public address of the audio with a cache buster
// taken from its modification time, ok is false when there is no audio.
func (p *PlayerUsecase) ArtifactURL(ctx context.Context, key string) (string, bool) {
	if !domain.ValidKey(key) {
		return "", false
	}
	name := domain.ArtifactName(key)
	modTime, ok, err := p.store.Stat(ctx, name)
	if err != nil {
		p.l.Error("stat audio", log.String("key", key), log.Error(err))
		return "", false
	}
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s?cb=%d.mp3", p.store.URL(name), modTime.Unix()), true
}

// PlayerMarkup renders the audio player of key. Nothing is rendered for
// speech fetches, the player must not end up in the spoken text.
func (p *PlayerUsecase) PlayerMarkup(ctx context.Context, key string, mode domain.RenderMode) (string, bool) {
	if mode.IsSpeech() {
		return "", false
	}
	url, ok := p.ArtifactURL(ctx, key)
	if !ok {
		return "", false
	}

	var buf bytes.Buffer
	err := playerTmpl.Execute(&buf, map[string]any{
		"URL":      url,
		"Position": p.config.Player.Position,
		"Style":    p.config.Player.Style,
		"BgColor":  p.config.Player.BgColor,
		"Download": p.config.Player.Link == "frontend" || p.config.Player.Link == "backend-and-frontend",
	})
	if err != nil {
		p.l.Error("render player", log.String("key", key), log.Error(err))
		return "", false
	}
	return buf.String(), true
}

func (p *PlayerUsecase) RemoveArtifact(ctx context.Context, key string) error {
	if !domain.ValidKey(key) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	if err := p.store.Delete(ctx, domain.ArtifactName(key)); err != nil {
		return fmt.Errorf("failed to remove audio of %s: %w", key, err)
	}
	return nil
}
