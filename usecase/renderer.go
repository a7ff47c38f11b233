package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/ssml"
	"strings"
)

// Renderer fetches the rendered page of a content item over HTTP.
type Renderer struct {
	l      *log.Logger
	config *config.Config
	client *http.Client
}

func NewRenderer(l *log.Logger, c *config.Config) *Renderer {
	return &Renderer{
		l:      l.WithModule("Renderer"),
		config: c,
		client: &http.Client{Timeout: c.Renderer.Timeout},
	}
}

// URL is the address of the item rendered for mode.
func (r *Renderer) URL(key string, mode domain.RenderMode) (string, error) {
	raw := strings.ReplaceAll(r.config.Renderer.URLPattern, "{id}", url.QueryEscape(key))
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid renderer url %q: %w", raw, err)
	}
	q := u.Query()
	if mode.IsSpeech() {
		q.Set("speaker-ssml", "1")
	}
	if mode == domain.RenderModeContent {
		q.Set("speaker-template", r.config.Renderer.TemplateName)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (r *Renderer) Fetch(ctx context.Context, key string, mode domain.RenderMode) (string, error) {
	target, err := r.URL(key, mode)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		r.l.Error("fetch content", log.String("url", target), log.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrContentUnavailable, target, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	return string(body), nil
}

// SpeakableRegion returns the part of the item between the content markers.
func (r *Renderer) SpeakableRegion(ctx context.Context, key string) (string, error) {
	page, err := r.Fetch(ctx, key, domain.RenderModeContent)
	if err != nil {
		return "", err
	}
	return ssml.Between(page, r.config.Renderer.StartMarker, r.config.Renderer.EndMarker), nil
}
