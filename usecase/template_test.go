package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"speaker/domain"
)

func TestTemplateDefaults(t *testing.T) {
	t.Parallel()

	repo := newMemTemplateRepo(
		domain.SpeechTemplate{ID: "a", Elements: domain.Directives{domain.TextDirective{Content: "x"}}},
		domain.SpeechTemplate{ID: "b", Elements: domain.Directives{domain.TextDirective{Content: "y"}}, Default: domain.PostTypes{"post", "page"}},
	)
	u := NewTemplateUsecase(testLogger(), repo)
	ctx := context.Background()

	if err := u.SetDefault(ctx, "a", "post"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := repo.GetTemplate(ctx, "a")
	b, _ := repo.GetTemplate(ctx, "b")
	if !slices.Equal(a.Default, domain.PostTypes{"post"}) || !slices.Equal(b.Default, domain.PostTypes{"page"}) {
		t.Errorf("unexpected defaults a=%v b=%v", a.Default, b.Default)
	}

	if id, err := u.DefaultFor(ctx, "post"); err != nil || id != "a" {
		t.Errorf("expected a, got %s (%v)", id, err)
	}
	if id, err := u.DefaultFor(ctx, "news"); err != nil || id != domain.ContentTemplateID {
		t.Errorf("expected content, got %s (%v)", id, err)
	}

	if err := u.SetDefault(ctx, domain.ContentTemplateID, "page"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := u.DefaultFor(ctx, "page"); id != domain.ContentTemplateID {
		t.Errorf("expected page to fall back to content, got %s", id)
	}

	if err := u.SetDefault(ctx, "missing", "post"); !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestTemplateSave(t *testing.T) {
	t.Parallel()

	repo := newMemTemplateRepo(domain.SpeechTemplate{
		ID:       "a",
		Elements: domain.Directives{domain.TextDirective{Content: "x"}},
		Default:  domain.PostTypes{"post"},
	})
	u := NewTemplateUsecase(testLogger(), repo)
	ctx := context.Background()

	err := u.Save(ctx, domain.SpeechTemplate{ID: "a", Name: "Renamed", Elements: domain.Directives{domain.PauseDirective{TimeMs: 100}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := u.Get(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Renamed" || len(got.Elements) != 1 || !slices.Equal(got.Default, domain.PostTypes{"post"}) {
		t.Errorf("unexpected template after update %+v", got)
	}

	cases := []domain.SpeechTemplate{
		{ID: domain.ContentTemplateID, Elements: domain.Directives{domain.TextDirective{Content: "x"}}},
		{ID: "", Elements: domain.Directives{domain.TextDirective{Content: "x"}}},
		{ID: "empty"},
	}
	for _, tc := range cases {
		if err := u.Save(ctx, tc); !errors.Is(err, domain.ErrInvalidDirective) {
			t.Errorf("template %q: expected ErrInvalidDirective, got %v", tc.ID, err)
		}
	}

	if err := u.Delete(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := u.Delete(ctx, "a"); err != nil {
		t.Fatalf("deleting a missing template should succeed, got %v", err)
	}
	if _, err := u.Get(ctx, "a"); !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}
