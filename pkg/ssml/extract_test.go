package ssml

import (
	"errors"
	"strings"
	"testing"

	"speaker/domain"
)

const page = `<!DOCTYPE html><html><head><title>t</title></head><body>
<h1>Title &amp; more</h1>
<div class="c"><p>First</p><p>Second</p></div>
</body></html>`

func TestDecorateOrder(t *testing.T) {
	t.Parallel()

	d := domain.Decoration{SayAs: "cardinal", Emphasis: "strong", Voice: "en-GB-Wavenet-A"}
	got := Decorate("42", d, "en-US-Standard-C")
	want := `<voice name="en-GB-Wavenet-A"><emphasis level="strong"><say-as interpret-as="cardinal">42</say-as></emphasis></voice>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	d.Voice = "en-US-Standard-C"
	if got := Decorate("42", d, "en-US-Standard-C"); strings.Contains(got, "<voice") {
		t.Errorf("default voice should not be wrapped, got %q", got)
	}

	if got := Decorate("42", domain.Decoration{SayAs: "none", Emphasis: "undefined"}, ""); got != "42" {
		t.Errorf("expected undecorated content, got %q", got)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	e := NewTemplateExtractor(NewSanitizer("speaker-mute"), 4995)
	directives := domain.Directives{
		domain.ElementDirective{XPath: "//h1", Decoration: domain.Decoration{Emphasis: "strong"}},
		domain.ElementDirective{XPath: "//h2"},
		domain.PauseDirective{TimeMs: 400, Strength: "weak"},
		domain.TextDirective{Content: "Bye", Decoration: domain.Decoration{Voice: "en-GB-Wavenet-A"}},
		domain.ElementDirective{XPath: "//div[@class='c']"},
	}
	segs, err := e.Extract(page, directives, "en-US-Standard-C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Segment{
		{Index: 0, Markup: `<emphasis level="strong">Title &amp; more</emphasis>`},
		{Index: 1, Markup: `<break time="400ms" strength="weak" />`},
		{Index: 2, Markup: `<voice name="en-GB-Wavenet-A">Bye</voice>`, Voice: "en-GB-Wavenet-A"},
		{Index: 3, Markup: `<p>First</p><p>Second</p>`},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %#v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: expected %#v, got %#v", i, want[i], segs[i])
		}
	}
}

func TestExtractSizeLimit(t *testing.T) {
	t.Parallel()

	e := NewTemplateExtractor(NewSanitizer("speaker-mute"), 4995)

	ok := domain.Directives{domain.TextDirective{Content: strings.Repeat("a", 4995)}}
	if _, err := e.Extract(page, ok, ""); err != nil {
		t.Fatalf("expected 4995 characters to pass, got %v", err)
	}

	tooLong := domain.Directives{
		domain.TextDirective{Content: "fine"},
		domain.TextDirective{Content: strings.Repeat("a", 4996)},
	}
	_, err := e.Extract(page, tooLong, "")
	if !errors.Is(err, domain.ErrSizeLimitExceeded) {
		t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
	}
}

func TestExtractInvalidDirectives(t *testing.T) {
	t.Parallel()

	e := NewTemplateExtractor(NewSanitizer("speaker-mute"), 4995)
	if _, err := e.Extract(page, nil, ""); !errors.Is(err, domain.ErrInvalidDirective) {
		t.Errorf("expected ErrInvalidDirective for an empty template, got %v", err)
	}
	bad := domain.Directives{domain.ElementDirective{XPath: "//["}}
	if _, err := e.Extract(page, bad, ""); !errors.Is(err, domain.ErrInvalidDirective) {
		t.Errorf("expected ErrInvalidDirective for a broken path, got %v", err)
	}
}

func TestExtractDropsMutedContent(t *testing.T) {
	t.Parallel()

	e := NewTemplateExtractor(NewSanitizer("speaker-mute"), 4995)
	doc := `<html><body><div id="a">keep <span class="speaker-mute">secret</span> <b speaker-mute>hidden</b></div>` +
		`<p speaker-mute>all gone</p></body></html>`
	directives := domain.Directives{
		domain.ElementDirective{XPath: `//div[@id="a"]`},
		domain.ElementDirective{XPath: `//p`},
	}
	segs, err := e.Extract(doc, directives, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %#v", len(segs), segs)
	}
	if segs[0].Markup != "keep" {
		t.Errorf("expected muted content removed, got %q", segs[0].Markup)
	}
}
