package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDirectivesUnmarshal(t *testing.T) {
	t.Parallel()

	raw := `[
		{"type":"element","xpath":"//h1","sayAs":"none","emphasis":"strong","voice":"undefined"},
		{"type":"text","content":"Hello","voice":"en-GB-Wavenet-B"},
		{"type":"pause","time":"750","strength":"x-strong"}
	]`
	var ds Directives
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("expected 3 directives, got %d", len(ds))
	}

	el, ok := ds[0].(ElementDirective)
	if !ok {
		t.Fatalf("expected ElementDirective, got %T", ds[0])
	}
	if el.XPath != "//h1" {
		t.Errorf("expected xpath //h1, got %q", el.XPath)
	}
	if got := el.Normalized(); got.SayAs != "" || got.Voice != "" || got.Emphasis != "strong" {
		t.Errorf("unexpected normalized decoration %+v", got)
	}

	if txt, ok := ds[1].(TextDirective); !ok || txt.Content != "Hello" || txt.Voice != "en-GB-Wavenet-B" {
		t.Errorf("unexpected text directive %#v", ds[1])
	}

	pause, ok := ds[2].(PauseDirective)
	if !ok || pause.TimeMs != 750 || pause.Strength != "x-strong" {
		t.Errorf("unexpected pause directive %#v", ds[2])
	}
}

func TestDirectivesUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{"unknown type", `[{"type":"video"}]`},
		{"element without path", `[{"type":"element"}]`},
		{"negative pause", `[{"type":"pause","time":-1}]`},
		{"not a list", `{"type":"text"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ds Directives
			err := json.Unmarshal([]byte(tc.raw), &ds)
			if !errors.Is(err, ErrInvalidDirective) {
				t.Fatalf("expected ErrInvalidDirective, got %v", err)
			}
		})
	}
}

func TestDirectivesColumnRoundTrip(t *testing.T) {
	t.Parallel()

	in := Directives{
		ElementDirective{XPath: "//p[1]", Decoration: Decoration{Emphasis: "reduced"}},
		PauseDirective{TimeMs: 300, Strength: "weak"},
	}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out Directives
	if err := out.Scan(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Type() != DirectiveElement || out[1].Type() != DirectivePause {
		t.Fatalf("unexpected directives after scan: %#v", out)
	}

	var pt PostTypes
	if err := pt.Scan([]byte(`["post","page"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pt) != 2 || pt[1] != "page" {
		t.Errorf("unexpected post types %v", pt)
	}
}
