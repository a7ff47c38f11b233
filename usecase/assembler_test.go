package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"speaker/domain"
)

func segs(markups ...string) []domain.Segment {
	out := make([]domain.Segment, len(markups))
	for i, m := range markups {
		out[i] = domain.Segment{Index: i, Markup: m}
	}
	return out
}

func TestAssembleSkipsFailedSegments(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.synth.Fail = func(req domain.SynthesisRequest) bool { return strings.Contains(req.Input, "two") }

	var events []domain.EventType
	progress := func(e domain.SegmentEvent) { events = append(events, e.Type) }

	artifact, err := env.assembler().Assemble(context.Background(), "42", segs("one", "two", "three"),
		VoiceConfig(env.config), AudioConfig(env.config), progress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !artifact.Exists || artifact.Segments != 3 || artifact.Failed != 1 {
		t.Errorf("unexpected artifact %+v", artifact)
	}
	if got, want := env.artifact(t, "42"), "<speak>one</speak><speak>three</speak>"; got != want {
		t.Errorf("expected artifact %q, got %q", want, got)
	}
	if files := env.tempFiles(t); len(files) != 0 {
		t.Errorf("expected no temporary fragments, got %v", files)
	}
	if len(env.synth.Calls()) != 3 {
		t.Errorf("expected 3 synthesis calls, got %d", len(env.synth.Calls()))
	}
	if events[len(events)-1] != domain.EventDone {
		t.Errorf("expected the last event to be done, got %v", events)
	}
	failed := 0
	for _, e := range events {
		if e == domain.EventFailed {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected one failed event, got %d in %v", failed, events)
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	a := env.assembler()
	for i := 0; i < 2; i++ {
		if _, err := a.Assemble(context.Background(), "7", segs("a", "b"), VoiceConfig(env.config), AudioConfig(env.config), nil); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}
	if got, want := env.artifact(t, "7"), "<speak>a</speak><speak>b</speak>"; got != want {
		t.Errorf("expected artifact %q, got %q", want, got)
	}
}

func TestAssembleSizeLimitAbortsBeforeDispatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	if err := env.store.Write(ctx, domain.ArtifactName("9"), []byte("old"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := env.assembler().Assemble(ctx, "9", segs("short", strings.Repeat("a", 4996)),
		VoiceConfig(env.config), AudioConfig(env.config), nil)
	if !errors.Is(err, domain.ErrSizeLimitExceeded) {
		t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
	}
	if n := len(env.synth.Calls()); n != 0 {
		t.Errorf("expected no synthesis calls, got %d", n)
	}
	if got := env.artifact(t, "9"); got != "old" {
		t.Errorf("expected the previous artifact untouched, got %q", got)
	}
}

func TestAssembleExactLimitPasses(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.assembler().Assemble(context.Background(), "10", segs(strings.Repeat("a", 4995)),
		VoiceConfig(env.config), AudioConfig(env.config), nil)
	if err != nil {
		t.Fatalf("expected 4995 characters to pass, got %v", err)
	}
}

func TestAssembleAllSegmentsFail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.synth.Fail = func(domain.SynthesisRequest) bool { return true }

	artifact, err := env.assembler().Assemble(context.Background(), "11", segs("x", "y"),
		VoiceConfig(env.config), AudioConfig(env.config), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.Exists || artifact.Failed != 2 {
		t.Errorf("expected no audio and two failures, got %+v", artifact)
	}
}

func TestAssembleCancelled(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.assembler().Assemble(ctx, "12", segs("x"), VoiceConfig(env.config), AudioConfig(env.config), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if files := env.tempFiles(t); len(files) != 0 {
		t.Errorf("expected no temporary fragments, got %v", files)
	}
}

func TestAssembleCancelledMidRunLeavesNoArtifact(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := env.store.Write(ctx, domain.ArtifactName("13"), []byte("old"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the first segment succeeds, then the run is cancelled
	env.synth.Fail = func(domain.SynthesisRequest) bool {
		cancel()
		return false
	}

	_, err := env.assembler().Assemble(ctx, "13", segs("x", "y"), VoiceConfig(env.config), AudioConfig(env.config), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, ok, err := env.store.Stat(context.Background(), domain.ArtifactName("13")); err != nil || ok {
		t.Errorf("expected no artifact after a cancelled run, got ok=%v err=%v", ok, err)
	}
	if n := len(env.synth.Calls()); n != 1 {
		t.Errorf("expected 1 synthesis call, got %d", n)
	}
	if files := env.tempFiles(t); len(files) != 0 {
		t.Errorf("expected no temporary fragments, got %v", files)
	}
}
