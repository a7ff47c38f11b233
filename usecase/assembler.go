package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/ssml"

	"github.com/google/uuid"
)

// AudioAssembler synthesizes segments in order and appends their audio to
// the artifact of a content item.
type AudioAssembler struct {
	l        *log.Logger
	synth    domain.Synthesizer
	store    domain.ArtifactStore
	tempDir  string
	maxChars int
}

func NewAudioAssembler(l *log.Logger, c *config.Config, synth domain.Synthesizer, store domain.ArtifactStore) *AudioAssembler {
	tempDir := c.Storage.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &AudioAssembler{
		l:        l.WithModule("AudioAssembler"),
		synth:    synth,
		store:    store,
		tempDir:  tempDir,
		maxChars: c.Speech.MaxChars,
	}
}

// fragmentResult is the outcome of one segment, either a temp file or an error.
type fragmentResult struct {
	index int
	path  string
	err   error
}

// Assemble replaces the artifact of key with the audio of segments.
// A segment that fails to synthesize is left out. Requests are built for
// every segment before the first dispatch, so a size violation aborts the
// run without calling the synthesizer.
func (a *AudioAssembler) Assemble(
	ctx context.Context,
	key string,
	segments []domain.Segment,
	voice domain.VoiceConfig,
	audio domain.AudioConfig,
	progress domain.ProgressFunc,
) (*domain.Artifact, error) {
	name := domain.ArtifactName(key)
	total := len(segments)

	reqs := make([]domain.SynthesisRequest, 0, total)
	for _, seg := range segments {
		req, err := ssml.BuildRequest(seg, voice, audio, a.maxChars)
		if err != nil {
			progress.Emit(domain.SegmentEvent{Type: domain.EventAborted, Key: key, Index: seg.Index, Total: total, Message: err.Error()})
			return nil, err
		}
		reqs = append(reqs, req)
	}

	if err := a.store.Delete(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to remove previous audio: %w", err)
	}

	failed := 0
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			a.discard(ctx, name)
			progress.Emit(domain.SegmentEvent{Type: domain.EventAborted, Key: key, Index: i, Total: total, Message: err.Error()})
			return nil, err
		}
		progress.Emit(domain.SegmentEvent{Type: domain.EventDispatching, Key: key, Index: i, Total: total})

		res := a.dispatch(ctx, key, i, req)
		if res.err != nil {
			failed++
			a.l.Warn("segment skipped", log.String("key", key), log.Int("segment", i), log.Error(res.err))
			progress.Emit(domain.SegmentEvent{Type: domain.EventFailed, Key: key, Index: i, Total: total, Message: res.err.Error()})
			continue
		}
		progress.Emit(domain.SegmentEvent{Type: domain.EventAcquired, Key: key, Index: i, Total: total})

		if err := a.fold(ctx, name, res.path); err != nil {
			a.discard(ctx, name)
			progress.Emit(domain.SegmentEvent{Type: domain.EventAborted, Key: key, Index: i, Total: total, Message: err.Error()})
			return nil, err
		}
		progress.Emit(domain.SegmentEvent{Type: domain.EventConcatenating, Key: key, Index: i, Total: total})
	}

	modTime, ok, err := a.store.Stat(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat audio: %w", err)
	}
	if !ok {
		a.l.Warn("no segment produced audio", log.String("key", key), log.Int("segments", total))
	}
	progress.Emit(domain.SegmentEvent{Type: domain.EventDone, Key: key, Index: total, Total: total})
	return &domain.Artifact{
		Key:      key,
		Name:     name,
		ModTime:  modTime,
		Exists:   ok,
		Segments: total,
		Failed:   failed,
	}, nil
}

func (a *AudioAssembler) dispatch(ctx context.Context, key string, index int, req domain.SynthesisRequest) fragmentResult {
	data, err := a.synth.Synthesize(ctx, req)
	if err != nil {
		return fragmentResult{index: index, err: fmt.Errorf("%w: %v", domain.ErrSegmentSynthesisFailed, err)}
	}
	if len(data) == 0 {
		return fragmentResult{index: index, err: fmt.Errorf("%w: empty audio", domain.ErrSegmentSynthesisFailed)}
	}
	path := filepath.Join(a.tempDir, fmt.Sprintf("tmp-%s-post-%s.mp3", uuid.NewString(), key))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path)
		return fragmentResult{index: index, err: fmt.Errorf("%w: write fragment: %v", domain.ErrSegmentSynthesisFailed, err)}
	}
	return fragmentResult{index: index, path: path}
}

// fold appends a fragment to the artifact and removes the fragment.
func (a *AudioAssembler) fold(ctx context.Context, name, path string) error {
	defer os.Remove(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fragment: %w", err)
	}
	if err := a.store.Write(ctx, name, data, true); err != nil {
		return fmt.Errorf("failed to append fragment: %w", err)
	}
	return nil
}

// discard drops a partly assembled artifact. It runs even when ctx is done.
func (a *AudioAssembler) discard(ctx context.Context, name string) {
	if err := a.store.Delete(context.WithoutCancel(ctx), name); err != nil {
		a.l.Error("remove partial audio", log.String("name", name), log.Error(err))
	}
}
