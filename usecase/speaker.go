package usecase

import (
	"context"
	"fmt"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/ssml"
	"sync"
	"time"

	"github.com/samber/lo"
)

// SpeakerUsecase runs the whole pipeline for one content item: fetch,
// sanitize, segment or extract, then assemble.
type SpeakerUsecase struct {
	l         *log.Logger
	config    *config.Config
	renderer  *Renderer
	templates TemplateRepository
	assembler *AudioAssembler
	store     domain.ArtifactStore
	sanitizer *ssml.Sanitizer
	segmenter ssml.VoiceSegmenter
	extractor *ssml.TemplateExtractor

	mu      sync.Mutex
	running map[string]struct{}
}

func NewSpeakerUsecase(
	l *log.Logger,
	c *config.Config,
	renderer *Renderer,
	templates TemplateRepository,
	assembler *AudioAssembler,
	store domain.ArtifactStore,
) *SpeakerUsecase {
	sanitizer := ssml.NewSanitizer(c.Speech.MuteMarker)
	return &SpeakerUsecase{
		l:         l.WithModule("SpeakerUsecase"),
		config:    c,
		renderer:  renderer,
		templates: templates,
		assembler: assembler,
		store:     store,
		sanitizer: sanitizer,
		segmenter: ssml.NewMarkerSegmenter(),
		extractor: ssml.NewTemplateExtractor(sanitizer, c.Speech.MaxChars),
		running:   make(map[string]struct{}),
	}
}

// VoiceActing regenerates the audio of key. stid names a speech template,
// "" or "content" uses the speakable region of the item instead.
func (s *SpeakerUsecase) VoiceActing(ctx context.Context, key, stid string, progress domain.ProgressFunc) (*domain.Artifact, error) {
	if !domain.ValidKey(key) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	release, err := s.acquire(key)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	segments, err := s.segments(ctx, key, stid)
	if err != nil {
		s.l.Error("prepare segments", log.String("key", key), log.String("stid", stid), log.Error(err))
		return nil, err
	}

	artifact, err := s.assembler.Assemble(ctx, key, segments, VoiceConfig(s.config), AudioConfig(s.config), progress)
	if err != nil {
		s.l.Error("assemble audio", log.String("key", key), log.Error(err))
		return nil, err
	}
	s.l.Info("audio generated",
		log.String("key", key),
		log.String("stid", stid),
		log.Int("segments", artifact.Segments),
		log.Int("failed", artifact.Failed),
		log.Duration("took", time.Since(start)),
	)
	return artifact, nil
}

// OnContentDeleted drops the audio of a deleted content item.
func (s *SpeakerUsecase) OnContentDeleted(ctx context.Context, key string) error {
	if !domain.ValidKey(key) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	return s.store.Delete(ctx, domain.ArtifactName(key))
}

func (s *SpeakerUsecase) acquire(key string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.running[key]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunInProgress, key)
	}
	s.running[key] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.running, key)
		s.mu.Unlock()
	}, nil
}

func (s *SpeakerUsecase) segments(ctx context.Context, key, stid string) ([]domain.Segment, error) {
	if stid == "" || stid == domain.ContentTemplateID {
		region, err := s.renderer.SpeakableRegion(ctx, key)
		if err != nil {
			return nil, err
		}
		return s.watermark(s.segmenter.Segment(s.sanitizer.Sanitize(region))), nil
	}

	tpl, err := s.templates.GetTemplate(ctx, stid)
	if err != nil {
		return nil, err
	}
	page, err := s.renderer.Fetch(ctx, key, domain.RenderModeFull)
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(page, tpl.Elements, s.config.Speech.Voice)
}

// watermark adds the configured intro and outro around content segments.
func (s *SpeakerUsecase) watermark(segments []domain.Segment) []domain.Segment {
	out := make([]domain.Segment, 0, len(segments)+2)
	if before := s.sanitizer.Clean(s.config.Speech.BeforeAudio); before != "" {
		out = append(out, domain.Segment{Markup: before, Voice: ssml.VoiceName(before)})
	}
	out = append(out, segments...)
	if after := s.sanitizer.Clean(s.config.Speech.AfterAudio); after != "" {
		out = append(out, domain.Segment{Markup: after, Voice: ssml.VoiceName(after)})
	}
	return lo.Map(out, func(seg domain.Segment, i int) domain.Segment {
		seg.Index = i
		return seg
	})
}
