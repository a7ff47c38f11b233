package usecase

import (
	"context"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// BulkUsecase regenerates audio for many content items. Every item is its
// own run, so each key is only processed once per call.
type BulkUsecase struct {
	l       *log.Logger
	config  *config.Config
	speaker *SpeakerUsecase
}

func NewBulkUsecase(l *log.Logger, c *config.Config, speaker *SpeakerUsecase) *BulkUsecase {
	return &BulkUsecase{
		l:       l.WithModule("BulkUsecase"),
		config:  c,
		speaker: speaker,
	}
}

func (b *BulkUsecase) SynthesizeAll(ctx context.Context, keys []string, stid string) []domain.BulkResult {
	keys = lo.Uniq(keys)
	results := make([]domain.BulkResult, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.config.Bulk.Concurrency))
	for i, key := range keys {
		g.Go(func() error {
			_, err := b.speaker.VoiceActing(gctx, key, stid, nil)
			results[i] = domain.BulkResult{ID: key, Success: err == nil, Message: domain.UserMessage(err)}
			return nil
		})
	}
	_ = g.Wait()

	failed := lo.CountBy(results, func(r domain.BulkResult) bool { return !r.Success })
	b.l.Info("bulk synthesis finished", log.Int("items", len(keys)), log.Int("failed", failed))
	return results
}
