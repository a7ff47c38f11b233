package usecase

import (
	"context"
	"fmt"
	"speaker/domain"
	"speaker/pkg/log"

	"github.com/samber/lo"
)

type TemplateRepository interface {
	GetTemplate(ctx context.Context, id string) (domain.SpeechTemplate, error)
	SaveTemplate(ctx context.Context, tpl domain.SpeechTemplate) error
	SaveTemplates(ctx context.Context, tpls []domain.SpeechTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]domain.SpeechTemplate, error)
}

// TemplateUsecase manages speech templates and the post types they are the
// default for.
type TemplateUsecase struct {
	l    *log.Logger
	repo TemplateRepository
}

func NewTemplateUsecase(l *log.Logger, repo TemplateRepository) *TemplateUsecase {
	return &TemplateUsecase{
		l:    l.WithModule("TemplateUsecase"),
		repo: repo,
	}
}

func (u *TemplateUsecase) Get(ctx context.Context, id string) (domain.SpeechTemplate, error) {
	return u.repo.GetTemplate(ctx, id)
}

func (u *TemplateUsecase) List(ctx context.Context) ([]domain.SpeechTemplate, error) {
	return u.repo.ListTemplates(ctx)
}

// Save creates the template or replaces the one with the same id. The post
// types it is default for are kept when the update does not name any.
func (u *TemplateUsecase) Save(ctx context.Context, tpl domain.SpeechTemplate) error {
	if tpl.ID == "" || tpl.ID == domain.ContentTemplateID {
		return fmt.Errorf("%w: template id %q is reserved or empty", domain.ErrInvalidDirective, tpl.ID)
	}
	if len(tpl.Elements) == 0 {
		return fmt.Errorf("%w: template %s has no directives", domain.ErrInvalidDirective, tpl.ID)
	}
	if tpl.Default == nil {
		if existing, err := u.repo.GetTemplate(ctx, tpl.ID); err == nil {
			tpl.Default = existing.Default
			tpl.CreatedAt = existing.CreatedAt
		}
	}
	if err := u.repo.SaveTemplate(ctx, tpl); err != nil {
		return fmt.Errorf("failed to save template %s: %w", tpl.ID, err)
	}
	u.l.Info("template saved", log.String("id", tpl.ID), log.Int("directives", len(tpl.Elements)))
	return nil
}

func (u *TemplateUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	return nil
}

// SetDefault makes stid the template of postType and takes postType away
// from every other template. stid "content" only clears.
func (u *TemplateUsecase) SetDefault(ctx context.Context, stid, postType string) error {
	tpls, err := u.repo.ListTemplates(ctx)
	if err != nil {
		return err
	}
	if stid != domain.ContentTemplateID && !lo.ContainsBy(tpls, func(t domain.SpeechTemplate) bool { return t.ID == stid }) {
		return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, stid)
	}

	tpls = lo.Map(tpls, func(t domain.SpeechTemplate, _ int) domain.SpeechTemplate {
		if t.ID == stid {
			t.Default = lo.Uniq(append(t.Default, postType))
		} else {
			t.Default = lo.Without(t.Default, postType)
		}
		return t
	})
	return u.repo.SaveTemplates(ctx, tpls)
}

// DefaultFor returns the template id used for postType.
func (u *TemplateUsecase) DefaultFor(ctx context.Context, postType string) (string, error) {
	tpls, err := u.repo.ListTemplates(ctx)
	if err != nil {
		return "", err
	}
	tpl, ok := lo.Find(tpls, func(t domain.SpeechTemplate) bool { return lo.Contains(t.Default, postType) })
	if !ok {
		return domain.ContentTemplateID, nil
	}
	return tpl.ID, nil
}
