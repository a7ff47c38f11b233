package repo

import (
	"context"
	"errors"
	"fmt"
	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/store"

	"gorm.io/gorm"
)

type TemplateRepo struct {
	log    *log.Logger
	config *config.Config
	db     *store.MySQL
}

func NewTemplateRepo(log *log.Logger, config *config.Config, db *store.MySQL) *TemplateRepo {
	return &TemplateRepo{
		log:    log.WithModule("TemplateRepo"),
		config: config,
		db:     db,
	}
}

func (r *TemplateRepo) GetTemplate(ctx context.Context, id string) (domain.SpeechTemplate, error) {
	var tpl domain.SpeechTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SpeechTemplate{}, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, id)
		}
		return domain.SpeechTemplate{}, fmt.Errorf("failed to get template %s: %w", id, err)
	}
	return tpl, nil
}

// SaveTemplate inserts or replaces the template with the same id.
func (r *TemplateRepo) SaveTemplate(ctx context.Context, tpl domain.SpeechTemplate) error {
	return r.db.WithContext(ctx).Save(&tpl).Error
}

func (r *TemplateRepo) SaveTemplates(ctx context.Context, tpls []domain.SpeechTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range tpls {
			if err := tx.Save(&tpls[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TemplateRepo) DeleteTemplate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SpeechTemplate{}).Error
}

func (r *TemplateRepo) ListTemplates(ctx context.Context) ([]domain.SpeechTemplate, error) {
	var tpls []domain.SpeechTemplate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tpls).Error; err != nil {
		r.log.Error("list templates", log.Error(err))
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return tpls, nil
}
