package repositories

import (
	"context"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ITemplateRepository şablon veritabanı işlemleri için arayüz.
type ITemplateRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Template, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Template, error)
	FindTopPublished(ctx context.Context, limit int) ([]models.Template, error)
	FindRelatedPublished(ctx context.Context, subCategoryID, excludeID uint, limit int) ([]models.Template, error)
	IncrementViews(ctx context.Context, id uint) error
	IncrementUsage(ctx context.Context, id uint) error
}

// TemplateRepository ITemplateRepository arayüzünü uygular.
type TemplateRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Template]
}

func NewTemplateRepositoryTx(tx *gorm.DB) ITemplateRepository {
	return &TemplateRepository{db: tx, base: NewBaseRepository[models.Template](tx)}
}

func (r *TemplateRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	return r.base.FindByID(ctx, id, "SubCategory.Category")
}

// FindPublishedBySlug yayındaki şablonu alt kategori ve kategori bilgisiyle getirir.
func (r *TemplateRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Template, error) {
	var template models.Template
	err := r.getDB(ctx).Preload("SubCategory.Category").
		Where("slug = ? AND status = ?", slug, models.TemplateStatusPublished).
		First(&template).Error
	if err != nil {
		err = translateError(err)
		if err != ErrNotFound {
			configslog.Log.Error("TemplateRepository.FindPublishedBySlug: DB hatası", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	return &template, nil
}

// FindTopPublished en çok kullanılan yayındaki şablonları getirir. Eşitlikte id küçük olan önce gelir.
func (r *TemplateRepository) FindTopPublished(ctx context.Context, limit int) ([]models.Template, error) {
	var templates []models.Template
	err := r.getDB(ctx).Preload("SubCategory.Category").
		Where("status = ?", models.TemplateStatusPublished).
		Order("usage_count desc").Order("id asc").
		Limit(limit).
		Find(&templates).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.FindTopPublished: DB hatası", zap.Error(err))
		return nil, translateError(err)
	}
	return templates, nil
}

// FindRelatedPublished aynı alt kategorideki diğer yayındaki şablonları getirir.
func (r *TemplateRepository) FindRelatedPublished(ctx context.Context, subCategoryID, excludeID uint, limit int) ([]models.Template, error) {
	var templates []models.Template
	err := r.getDB(ctx).
		Where("sub_category_id = ? AND id <> ? AND status = ?", subCategoryID, excludeID, models.TemplateStatusPublished).
		Order("usage_count desc").Order("id asc").
		Limit(limit).
		Find(&templates).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.FindRelatedPublished: DB hatası", zap.Uint("subCategoryID", subCategoryID), zap.Error(err))
		return nil, translateError(err)
	}
	return templates, nil
}

func (r *TemplateRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.base.IncrementColumn(ctx, id, "views_count", 1)
}

func (r *TemplateRepository) IncrementUsage(ctx context.Context, id uint) error {
	return r.base.IncrementColumn(ctx, id, "usage_count", 1)
}

var _ ITemplateRepository = (*TemplateRepository)(nil)
