package repositories

import (
	"context"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICategoryRepository kategori ve alt kategori okuma/yazma işlemleri için arayüz.
type ICategoryRepository interface {
	FindFeatured(ctx context.Context) ([]models.Category, error)
	FindAllWithPublishedTemplates(ctx context.Context) ([]models.Category, error)
	FindAllBrief(ctx context.Context) ([]models.Category, error)
	FindBySlugWithPublishedTemplates(ctx context.Context, slug string) (*models.Category, error)
}

// CategoryRepository ICategoryRepository arayüzünü uygular.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepositoryTx(tx *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// withPublishedTemplates alt kategorileri sort_order'a, şablonları kullanım sayısına göre sıralı yükler.
// Sadece yayındaki şablonlar yüklenir.
func withPublishedTemplates(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SubCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order asc").Order("id asc")
		}).
		Preload("SubCategories.Templates", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("status = ?", models.TemplateStatusPublished).
				Order("usage_count desc").Order("id asc")
		})
}

// FindFeatured öne çıkan kategorileri sort_order'a göre getirir.
func (r *CategoryRepository) FindFeatured(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.getDB(ctx).Where("is_featured = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&categories).Error
	if err != nil {
		configslog.Log.Error("CategoryRepository.FindFeatured: DB hatası", zap.Error(err))
		return nil, translateError(err)
	}
	return categories, nil
}

// FindAllWithPublishedTemplates tüm kategorileri alt kategori ve şablonlarıyla getirir.
func (r *CategoryRepository) FindAllWithPublishedTemplates(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := withPublishedTemplates(r.getDB(ctx)).
		Order("sort_order asc").Order("id asc").
		Find(&categories).Error
	if err != nil {
		configslog.Log.Error("CategoryRepository.FindAllWithPublishedTemplates: DB hatası", zap.Error(err))
		return nil, translateError(err)
	}
	return categories, nil
}

// FindAllBrief menüler için sadece temel alanları getirir.
func (r *CategoryRepository) FindAllBrief(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.getDB(ctx).Select("id", "name", "slug", "icon").
		Order("sort_order asc").Order("id asc").
		Find(&categories).Error
	if err != nil {
		configslog.Log.Error("CategoryRepository.FindAllBrief: DB hatası", zap.Error(err))
		return nil, translateError(err)
	}
	return categories, nil
}

// FindBySlugWithPublishedTemplates slug ile kategoriyi alt kategorileri ve yayındaki şablonlarıyla getirir.
func (r *CategoryRepository) FindBySlugWithPublishedTemplates(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := withPublishedTemplates(r.getDB(ctx)).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		err = translateError(err)
		if err != ErrNotFound {
			configslog.Log.Error("CategoryRepository.FindBySlugWithPublishedTemplates: DB hatası", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	return &category, nil
}

var _ ICategoryRepository = (*CategoryRepository)(nil)
