package services

import (
	"context"

	"undangan.link/configs/configsdatabase"
	"undangan.link/models"
	"undangan.link/repositories"

	"gorm.io/gorm"
)

const (
	DefaultTopTemplatesLimit     = 4
	MaxTopTemplatesLimit         = 50
	DefaultRelatedTemplatesLimit = 4
)

// ICatalogService kategori ve şablon kataloğu sorguları için arayüz.
type ICatalogService interface {
	ListFeaturedCategories(ctx context.Context) ([]models.Category, error)
	ListCategoryWithTemplates(ctx context.Context, slug string) (*models.Category, error)
	ListTopTemplates(ctx context.Context, limit int) ([]models.Template, error)
	GetTemplateBySlug(ctx context.Context, categorySlug, templateSlug string) (*models.Template, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListAllCategoriesBrief(ctx context.Context) ([]models.Category, error)
	ListRelatedTemplates(ctx context.Context, template *models.Template, limit int) ([]models.Template, error)
	GetPublishedTemplate(ctx context.Context, templateSlug string) (*models.Template, error)
	IncrementTemplateUsage(ctx context.Context, templateID uint) error
}

// CatalogService ICatalogService arayüzünü uygular.
type CatalogService struct {
	categoryRepo repositories.ICategoryRepository
	templateRepo repositories.ITemplateRepository
}

// NewCatalogService global bağlantı ile servis oluşturur.
func NewCatalogService() ICatalogService {
	return NewCatalogServiceWithDB(configsdatabase.GetDB())
}

// NewCatalogServiceWithDB verilen bağlantı ile servis oluşturur.
func NewCatalogServiceWithDB(db *gorm.DB) *CatalogService {
	return &CatalogService{
		categoryRepo: repositories.NewCategoryRepositoryTx(db),
		templateRepo: repositories.NewTemplateRepositoryTx(db),
	}
}

// ListFeaturedCategories ana sayfada gösterilen kategorileri sort_order'a göre döner.
func (s *CatalogService) ListFeaturedCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindFeatured(ctx)
	if err != nil {
		return nil, persistenceError("öne çıkan kategoriler", err)
	}
	return categories, nil
}

// ListCategoryWithTemplates kategoriyi alt kategorileri ve yayındaki şablonlarıyla döner.
func (s *CatalogService) ListCategoryWithTemplates(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		return nil, ErrCategoryNotFound
	}
	category, err := s.categoryRepo.FindBySlugWithPublishedTemplates(ctx, slug)
	if err != nil {
		return nil, mapRepoError("kategori", err, ErrCategoryNotFound)
	}
	return category, nil
}

// ListTopTemplates en çok kullanılan yayındaki şablonları döner.
// limit <= 0 ise varsayılan, üst sınırı aşarsa üst sınır kullanılır.
func (s *CatalogService) ListTopTemplates(ctx context.Context, limit int) ([]models.Template, error) {
	if limit <= 0 {
		limit = DefaultTopTemplatesLimit
	}
	if limit > MaxTopTemplatesLimit {
		limit = MaxTopTemplatesLimit
	}
	templates, err := s.templateRepo.FindTopPublished(ctx, limit)
	if err != nil {
		return nil, persistenceError("popüler şablonlar", err)
	}
	return templates, nil
}

// GetTemplateBySlug şablonu kategori bağlamında getirir ve görüntülenme sayısını artırır.
// Şablon yayında değilse veya başka bir kategoriye aitse bulunamadı döner.
func (s *CatalogService) GetTemplateBySlug(ctx context.Context, categorySlug, templateSlug string) (*models.Template, error) {
	template, err := s.templateRepo.FindPublishedBySlug(ctx, templateSlug)
	if err != nil {
		return nil, mapRepoError("şablon", err, ErrTemplateNotFound)
	}
	if template.CategorySlug() != categorySlug {
		return nil, ErrTemplateNotFound
	}
	if err := s.templateRepo.IncrementViews(ctx, template.ID); err != nil {
		return nil, mapRepoError("şablon görüntülenme sayacı", err, ErrTemplateNotFound)
	}
	template.ViewsCount++
	return template, nil
}

// ListCategories tüm kategorileri alt kategorileri ve yayındaki şablonlarıyla döner.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAllWithPublishedTemplates(ctx)
	if err != nil {
		return nil, persistenceError("kategoriler", err)
	}
	return categories, nil
}

// ListAllCategoriesBrief menü için kısa kategori listesini döner.
func (s *CatalogService) ListAllCategoriesBrief(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAllBrief(ctx)
	if err != nil {
		return nil, persistenceError("kategori menüsü", err)
	}
	return categories, nil
}

// ListRelatedTemplates aynı alt kategorideki diğer yayındaki şablonları döner.
func (s *CatalogService) ListRelatedTemplates(ctx context.Context, template *models.Template, limit int) ([]models.Template, error) {
	if template == nil {
		return []models.Template{}, nil
	}
	if limit <= 0 {
		limit = DefaultRelatedTemplatesLimit
	}
	templates, err := s.templateRepo.FindRelatedPublished(ctx, template.SubCategoryID, template.ID, limit)
	if err != nil {
		return nil, persistenceError("benzer şablonlar", err)
	}
	return templates, nil
}

// GetPublishedTemplate önizleme için şablonu getirir. Sayaçlara dokunmaz.
func (s *CatalogService) GetPublishedTemplate(ctx context.Context, templateSlug string) (*models.Template, error) {
	template, err := s.templateRepo.FindPublishedBySlug(ctx, templateSlug)
	if err != nil {
		return nil, mapRepoError("şablon önizleme", err, ErrTemplateNotFound)
	}
	return template, nil
}

// IncrementTemplateUsage şablonun kullanım sayısını atomik olarak bir artırır.
func (s *CatalogService) IncrementTemplateUsage(ctx context.Context, templateID uint) error {
	return mapRepoError("şablon kullanım sayacı", s.templateRepo.IncrementUsage(ctx, templateID), ErrTemplateNotFound)
}

var _ ICatalogService = (*CatalogService)(nil)
