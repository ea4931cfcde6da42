package repositories

import (
	"context"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationRepository davetiye veritabanı işlemleri için arayüz.
type IInvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	FindByID(ctx context.Context, id uint) (*models.Invitation, error)
	FindBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Invitation, int64, error)
	UpdateColumns(ctx context.Context, id uint, values map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uint, from []models.InvitationStatus, values map[string]interface{}) error
	IncrementViews(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// InvitationRepository IInvitationRepository arayüzünü uygular.
type InvitationRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Invitation]
}

// NewInvitationRepositoryTx transaction içinde kullanılacak repository oluşturur.
func NewInvitationRepositoryTx(tx *gorm.DB) IInvitationRepository {
	base := NewBaseRepository[models.Invitation](tx)
	// Davetiye için izin verilen sıralama sütunları, ilki varsayılandır
	base.SetAllowedSortColumns([]string{"created_at", "id", "event_date", "event_title", "status", "views_count"})
	return &InvitationRepository{db: tx, base: base}
}

func (r *InvitationRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Create yeni bir davetiye oluşturur.
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	if err := r.base.Create(ctx, invitation); err != nil {
		configslog.Log.Error("InvitationRepository.Create: DB hatası", zap.String("slug", invitation.Slug), zap.Error(err))
		return err
	}
	return nil
}

// FindByID belirli bir ID'ye sahip davetiyeyi şablonuyla birlikte bulur.
func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*models.Invitation, error) {
	invitation, err := r.base.FindByID(ctx, id, "Template")
	if err != nil && err != ErrNotFound {
		configslog.Log.Error("InvitationRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
	}
	return invitation, err
}

// FindBySlug public slug ile davetiyeyi bulur.
func (r *InvitationRepository) FindBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.getDB(ctx).Preload("Template").Where("slug = ?", slug).First(&invitation).Error
	if err != nil {
		err = translateError(err)
		if err != ErrNotFound {
			configslog.Log.Error("InvitationRepository.FindBySlug: DB hatası", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	return &invitation, nil
}

// applyInvitationFilters başlık ve durum filtrelerini uygular.
func (r *InvitationRepository) applyInvitationFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if name := strings.TrimSpace(params.Name); name != "" {
		query = query.Where("LOWER(event_title) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if status := models.InvitationStatus(params.Status); status.IsValid() {
		query = query.Where("status = ?", status)
	}
	return query
}

// FindAllByUserIDPaginated belirli bir kullanıcıya ait davetiyeleri sayfalayarak bulur.
func (r *InvitationRepository) FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Invitation, int64, error) {
	var invitations []models.Invitation
	query := r.getDB(ctx).Model(&models.Invitation{}).Where("user_id = ?", userID)
	query = r.applyInvitationFilters(query, params)

	total, err := r.base.Paginate(ctx, query, params, &invitations, "Template")
	if err != nil {
		configslog.Log.Error("InvitationRepository.FindAllByUserIDPaginated: DB hatası", zap.Uint("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return invitations, total, nil
}

// UpdateColumns verilen sütunları tek bir UPDATE ile yazar.
func (r *InvitationRepository) UpdateColumns(ctx context.Context, id uint, values map[string]interface{}) error {
	result := r.getDB(ctx).Model(&models.Invitation{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.UpdateColumns: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus durumu sadece mevcut durum from listesindeyse değiştirir.
// Koşul tutmazsa (eşzamanlı bir geçiş olduysa) ErrNotFound döner.
func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uint, from []models.InvitationStatus, values map[string]interface{}) error {
	result := r.getDB(ctx).Model(&models.Invitation{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(values)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.UpdateStatus: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvitationRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.base.IncrementColumn(ctx, id, "views_count", 1)
}

// Delete davetiyeyi kalıcı olarak siler; misafirler FK CASCADE ile silinir.
func (r *InvitationRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Invitation{}, id)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.Delete: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvitationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.base.Exists(ctx, "slug = ?", slug)
}

var _ IInvitationRepository = (*InvitationRepository)(nil)
