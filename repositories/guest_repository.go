package repositories

import (
	"context"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RSVPCounts bir davetiyenin LCV durum özetidir.
type RSVPCounts struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Attending    int64 `json:"attending"`
	NotAttending int64 `json:"not_attending"`
	Viewed       int64 `json:"viewed"`
	PlusOnes     int64 `json:"plus_ones"`
}

// IGuestRepository misafir ve LCV veritabanı işlemleri için arayüz.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindByLink(ctx context.Context, guestLink string) (*models.Guest, error)
	FindByInvitationPaginated(ctx context.Context, invitationID uint, params queryparams.ListParams) ([]models.Guest, int64, error)
	SlugExists(ctx context.Context, invitationID uint, slug string) (bool, error)
	LinkExists(ctx context.Context, guestLink string) (bool, error)
	MarkViewed(ctx context.Context, id uint, at time.Time) error
	UpdateRSVP(ctx context.Context, id uint, status models.RSVPStatus, plusOneCount int, message *string, at time.Time) error
	Delete(ctx context.Context, id uint) error
	CountsByInvitation(ctx context.Context, invitationID uint) (*RSVPCounts, error)
}

// GuestRepository IGuestRepository arayüzünü uygular.
type GuestRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Guest]
}

// NewGuestRepositoryTx transaction içinde kullanılacak repository oluşturur.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	base := NewBaseRepository[models.Guest](tx)
	base.SetAllowedSortColumns([]string{"created_at", "id", "name", "rsvp_status", "rsvp_at", "viewed_at"})
	return &GuestRepository{db: tx, base: base}
}

func (r *GuestRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.base.Create(ctx, guest)
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := r.base.FindByID(ctx, id, "Invitation")
	if err != nil && err != ErrNotFound {
		configslog.Log.Error("GuestRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
	}
	return guest, err
}

// FindByLink kişiye özel link ile misafiri davetiyesi ve şablonuyla birlikte bulur.
func (r *GuestRepository) FindByLink(ctx context.Context, guestLink string) (*models.Guest, error) {
	var guest models.Guest
	err := r.getDB(ctx).Preload("Invitation.Template").
		Where("guest_link = ?", guestLink).
		First(&guest).Error
	if err != nil {
		err = translateError(err)
		if err != ErrNotFound {
			configslog.Log.Error("GuestRepository.FindByLink: DB hatası", zap.Error(err))
		}
		return nil, err
	}
	return &guest, nil
}

// FindByInvitationPaginated davetiyenin misafirlerini sayfalayarak getirir.
// Varsayılan sıralama oluşturulma zamanına göre artandır.
func (r *GuestRepository) FindByInvitationPaginated(ctx context.Context, invitationID uint, params queryparams.ListParams) ([]models.Guest, int64, error) {
	var guests []models.Guest
	query := r.getDB(ctx).Model(&models.Guest{}).Where("invitation_id = ?", invitationID)
	if status := models.RSVPStatus(params.Status); status.IsValid() {
		query = query.Where("rsvp_status = ?", status)
	}
	total, err := r.base.Paginate(ctx, query, params, &guests)
	if err != nil {
		configslog.Log.Error("GuestRepository.FindByInvitationPaginated: DB hatası", zap.Uint("invitationID", invitationID), zap.Error(err))
		return nil, 0, err
	}
	return guests, total, nil
}

// SlugExists slug'ın aynı davetiye içinde kullanılıp kullanılmadığını kontrol eder.
func (r *GuestRepository) SlugExists(ctx context.Context, invitationID uint, slug string) (bool, error) {
	return r.base.Exists(ctx, "invitation_id = ? AND slug = ?", invitationID, slug)
}

// LinkExists guest_link'in sistem genelinde kullanılıp kullanılmadığını kontrol eder.
func (r *GuestRepository) LinkExists(ctx context.Context, guestLink string) (bool, error) {
	return r.base.Exists(ctx, "guest_link = ?", guestLink)
}

// MarkViewed misafiri görüntülemiş olarak işaretler.
// viewed_at her çağrıda ezilir, first_viewed_at sadece boşsa yazılır.
func (r *GuestRepository) MarkViewed(ctx context.Context, id uint, at time.Time) error {
	result := r.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"has_viewed":      true,
		"viewed_at":       at,
		"first_viewed_at": gorm.Expr("COALESCE(first_viewed_at, ?)", at),
	})
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.MarkViewed: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRSVP LCV cevabını tek bir UPDATE ile yazar. Son yazan kazanır.
func (r *GuestRepository) UpdateRSVP(ctx context.Context, id uint, status models.RSVPStatus, plusOneCount int, message *string, at time.Time) error {
	result := r.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rsvp_status":    status,
		"rsvp_at":        at,
		"plus_one_count": plusOneCount,
		"message":        message,
	})
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.UpdateRSVP: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Guest{}, id)
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.Delete: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountsByInvitation davetiyenin misafirlerini LCV durumuna göre tek sorguda sayar.
func (r *GuestRepository) CountsByInvitation(ctx context.Context, invitationID uint) (*RSVPCounts, error) {
	var counts RSVPCounts
	err := r.getDB(ctx).Model(&models.Guest{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS attending,
			COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS not_attending,
			COALESCE(SUM(CASE WHEN has_viewed THEN 1 ELSE 0 END), 0) AS viewed,
			COALESCE(SUM(CASE WHEN rsvp_status = ? THEN plus_one_count ELSE 0 END), 0) AS plus_ones`,
			models.RSVPStatusPending, models.RSVPStatusAttending, models.RSVPStatusNotAttending, models.RSVPStatusAttending).
		Where("invitation_id = ?", invitationID).
		Scan(&counts).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.CountsByInvitation: DB hatası", zap.Uint("invitationID", invitationID), zap.Error(err))
		return nil, translateError(err)
	}
	return &counts, nil
}

var _ IGuestRepository = (*GuestRepository)(nil)
