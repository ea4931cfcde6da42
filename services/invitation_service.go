package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/slugify"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateInvitationInput yeni davetiye için kullanıcıdan gelen alanlardır.
type CreateInvitationInput struct {
	TemplateID    uint                   `json:"template_id"`
	Slug          string                 `json:"slug"`
	EventTitle    string                 `json:"event_title"`
	EventDate     *time.Time             `json:"event_date"`
	EventLocation string                 `json:"event_location"`
	EventAddress  string                 `json:"event_address"`
	GroomName     string                 `json:"groom_name"`
	BrideName     string                 `json:"bride_name"`
	Settings      map[string]interface{} `json:"settings"`
	RSVPEnabled   *bool                  `json:"rsvp_enabled"`
	ExpiresAt     *time.Time             `json:"expires_at"`
}

// Validate zorunlu alanları ve slug formatını kontrol eder.
func (in *CreateInvitationInput) Validate() error {
	in.Slug = strings.TrimSpace(in.Slug)
	in.EventTitle = strings.TrimSpace(in.EventTitle)

	v := &ValidationError{}
	if in.TemplateID == 0 {
		v.Add("template_id", "şablon seçimi zorunludur")
	}
	if in.Slug == "" {
		v.Add("slug", "slug zorunludur")
	} else if !slugify.IsValid(in.Slug) {
		v.Add("slug", "slug sadece küçük harf, rakam ve tire içerebilir")
	}
	if in.EventTitle == "" {
		v.Add("event_title", "etkinlik başlığı zorunludur")
	}
	v.MaxLength("slug", in.Slug, 255)
	v.MaxLength("event_title", in.EventTitle, 255)
	v.MaxLength("event_location", strings.TrimSpace(in.EventLocation), 255)
	v.MaxLength("groom_name", strings.TrimSpace(in.GroomName), 150)
	v.MaxLength("bride_name", strings.TrimSpace(in.BrideName), 150)
	return v.OrNil()
}

// IInvitationService davetiye yaşam döngüsü işlemleri için arayüz.
type IInvitationService interface {
	CreateInvitation(ctx context.Context, userID uint, input CreateInvitationInput) (*models.Invitation, error)
	Publish(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	Expire(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	IncrementViews(ctx context.Context, id uint) error
	EffectiveStatus(invitation *models.Invitation) models.InvitationStatus
	GetInvitationBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	GetInvitationForOwner(ctx context.Context, id uint, userID uint) (*models.Invitation, error)
	ListInvitationsForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateSettings(ctx context.Context, id uint, userID uint, settings map[string]interface{}) (*models.Invitation, error)
	DeleteInvitation(ctx context.Context, id uint, userID uint) error
}

// InvitationService IInvitationService arayüzünü uygular.
type InvitationService struct {
	db   *gorm.DB // Transaction için
	repo repositories.IInvitationRepository
	now  func() time.Time
}

// NewInvitationService global bağlantı ile servis oluşturur.
func NewInvitationService() IInvitationService {
	return NewInvitationServiceWithDB(configsdatabase.GetDB())
}

// NewInvitationServiceWithDB verilen bağlantı ile servis oluşturur.
func NewInvitationServiceWithDB(db *gorm.DB) *InvitationService {
	return &InvitationService{
		db:   db,
		repo: repositories.NewInvitationRepositoryTx(db),
		now:  utcNow,
	}
}

func utcNow() time.Time { return time.Now().UTC() }

// CreateInvitation taslak durumunda yeni bir davetiye oluşturur ve şablonun kullanım sayısını artırır.
// İkisi aynı transaction içinde yapılır.
func (s *InvitationService) CreateInvitation(ctx context.Context, userID uint, input CreateInvitationInput) (*models.Invitation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *models.Invitation
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		templateRepoTx := repositories.NewTemplateRepositoryTx(tx)
		invitationRepoTx := repositories.NewInvitationRepositoryTx(tx)

		template, err := templateRepoTx.FindByID(ctx, input.TemplateID)
		if err != nil {
			return mapRepoError("şablon", err, ErrTemplateNotFound)
		}
		if !template.IsPublished() {
			return ErrTemplateNotFound
		}

		exists, err := invitationRepoTx.SlugExists(ctx, input.Slug)
		if err != nil {
			return persistenceError("davetiye slug kontrolü", err)
		}
		if exists {
			return newValidationError("slug", "bu slug zaten kullanılıyor")
		}

		invitation := models.Invitation{
			UserID:        userID,
			TemplateID:    template.ID,
			Slug:          input.Slug,
			EventTitle:    input.EventTitle,
			EventDate:     input.EventDate,
			EventLocation: strings.TrimSpace(input.EventLocation),
			EventAddress:  strings.TrimSpace(input.EventAddress),
			GroomName:     strings.TrimSpace(input.GroomName),
			BrideName:     strings.TrimSpace(input.BrideName),
			Settings:      datatypes.JSONMap(input.Settings),
			Status:        models.InvitationStatusDraft,
			RSVPEnabled:   true,
			ExpiresAt:     input.ExpiresAt,
		}
		if err := invitationRepoTx.Create(ctx, &invitation); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return newValidationError("slug", "bu slug zaten kullanılıyor")
			}
			return persistenceError("davetiye oluşturma", err)
		}

		// rsvp_enabled için veritabanı varsayılanı true; false isteği ayrıca yazılır.
		if input.RSVPEnabled != nil && !*input.RSVPEnabled {
			if err := invitationRepoTx.UpdateColumns(ctx, invitation.ID, map[string]interface{}{"rsvp_enabled": false}); err != nil {
				return persistenceError("davetiye LCV ayarı", err)
			}
			invitation.RSVPEnabled = false
		}

		if err := templateRepoTx.IncrementUsage(ctx, template.ID); err != nil {
			return mapRepoError("şablon kullanım sayacı", err, ErrTemplateNotFound)
		}
		template.UsageCount++
		invitation.Template = template
		created = &invitation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Davetiye oluşturuldu: ID %d, Slug: %s, Kullanıcı: %d", created.ID, created.Slug, userID)
	return created, nil
}

// Publish taslak davetiyeyi yayına alır. Zaten yayındaysa bir şey yapmaz.
// Süresi dolmuş davetiye tekrar yayınlanamaz.
func (s *InvitationService) Publish(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.GetInvitationForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	switch invitation.EffectiveStatus(now) {
	case models.InvitationStatusPublished:
		return invitation, nil
	case models.InvitationStatusExpired:
		return nil, newValidationError("status", "süresi dolmuş davetiye yayınlanamaz")
	}

	err = s.repo.UpdateStatus(ctx, invitation.ID,
		[]models.InvitationStatus{models.InvitationStatusDraft},
		map[string]interface{}{"status": models.InvitationStatusPublished, "published_at": now})
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, persistenceError("davetiye yayınlama", err)
		}
		// Koşullu güncelleme satır bulamadı: silinmiş ya da başka bir istek durumu değiştirmiş.
		current, reloadErr := s.reload(ctx, invitation.ID)
		if reloadErr != nil {
			return nil, reloadErr
		}
		switch current.EffectiveStatus(now) {
		case models.InvitationStatusPublished:
			return current, nil
		case models.InvitationStatusExpired:
			return nil, newValidationError("status", "süresi dolmuş davetiye yayınlanamaz")
		}
		return nil, newValidationError("status", "davetiye durumu eşzamanlı olarak değişti")
	}

	invitation.Status = models.InvitationStatusPublished
	invitation.PublishedAt = &now
	configslog.SLog.Infof("Davetiye yayınlandı: ID %d", invitation.ID)
	return invitation, nil
}

// Expire davetiyeyi süresi dolmuş olarak işaretler. expired son durumdur.
func (s *InvitationService) Expire(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.GetInvitationForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if invitation.Status == models.InvitationStatusExpired {
		return invitation, nil
	}

	err = s.repo.UpdateStatus(ctx, invitation.ID,
		[]models.InvitationStatus{models.InvitationStatusDraft, models.InvitationStatusPublished},
		map[string]interface{}{"status": models.InvitationStatusExpired})
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, persistenceError("davetiye sonlandırma", err)
		}
		current, reloadErr := s.reload(ctx, invitation.ID)
		if reloadErr != nil {
			return nil, reloadErr
		}
		if current.Status == models.InvitationStatusExpired {
			return current, nil
		}
		return nil, persistenceError("davetiye sonlandırma", err)
	}

	invitation.Status = models.InvitationStatusExpired
	configslog.SLog.Infof("Davetiye sonlandırıldı: ID %d", invitation.ID)
	return invitation, nil
}

// reload koşullu güncelleme başarısız olduğunda satırın güncel halini okur.
func (s *InvitationService) reload(ctx context.Context, id uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("davetiye", err, ErrInvitationNotFound)
	}
	return invitation, nil
}

// IncrementViews davetiyenin görüntülenme sayısını atomik olarak bir artırır.
func (s *InvitationService) IncrementViews(ctx context.Context, id uint) error {
	return mapRepoError("davetiye görüntülenme sayacı", s.repo.IncrementViews(ctx, id), ErrInvitationNotFound)
}

// EffectiveStatus davetiyenin okuma anındaki durumunu döner.
func (s *InvitationService) EffectiveStatus(invitation *models.Invitation) models.InvitationStatus {
	return invitation.EffectiveStatus(s.now())
}

// GetInvitationBySlug misafirlere açık davetiyeyi getirir. Yayında değilse bulunamadı döner.
func (s *InvitationService) GetInvitationBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	invitation, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError("davetiye", err, ErrInvitationNotFound)
	}
	if !invitation.IsPubliclyVisible(s.now()) {
		return nil, ErrInvitationNotFound
	}
	return invitation, nil
}

// GetInvitationForOwner davetiyeyi sahibine döner. Başkasına ait davetiye bulunamadı sayılır.
func (s *InvitationService) GetInvitationForOwner(ctx context.Context, id uint, userID uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("davetiye", err, ErrInvitationNotFound)
	}
	if invitation.UserID != userID {
		configslog.Log.Warn("Davetiyeye yetkisiz erişim denemesi", zap.Uint("invitationID", id), zap.Uint("userID", userID))
		return nil, ErrInvitationNotFound
	}
	return invitation, nil
}

// ListInvitationsForUser kullanıcının davetiyelerini sayfalayarak döner.
func (s *InvitationService) ListInvitationsForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	invitations, total, err := s.repo.FindAllByUserIDPaginated(ctx, userID, params)
	if err != nil {
		return nil, persistenceError("davetiye listesi", err)
	}
	return queryparams.NewPaginatedResult(invitations, total, params), nil
}

// UpdateSettings davetiyenin görsel ayarlarını olduğu gibi kaydeder. İçerik doğrulanmaz.
func (s *InvitationService) UpdateSettings(ctx context.Context, id uint, userID uint, settings map[string]interface{}) (*models.Invitation, error) {
	invitation, err := s.GetInvitationForOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}
	if err := s.repo.UpdateColumns(ctx, invitation.ID, map[string]interface{}{"settings": datatypes.JSONMap(settings)}); err != nil {
		return nil, mapRepoError("davetiye ayarları", err, ErrInvitationNotFound)
	}
	invitation.Settings = datatypes.JSONMap(settings)
	return invitation, nil
}

// DeleteInvitation davetiyeyi ve (FK CASCADE ile) misafirlerini siler.
func (s *InvitationService) DeleteInvitation(ctx context.Context, id uint, userID uint) error {
	invitation, err := s.GetInvitationForOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, invitation.ID); err != nil {
		return mapRepoError("davetiye silme", err, ErrInvitationNotFound)
	}
	configslog.SLog.Infof("Davetiye silindi: ID %d, Kullanıcı: %d", invitation.ID, userID)
	return nil
}

var _ IInvitationService = (*InvitationService)(nil)
