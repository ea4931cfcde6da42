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
	"gorm.io/gorm"
)

// maxGuestLinkAttempts benzersiz guest_link üretimi için deneme sayısıdır.
const maxGuestLinkAttempts = 5

// AddGuestInput davetiyeye eklenecek misafirin bilgileridir.
type AddGuestInput struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	GuestLink string  `json:"guest_link"`
}

// RSVPInput misafirin LCV cevabıdır.
type RSVPInput struct {
	Status       models.RSVPStatus `json:"rsvp_status" form:"rsvp_status"`
	PlusOneCount int               `json:"plus_one_count" form:"plus_one_count"`
	Message      *string           `json:"message" form:"message"`
}

// Validate gönderilebilir bir LCV cevabı olup olmadığını kontrol eder.
func (in *RSVPInput) Validate() error {
	v := &ValidationError{}
	if !in.Status.IsAnswer() {
		v.Add("rsvp_status", "LCV durumu attending veya not_attending olmalıdır")
	}
	if in.PlusOneCount < 0 {
		v.Add("plus_one_count", "ek kişi sayısı negatif olamaz")
	}
	return v.OrNil()
}

// RSVPSummary bir davetiyenin LCV özetidir.
type RSVPSummary struct {
	InvitationID   uint  `json:"invitation_id"`
	TotalGuests    int64 `json:"total_guests"`
	Pending        int64 `json:"pending"`
	Attending      int64 `json:"attending"`
	NotAttending   int64 `json:"not_attending"`
	Viewed         int64 `json:"viewed"`
	TotalAttendees int64 `json:"total_attendees"` // Katılanlar ve ek kişileri
}

// IGuestService misafir kaydı ve LCV işlemleri için arayüz.
type IGuestService interface {
	AddGuest(ctx context.Context, invitationID uint, userID uint, input AddGuestInput) (*models.Guest, error)
	MarkAsViewed(ctx context.Context, guestID uint) (*models.Guest, error)
	SubmitRsvp(ctx context.Context, guestID uint, input RSVPInput) (*models.Guest, error)
	OpenByLink(ctx context.Context, guestLink string) (*models.Guest, error)
	SubmitRsvpByLink(ctx context.Context, guestLink string, input RSVPInput) (*models.Guest, error)
	ListGuests(ctx context.Context, invitationID uint, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	RSVPSummary(ctx context.Context, invitationID uint, userID uint) (*RSVPSummary, error)
	RemoveGuest(ctx context.Context, guestID uint, userID uint) error
}

// GuestService IGuestService arayüzünü uygular.
type GuestService struct {
	db             *gorm.DB
	guestRepo      repositories.IGuestRepository
	invitationRepo repositories.IInvitationRepository
	now            func() time.Time
	newLink        func(slug string) string
}

// NewGuestService global bağlantı ile servis oluşturur.
func NewGuestService() IGuestService {
	return NewGuestServiceWithDB(configsdatabase.GetDB())
}

// NewGuestServiceWithDB verilen bağlantı ile servis oluşturur.
func NewGuestServiceWithDB(db *gorm.DB) *GuestService {
	return &GuestService{
		db:             db,
		guestRepo:      repositories.NewGuestRepositoryTx(db),
		invitationRepo: repositories.NewInvitationRepositoryTx(db),
		now:            utcNow,
		newLink:        slugify.GuestLink,
	}
}

func (s *GuestService) ownedInvitation(ctx context.Context, invitationID, userID uint) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return nil, mapRepoError("davetiye", err, ErrInvitationNotFound)
	}
	if invitation.UserID != userID {
		return nil, ErrInvitationNotFound
	}
	return invitation, nil
}

// AddGuest davetiyeye misafir ekler. Slug boşsa isimden türetilir, guest_link boşsa üretilir.
func (s *GuestService) AddGuest(ctx context.Context, invitationID uint, userID uint, input AddGuestInput) (*models.Guest, error) {
	invitation, err := s.ownedInvitation(ctx, invitationID, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = slugify.Make(name)
	}
	v := &ValidationError{}
	if name == "" {
		v.Add("name", "misafir adı zorunludur")
	}
	if slug == "" || !slugify.IsValid(slug) {
		v.Add("slug", "geçerli bir slug üretilemedi")
	}
	v.MaxLength("name", name, 150)
	v.MaxLength("slug", slug, 150)
	v.MaxLength("guest_link", strings.TrimSpace(input.GuestLink), 255)
	if input.Phone != nil {
		v.MaxLength("phone", strings.TrimSpace(*input.Phone), 30)
	}
	if input.Email != nil {
		v.MaxLength("email", strings.TrimSpace(*input.Email), 150)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	exists, err := s.guestRepo.SlugExists(ctx, invitation.ID, slug)
	if err != nil {
		return nil, persistenceError("misafir slug kontrolü", err)
	}
	if exists {
		return nil, newValidationError("slug", "bu slug davetiyede zaten kullanılıyor")
	}

	guestLink, err := s.resolveGuestLink(ctx, slug, strings.TrimSpace(input.GuestLink))
	if err != nil {
		return nil, err
	}

	guest := models.Guest{
		InvitationID: invitation.ID,
		Name:         name,
		Slug:         slug,
		Phone:        trimmedOrNil(input.Phone),
		Email:        trimmedOrNil(input.Email),
		GuestLink:    guestLink,
		RSVPStatus:   models.RSVPStatusPending,
	}
	if err := s.guestRepo.Create(ctx, &guest); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, s.duplicateGuestError(ctx, invitation.ID, slug)
		}
		return nil, persistenceError("misafir oluşturma", err)
	}

	configslog.SLog.Infof("Misafir eklendi: ID %d, Davetiye: %d", guest.ID, invitation.ID)
	return &guest, nil
}

// resolveGuestLink verilen linki doğrular ya da benzersiz bir link üretir.
func (s *GuestService) resolveGuestLink(ctx context.Context, slug, requested string) (string, error) {
	if requested != "" {
		if !slugify.IsValid(requested) {
			return "", newValidationError("guest_link", "link sadece küçük harf, rakam ve tire içerebilir")
		}
		exists, err := s.guestRepo.LinkExists(ctx, requested)
		if err != nil {
			return "", persistenceError("guest_link kontrolü", err)
		}
		if exists {
			return "", newValidationError("guest_link", "bu link zaten kullanılıyor")
		}
		return requested, nil
	}

	for attempt := 0; attempt < maxGuestLinkAttempts; attempt++ {
		candidate := s.newLink(slug)
		exists, err := s.guestRepo.LinkExists(ctx, candidate)
		if err != nil {
			return "", persistenceError("guest_link kontrolü", err)
		}
		if !exists {
			return candidate, nil
		}
		configslog.Log.Debug("guest_link çakıştı, yeniden deneniyor", zap.Int("attempt", attempt+1))
	}
	return "", newValidationError("guest_link", "benzersiz link üretilemedi")
}

// duplicateGuestError eşzamanlı eklemede hangi benzersizlik kısıtının ihlal edildiğini bulur.
func (s *GuestService) duplicateGuestError(ctx context.Context, invitationID uint, slug string) error {
	if exists, err := s.guestRepo.SlugExists(ctx, invitationID, slug); err == nil && exists {
		return newValidationError("slug", "bu slug davetiyede zaten kullanılıyor")
	}
	return newValidationError("guest_link", "bu link zaten kullanılıyor")
}

// MarkAsViewed misafiri davetiyeyi görmüş olarak işaretler.
// viewed_at her seferinde güncellenir, first_viewed_at ilk değerini korur.
func (s *GuestService) MarkAsViewed(ctx context.Context, guestID uint) (*models.Guest, error) {
	if err := s.guestRepo.MarkViewed(ctx, guestID, s.now()); err != nil {
		return nil, mapRepoError("misafir görüntüleme", err, ErrGuestNotFound)
	}
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, mapRepoError("misafir", err, ErrGuestNotFound)
	}
	return guest, nil
}

// SubmitRsvp misafirin LCV cevabını kaydeder. Son gönderilen cevap geçerlidir.
func (s *GuestService) SubmitRsvp(ctx context.Context, guestID uint, input RSVPInput) (*models.Guest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, mapRepoError("misafir", err, ErrGuestNotFound)
	}
	return s.applyRsvp(ctx, guest, input)
}

func (s *GuestService) applyRsvp(ctx context.Context, guest *models.Guest, input RSVPInput) (*models.Guest, error) {
	if guest.Invitation != nil && !guest.Invitation.RSVPEnabled {
		return nil, newValidationError("rsvp_enabled", "bu davetiye için LCV kapalı")
	}

	now := s.now()
	message := trimmedOrNil(input.Message)
	if err := s.guestRepo.UpdateRSVP(ctx, guest.ID, input.Status, input.PlusOneCount, message, now); err != nil {
		return nil, mapRepoError("LCV kaydı", err, ErrGuestNotFound)
	}

	guest.RSVPStatus = input.Status
	guest.RSVPAt = &now
	guest.PlusOneCount = input.PlusOneCount
	guest.Message = message
	configslog.SLog.Infof("LCV kaydedildi: Misafir %d, Durum: %s", guest.ID, input.Status)
	return guest, nil
}

// resolveLink linki misafire çözer. Davetiye yayında değilse bulunamadı döner.
func (s *GuestService) resolveLink(ctx context.Context, guestLink string) (*models.Guest, error) {
	if guestLink == "" {
		return nil, ErrGuestNotFound
	}
	guest, err := s.guestRepo.FindByLink(ctx, guestLink)
	if err != nil {
		return nil, mapRepoError("misafir linki", err, ErrGuestNotFound)
	}
	if guest.Invitation == nil || !guest.Invitation.IsPubliclyVisible(s.now()) {
		return nil, ErrInvitationNotFound
	}
	return guest, nil
}

// OpenByLink misafirin kişisel linkiyle davetiyeyi açar.
// Misafir görüntülemiş sayılır ve davetiyenin görüntülenme sayısı artar.
func (s *GuestService) OpenByLink(ctx context.Context, guestLink string) (*models.Guest, error) {
	guest, err := s.resolveLink(ctx, guestLink)
	if err != nil {
		return nil, err
	}

	now := s.now()
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewGuestRepositoryTx(tx).MarkViewed(ctx, guest.ID, now); err != nil {
			return mapRepoError("misafir görüntüleme", err, ErrGuestNotFound)
		}
		if err := repositories.NewInvitationRepositoryTx(tx).IncrementViews(ctx, guest.InvitationID); err != nil {
			return mapRepoError("davetiye görüntülenme sayacı", err, ErrInvitationNotFound)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	guest.HasViewed = true
	guest.ViewedAt = &now
	if guest.FirstViewedAt == nil {
		guest.FirstViewedAt = &now
	}
	guest.Invitation.ViewsCount++
	return guest, nil
}

// SubmitRsvpByLink kişisel link üzerinden LCV cevabı kaydeder.
func (s *GuestService) SubmitRsvpByLink(ctx context.Context, guestLink string, input RSVPInput) (*models.Guest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	guest, err := s.resolveLink(ctx, guestLink)
	if err != nil {
		return nil, err
	}
	return s.applyRsvp(ctx, guest, input)
}

// ListGuests davetiyenin misafirlerini eklenme sırasına göre listeler.
func (s *GuestService) ListGuests(ctx context.Context, invitationID uint, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	invitation, err := s.ownedInvitation(ctx, invitationID, userID)
	if err != nil {
		return nil, err
	}
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}
	if params.OrderBy == "" {
		params.OrderBy = "asc"
	}
	params.Validate()

	guests, total, err := s.guestRepo.FindByInvitationPaginated(ctx, invitation.ID, params)
	if err != nil {
		return nil, persistenceError("misafir listesi", err)
	}
	return queryparams.NewPaginatedResult(guests, total, params), nil
}

// RSVPSummary davetiyenin LCV durumlarını özetler.
func (s *GuestService) RSVPSummary(ctx context.Context, invitationID uint, userID uint) (*RSVPSummary, error) {
	invitation, err := s.ownedInvitation(ctx, invitationID, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.guestRepo.CountsByInvitation(ctx, invitation.ID)
	if err != nil {
		return nil, persistenceError("LCV özeti", err)
	}
	return &RSVPSummary{
		InvitationID:   invitation.ID,
		TotalGuests:    counts.Total,
		Pending:        counts.Pending,
		Attending:      counts.Attending,
		NotAttending:   counts.NotAttending,
		Viewed:         counts.Viewed,
		TotalAttendees: counts.Attending + counts.PlusOnes,
	}, nil
}

// RemoveGuest misafiri siler. Sadece davetiye sahibi silebilir.
func (s *GuestService) RemoveGuest(ctx context.Context, guestID uint, userID uint) error {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return mapRepoError("misafir", err, ErrGuestNotFound)
	}
	if guest.Invitation == nil || guest.Invitation.UserID != userID {
		return ErrGuestNotFound
	}
	if err := s.guestRepo.Delete(ctx, guest.ID); err != nil {
		return mapRepoError("misafir silme", err, ErrGuestNotFound)
	}
	configslog.SLog.Infof("Misafir silindi: ID %d, Davetiye: %d", guest.ID, guest.InvitationID)
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

var _ IGuestService = (*GuestService)(nil)
