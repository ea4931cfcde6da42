package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// ErrInvalidCredentials e-posta veya şifre hatalı olduğunda döner.
var ErrInvalidCredentials = &kindError{kind: ErrValidation, msg: "e-posta veya şifre hatalı"}

// IUserService kullanıcı işlemleri için arayüz.
type IUserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	DeleteAccount(ctx context.Context, userID uint, password string) error
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	repo       repositories.IUserRepository
	bcryptCost int
}

func NewUserService() IUserService {
	return NewUserServiceWithDB(configsdatabase.GetDB())
}

func NewUserServiceWithDB(db *gorm.DB) *UserService {
	return &UserService{
		repo:       repositories.NewUserRepositoryTx(db),
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register yeni bir kullanıcı oluşturur. Şifre bcrypt ile saklanır.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	v := &ValidationError{}
	if name == "" {
		v.Add("name", "ad zorunludur")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "geçerli bir e-posta adresi girin")
	}
	if len(password) < minPasswordLength {
		v.Add("password", "şifre en az 8 karakter olmalıdır")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, persistenceError("e-posta kontrolü", err)
	}
	if exists {
		return nil, newValidationError("email", "bu e-posta adresi zaten kayıtlı")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		configslog.Log.Error("Şifre hashlenemedi", zap.Error(err))
		return nil, newValidationError("password", "şifre işlenemedi")
	}

	user := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newValidationError("email", "bu e-posta adresi zaten kayıtlı")
		}
		return nil, persistenceError("kullanıcı oluşturma", err)
	}
	configslog.SLog.Infof("Kullanıcı kaydedildi: ID %d", user.ID)
	return &user, nil
}

// Authenticate e-posta ve şifreyi doğrular.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, persistenceError("kullanıcı", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("kullanıcı", err, ErrUserNotFound)
	}
	return user, nil
}

// DeleteAccount mevcut şifre doğrulandıktan sonra hesabı siler.
// Kullanıcının davetiyeleri ve misafirleri FK CASCADE ile silinir.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint, password string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return newValidationError("password", "şifre hatalı")
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return mapRepoError("hesap silme", err, ErrUserNotFound)
	}
	configslog.SLog.Infof("Hesap silindi: ID %d", user.ID)
	return nil
}

var _ IUserService = (*UserService)(nil)
