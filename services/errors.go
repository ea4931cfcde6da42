package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"undangan.link/repositories"
)

// ServiceError servis katmanının hata sınıflarıdır.
// Handler'lar HTTP durum kodunu bu sınıfa göre seçer.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrNotFound    ServiceError = "kayıt bulunamadı"
	ErrValidation  ServiceError = "doğrulama başarısız"
	ErrPersistence ServiceError = "kalıcılık hatası"
)

// kindError bir hata sınıfına bağlı, kendine özgü mesajı olan sentinel hatadır.
type kindError struct {
	kind ServiceError
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newNotFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

var (
	ErrCategoryNotFound   = newNotFound("kategori bulunamadı")
	ErrTemplateNotFound   = newNotFound("şablon bulunamadı")
	ErrInvitationNotFound = newNotFound("davetiye bulunamadı")
	ErrGuestNotFound      = newNotFound("misafir bulunamadı")
	ErrUserNotFound       = newNotFound("kullanıcı bulunamadı")
)

// ValidationError alan bazlı doğrulama hatalarını taşır.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return string(ErrValidation) + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add alan hatası ekler. Aynı alan için ilk mesaj korunur.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// MaxLength değer sütun boyutunu aşıyorsa alan hatası ekler.
func (e *ValidationError) MaxLength(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		e.Add(field, fmt.Sprintf("en fazla %d karakter olabilir", max))
	}
}

// OrNil hiç alan hatası yoksa nil döner.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func newValidationError(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// IsValidationField hatanın verilen alan için bir doğrulama hatası olup olmadığını söyler.
func IsValidationField(err error, field string) bool {
	var v *ValidationError
	if !errors.As(err, &v) {
		return false
	}
	_, ok := v.Fields[field]
	return ok
}

// persistenceError beklenmeyen depolama hatalarını ErrPersistence ile sarar.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}

// mapRepoError repository hatasını servis taksonomisine çevirir.
// ErrNotFound verilen sentinel'e, diğer her şey ErrPersistence'a dönüşür.
func mapRepoError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return notFound
	}
	return persistenceError(op, err)
}
