package models

import "time"

// Guest bir davetiyedeki davetlidir. GuestLink kişiye özel erişim anahtarıdır.
type Guest struct {
	BaseModel
	InvitationID  uint       `gorm:"not null;uniqueIndex:idx_guests_invitation_slug,priority:1" json:"invitation_id"`
	Name          string     `gorm:"type:varchar(150);not null" json:"name"`
	Slug          string     `gorm:"type:varchar(150);not null;uniqueIndex:idx_guests_invitation_slug,priority:2" json:"slug"` // örn: "john-doe"
	Phone         *string    `gorm:"type:varchar(30)" json:"phone"`
	Email         *string    `gorm:"type:varchar(150)" json:"email"`
	GuestLink     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"guest_link"`
	HasViewed     bool       `gorm:"not null;default:false" json:"has_viewed"`
	FirstViewedAt *time.Time `json:"first_viewed_at"` // Sadece ilk açılışta yazılır
	ViewedAt      *time.Time `json:"viewed_at"`       // Her açılışta güncellenir
	RSVPStatus    RSVPStatus `gorm:"column:rsvp_status;type:varchar(20);not null;default:'pending';index" json:"rsvp_status"`
	RSVPAt        *time.Time `gorm:"column:rsvp_at" json:"rsvp_at"`
	PlusOneCount  int        `gorm:"not null;default:0" json:"plus_one_count"`
	Message       *string    `gorm:"type:text" json:"message"` // Misafirin dileği/notu

	Invitation *Invitation `gorm:"foreignKey:InvitationID" json:"-"`
}

// AttendeeCount misafirin getireceği toplam kişi sayısıdır (kendisi dahil).
func (g *Guest) AttendeeCount() int {
	if g.RSVPStatus != RSVPStatusAttending {
		return 0
	}
	return 1 + g.PlusOneCount
}
