package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invitation kullanıcının bir şablondan oluşturduğu etkinlik davetiyesidir.
type Invitation struct {
	BaseModel
	UserID        uint              `gorm:"not null;index" json:"user_id"`
	TemplateID    uint              `gorm:"not null;index" json:"template_id"`
	Slug          string            `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"` // örn: "rizki-wedding"
	EventTitle    string            `gorm:"type:varchar(255);not null" json:"event_title"`
	EventDate     *time.Time        `json:"event_date"`
	EventLocation string            `gorm:"type:varchar(255)" json:"event_location"`
	EventAddress  string            `gorm:"type:text" json:"event_address"`
	GroomName     string            `gorm:"type:varchar(150)" json:"groom_name"`
	BrideName     string            `gorm:"type:varchar(150)" json:"bride_name"`
	Settings      datatypes.JSONMap `json:"settings"` // Renkler, fontlar vb. Doğrulanmaz.
	Status        InvitationStatus  `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	ViewsCount    int               `gorm:"not null;default:0" json:"views_count"`
	RSVPEnabled   bool              `gorm:"column:rsvp_enabled;not null;default:true" json:"rsvp_enabled"`
	PublishedAt   *time.Time        `json:"published_at"`
	ExpiresAt     *time.Time        `gorm:"index" json:"expires_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Template *Template `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Guests   []Guest   `gorm:"foreignKey:InvitationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"guests,omitempty"`
}

// EffectiveStatus kayıtlı durumu okuma anındaki zamana göre yorumlar.
// Arka planda süre dolumunu işleyen bir iş yok; expires_at geçmişse davetiye expired sayılır.
func (i *Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status != InvitationStatusExpired && i.ExpiresAt != nil && now.After(*i.ExpiresAt) {
		return InvitationStatusExpired
	}
	return i.Status
}

// IsPubliclyVisible davetiyenin misafirlere gösterilip gösterilemeyeceğini söyler.
func (i *Invitation) IsPubliclyVisible(now time.Time) bool {
	return i.EffectiveStatus(now) == InvitationStatusPublished
}

// SettingString ayarlar içindeki bir metin değeri okur, yoksa varsayılanı döner.
func (i *Invitation) SettingString(key, fallback string) string {
	if i.Settings == nil {
		return fallback
	}
	if v, ok := i.Settings[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
