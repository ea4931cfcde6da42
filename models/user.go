package models

// User platforma kayıtlı, davetiye oluşturan kullanıcıdır.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	// Kullanıcı silinince davetiyeleri (ve onların misafirleri) de silinir.
	Invitations []Invitation `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
