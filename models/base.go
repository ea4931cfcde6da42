package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları içerir.
// Soft delete kullanılmaz: silmeler veritabanındaki CASCADE kısıtlarına dayanır.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
