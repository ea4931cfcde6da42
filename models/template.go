package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Template bir alt kategoriye bağlı, davetiye oluşturmak için kullanılan tasarımdır.
type Template struct {
	BaseModel
	SubCategoryID      uint                        `gorm:"not null;index" json:"sub_category_id"`
	Name               string                      `gorm:"type:varchar(255);not null" json:"name"`
	Slug               string                      `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description        string                      `gorm:"type:text" json:"description"`
	PreviewImage       *string                     `gorm:"type:varchar(500)" json:"preview_image"`
	DemoURL            *string                     `gorm:"column:demo_url;type:varchar(500)" json:"demo_url"`
	ComponentPath      string                      `gorm:"type:varchar(255);not null" json:"component_path"` // Render edecek bileşenin yolu
	Price              decimal.Decimal             `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsFree             bool                        `gorm:"not null;default:false" json:"is_free"`
	IsPremium          bool                        `gorm:"not null;default:false" json:"is_premium"`
	Features           datatypes.JSONSlice[string] `json:"features"`
	CustomizableFields datatypes.JSONSlice[string] `json:"customizable_fields"`
	Status             TemplateStatus              `gorm:"type:varchar(20);not null;default:'published';index" json:"status"`
	ViewsCount         int                         `gorm:"not null;default:0" json:"views_count"`
	UsageCount         int                         `gorm:"not null;default:0;index" json:"usage_count"`

	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Invitations []Invitation `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// IsPublished şablonun listelerde görünüp görünmeyeceğini söyler.
func (t *Template) IsPublished() bool {
	return t.Status == TemplateStatusPublished
}

// CategorySlug yüklenmiş ilişkiler üzerinden üst kategorinin slug'ını döner.
// İlişkiler preload edilmemişse boş string döner.
func (t *Template) CategorySlug() string {
	if t.SubCategory == nil || t.SubCategory.Category == nil {
		return ""
	}
	return t.SubCategory.Category.Slug
}
