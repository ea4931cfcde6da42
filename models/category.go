package models

// Category etkinlik türlerinin en üst seviye gruplamasıdır (örn. Pernikahan).
type Category struct {
	BaseModel
	Name        string  `gorm:"type:varchar(150);not null" json:"name"`
	Slug        string  `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Icon        string  `gorm:"type:varchar(50)" json:"icon"`
	Image       *string `gorm:"type:varchar(500)" json:"image,omitempty"`
	IsFeatured  bool    `gorm:"not null;default:false;index" json:"is_featured"`
	SortOrder   int     `gorm:"not null;default:0;index" json:"sort_order"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sub_categories,omitempty"`
}

// SubCategory bir kategorinin alt kırılımıdır (örn. Akad Nikah).
// Slug sadece üst kategori içinde anlamlıdır, global olarak benzersiz değildir.
type SubCategory struct {
	BaseModel
	CategoryID  uint   `gorm:"not null;index" json:"category_id"`
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Slug        string `gorm:"type:varchar(150);not null;index" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`

	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Templates []Template `gorm:"foreignKey:SubCategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"templates,omitempty"`
}
