package seeders

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type templateSeed struct {
	CategorySlug    string
	SubCategorySlug string
	Template        models.Template
}

func stringPtr(s string) *string { return &s }

var templateSeeds = []templateSeed{
	{
		CategorySlug: "pernikahan", SubCategorySlug: "resepsi",
		Template: models.Template{
			Name:          "Elegant Rose",
			Slug:          "elegant-rose",
			Description:   "Desain romantis bernuansa mawar dengan animasi lembut",
			PreviewImage:  stringPtr("/images/templates/elegant-rose.jpg"),
			DemoURL:       stringPtr("/templates/preview/elegant-rose"),
			ComponentPath: "templates/wedding/ElegantRose",
			Price:         decimal.Zero,
			IsFree:        true,
			Features:      datatypes.JSONSlice[string]{"Ayat Al-Quran", "Galeri Foto", "RSVP Online", "Peta Lokasi"},
			CustomizableFields: datatypes.JSONSlice[string]{
				"bride_full_name", "groom_full_name", "akad_date", "resepsi_date", "gallery", "map_url",
			},
			Status: models.TemplateStatusPublished,
		},
	},
	{
		CategorySlug: "pernikahan", SubCategorySlug: "akad-nikah",
		Template: models.Template{
			Name:               "Classic White",
			Slug:               "classic-white",
			Description:        "Tampilan putih klasik yang bersih dan elegan",
			PreviewImage:       stringPtr("/images/templates/classic-white.jpg"),
			DemoURL:            stringPtr("/templates/preview/classic-white"),
			ComponentPath:      "templates/wedding/ClassicWhite",
			Price:              decimal.NewFromInt(49000),
			Features:           datatypes.JSONSlice[string]{"Ayat Al-Quran", "RSVP Online", "Peta Lokasi"},
			CustomizableFields: datatypes.JSONSlice[string]{"bride_full_name", "groom_full_name", "akad_date"},
			Status:             models.TemplateStatusPublished,
		},
	},
	{
		CategorySlug: "pernikahan", SubCategorySlug: "resepsi",
		Template: models.Template{
			Name:               "Golden Luxury",
			Slug:               "golden-luxury",
			Description:        "Nuansa emas mewah untuk resepsi yang berkesan",
			PreviewImage:       stringPtr("/images/templates/golden-luxury.jpg"),
			DemoURL:            stringPtr("/templates/preview/golden-luxury"),
			ComponentPath:      "templates/wedding/GoldenLuxury",
			Price:              decimal.NewFromInt(99000),
			IsPremium:          true,
			Features:           datatypes.JSONSlice[string]{"Ayat Al-Quran", "Galeri Foto", "RSVP Online", "Peta Lokasi", "Musik Latar"},
			CustomizableFields: datatypes.JSONSlice[string]{"bride_full_name", "groom_full_name", "resepsi_date", "gallery", "map_url"},
			Status:             models.TemplateStatusPublished,
		},
	},
}

// SeedTemplates örnek düğün şablonlarını oluşturur. Kategoriler önceden seed edilmiş olmalıdır.
func SeedTemplates(db *gorm.DB) error {
	errorOccurred := false
	configslog.SLog.Info("Şablon seed işlemi başlıyor...")

	for _, seed := range templateSeeds {
		var count int64
		if err := db.Model(&models.Template{}).Where("slug = ?", seed.Template.Slug).Count(&count).Error; err != nil {
			configslog.Log.Error("Şablon kontrol edilirken veritabanı hatası", zap.String("slug", seed.Template.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		if count > 0 {
			configslog.SLog.Debugf("Şablon '%s' zaten mevcut, atlanıyor.", seed.Template.Slug)
			continue
		}

		var sub models.SubCategory
		err := db.Joins("JOIN categories ON categories.id = sub_categories.category_id").
			Where("categories.slug = ? AND sub_categories.slug = ?", seed.CategorySlug, seed.SubCategorySlug).
			First(&sub).Error
		if err != nil {
			configslog.Log.Error("Şablonun alt kategorisi bulunamadı",
				zap.String("category", seed.CategorySlug), zap.String("sub_category", seed.SubCategorySlug), zap.Error(err))
			errorOccurred = true
			continue
		}

		template := seed.Template
		template.SubCategoryID = sub.ID
		if err := db.Create(&template).Error; err != nil {
			configslog.Log.Error("Şablon oluşturulamadı", zap.String("slug", template.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Şablon '%s' oluşturuldu (ID: %d).", template.Slug, template.ID)
	}

	if errorOccurred {
		return errors.New("şablonlar seed edilirken en az bir hata oluştu")
	}
	return nil
}
