package seeders

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type subCategorySeed struct {
	Name        string
	Slug        string
	Description string
}

type categorySeed struct {
	Name          string
	Slug          string
	Description   string
	Icon          string
	IsFeatured    bool
	SortOrder     int
	SubCategories []subCategorySeed
}

var categorySeeds = []categorySeed{
	{
		Name: "Pernikahan", Slug: "pernikahan", Icon: "💍", IsFeatured: true, SortOrder: 1,
		Description: "Undangan digital untuk acara pernikahan, akad nikah, resepsi, dan pre-wedding event",
		SubCategories: []subCategorySeed{
			{"Akad Nikah", "akad-nikah", "Undangan khusus acara akad nikah"},
			{"Resepsi", "resepsi", "Undangan resepsi pernikahan"},
			{"Intimate Wedding", "intimate-wedding", "Undangan pernikahan sederhana dan intimate"},
			{"Lamaran", "lamaran", "Undangan acara lamaran"},
			{"Siraman", "siraman", "Undangan acara siraman pengantin"},
		},
	},
	{
		Name: "Ulang Tahun", Slug: "ulang-tahun", Icon: "🎂", IsFeatured: true, SortOrder: 2,
		Description: "Undangan digital untuk perayaan ulang tahun berbagai usia",
		SubCategories: []subCategorySeed{
			{"Ulang Tahun Anak (1-5 tahun)", "ulang-tahun-anak", "Undangan ulang tahun untuk anak-anak"},
			{"Sweet Seventeen", "sweet-seventeen", "Undangan ulang tahun ke-17"},
			{"Milestone Birthday", "milestone-birthday", "Undangan ulang tahun milestone (30, 40, 50 tahun)"},
			{"Ulang Tahun Perusahaan", "ulang-tahun-perusahaan", "Undangan anniversary perusahaan/organisasi"},
		},
	},
	{
		Name: "Acara Keagamaan", Slug: "acara-keagamaan", Icon: "🕌", IsFeatured: true, SortOrder: 3,
		Description: "Undangan untuk acara keagamaan Islam",
		SubCategories: []subCategorySeed{
			{"Aqiqah", "aqiqah", "Undangan acara aqiqah"},
			{"Syukuran Kelahiran", "syukuran-kelahiran", "Undangan syukuran kelahiran bayi"},
			{"Khitanan", "khitanan", "Undangan acara khitanan/sunatan"},
			{"Pengajian", "pengajian", "Undangan pengajian/tahlilan"},
			{"Maulid Nabi", "maulid-nabi", "Undangan perayaan Maulid Nabi Muhammad SAW"},
			{"Halal Bihalal", "halal-bihalal", "Undangan halal bihalal pasca Lebaran"},
		},
	},
	{
		Name: "Corporate Events", Slug: "corporate-events", Icon: "💼", SortOrder: 4,
		Description: "Undangan untuk acara korporat dan bisnis",
		SubCategories: []subCategorySeed{
			{"Seminar & Workshop", "seminar-workshop", "Undangan seminar dan workshop"},
			{"Grand Opening", "grand-opening", "Undangan grand opening usaha"},
			{"Meeting & Gathering", "meeting-gathering", "Undangan meeting dan gathering perusahaan"},
			{"Launching Produk", "launching-produk", "Undangan peluncuran produk baru"},
		},
	},
	{
		Name: "Acara Keluarga", Slug: "acara-keluarga", Icon: "👨‍👩‍👧‍👦", SortOrder: 5,
		Description: "Undangan untuk acara kumpul keluarga",
		SubCategories: []subCategorySeed{
			{"Reuni Keluarga", "reuni-keluarga", "Undangan reuni keluarga besar"},
			{"Reuni Alumni", "reuni-alumni", "Undangan reuni alumni sekolah/kampus"},
			{"Arisan", "arisan", "Undangan acara arisan"},
			{"Syukuran Umum", "syukuran-umum", "Undangan syukuran (naik haji, wisuda, dll)"},
		},
	},
	{
		Name: "Event Komunitas", Slug: "event-komunitas", Icon: "🎪", SortOrder: 6,
		Description: "Undangan untuk acara komunitas dan publik",
		SubCategories: []subCategorySeed{
			{"Gathering Komunitas", "gathering-komunitas", "Undangan gathering anggota komunitas"},
			{"Charity Event", "charity-event", "Undangan acara amal/charity"},
			{"Festival & Bazaar", "festival-bazaar", "Undangan festival dan bazaar"},
		},
	},
}

// SeedCategories kategorileri ve alt kategorileri oluşturur.
// Slug'ı zaten mevcut olan kategoriler atlanır, bu yüzden tekrar çalıştırılabilir.
func SeedCategories(db *gorm.DB) error {
	var createdCount int
	errorOccurred := false

	configslog.SLog.Info("Kategori seed işlemi başlıyor...")

	for _, seed := range categorySeeds {
		var existing models.Category
		result := db.Where("slug = ?", seed.Slug).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Kategori '%s' zaten mevcut, atlanıyor.", seed.Slug)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kategori kontrol edilirken veritabanı hatası", zap.String("slug", seed.Slug), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		category := models.Category{
			Name:        seed.Name,
			Slug:        seed.Slug,
			Description: seed.Description,
			Icon:        seed.Icon,
			IsFeatured:  seed.IsFeatured,
			SortOrder:   seed.SortOrder,
		}
		for i, sub := range seed.SubCategories {
			category.SubCategories = append(category.SubCategories, models.SubCategory{
				Name:        sub.Name,
				Slug:        sub.Slug,
				Description: sub.Description,
				SortOrder:   i + 1,
			})
		}

		if err := db.Create(&category).Error; err != nil {
			configslog.Log.Error("Kategori oluşturulamadı", zap.String("slug", seed.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Kategori '%s' oluşturuldu (ID: %d, %d alt kategori).", category.Slug, category.ID, len(category.SubCategories))
		createdCount++
	}

	if errorOccurred {
		return errors.New("kategoriler seed edilirken en az bir hata oluştu")
	}
	if createdCount == 0 {
		configslog.SLog.Info("Tüm kategoriler zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}
