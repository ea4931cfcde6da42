package services

import (
	"context"
	"sync"
	"testing"

	"undangan.link/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateSlugs(templates []models.Template) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Slug)
	}
	return out
}

func TestCatalogService_ListFeaturedCategories(t *testing.T) {
	env := newTestEnv(t)

	categories, err := env.catalog.ListFeaturedCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 3)
	assert.Equal(t, "pernikahan", categories[0].Slug)
	assert.Equal(t, "ulang-tahun", categories[1].Slug)
	assert.Equal(t, "acara-keagamaan", categories[2].Slug)
	for _, c := range categories {
		assert.True(t, c.IsFeatured)
	}
}

func TestCatalogService_ListCategoryWithTemplates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resepsi := env.subCategory(t, "pernikahan", "resepsi")
	require.NoError(t, env.db.Model(&models.Template{}).Where("slug = ?", "golden-luxury").UpdateColumn("usage_count", 7).Error)
	env.createTemplate(t, resepsi.ID, "draft-rose", models.TemplateStatusDraft, 100)
	env.createTemplate(t, resepsi.ID, "archived-rose", models.TemplateStatusArchived, 50)

	category, err := env.catalog.ListCategoryWithTemplates(ctx, "pernikahan")
	require.NoError(t, err)

	subSlugs := make([]string, 0, len(category.SubCategories))
	for _, sub := range category.SubCategories {
		subSlugs = append(subSlugs, sub.Slug)
	}
	assert.Equal(t, []string{"akad-nikah", "resepsi", "intimate-wedding", "lamaran", "siraman"}, subSlugs)

	var resepsiTemplates []models.Template
	for _, sub := range category.SubCategories {
		if sub.Slug == "resepsi" {
			resepsiTemplates = sub.Templates
		}
	}
	assert.Equal(t, []string{"golden-luxury", "elegant-rose"}, templateSlugs(resepsiTemplates))
}

func TestCatalogService_ListCategoryWithTemplates_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.ListCategoryWithTemplates(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_ListTopTemplates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	akad := env.subCategory(t, "pernikahan", "akad-nikah")

	for i, slug := range []string{"t-1", "t-2", "t-3", "t-4", "t-5"} {
		env.createTemplate(t, akad.ID, slug, models.TemplateStatusPublished, 10+i)
	}
	env.createTemplate(t, akad.ID, "draft-top", models.TemplateStatusDraft, 1000)

	t.Run("varsayılan limit", func(t *testing.T) {
		templates, err := env.catalog.ListTopTemplates(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"t-5", "t-4", "t-3", "t-2"}, templateSlugs(templates))
	})

	t.Run("limit uygulanır", func(t *testing.T) {
		templates, err := env.catalog.ListTopTemplates(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"t-5", "t-4"}, templateSlugs(templates))
	})

	t.Run("üst sınır ve taslaklar hariç", func(t *testing.T) {
		templates, err := env.catalog.ListTopTemplates(ctx, 500)
		require.NoError(t, err)
		assert.Len(t, templates, 8)
		assert.NotContains(t, templateSlugs(templates), "draft-top")
	})

	t.Run("eşitlikte id sırası", func(t *testing.T) {
		templates, err := env.catalog.ListTopTemplates(ctx, 8)
		require.NoError(t, err)
		// Seed şablonlarının hepsi 0 kullanımda, eklenme sırasıyla gelir.
		assert.Equal(t, []string{"elegant-rose", "classic-white", "golden-luxury"}, templateSlugs(templates[5:]))
	})
}

func TestCatalogService_GetTemplateBySlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	template, err := env.catalog.GetTemplateBySlug(ctx, "pernikahan", "elegant-rose")
	require.NoError(t, err)
	assert.Equal(t, 1, template.ViewsCount)
	assert.Equal(t, "pernikahan", template.CategorySlug())

	template, err = env.catalog.GetTemplateBySlug(ctx, "pernikahan", "elegant-rose")
	require.NoError(t, err)
	assert.Equal(t, 2, template.ViewsCount)
	assert.Equal(t, 2, env.templateBySlug(t, "elegant-rose").ViewsCount)
}

func TestCatalogService_GetTemplateBySlug_CategoryMismatch(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.GetTemplateBySlug(context.Background(), "ulang-tahun", "elegant-rose")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Equal(t, 0, env.templateBySlug(t, "elegant-rose").ViewsCount)
}

func TestCatalogService_GetTemplateBySlug_Unpublished(t *testing.T) {
	env := newTestEnv(t)
	akad := env.subCategory(t, "pernikahan", "akad-nikah")
	env.createTemplate(t, akad.ID, "gizli", models.TemplateStatusDraft, 0)

	_, err := env.catalog.GetTemplateBySlug(context.Background(), "pernikahan", "gizli")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, env.templateBySlug(t, "gizli").ViewsCount)
}

func TestCatalogService_ListRelatedTemplates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	resepsi := env.subCategory(t, "pernikahan", "resepsi")
	env.createTemplate(t, resepsi.ID, "draft-related", models.TemplateStatusDraft, 0)

	template, err := env.catalog.GetPublishedTemplate(ctx, "elegant-rose")
	require.NoError(t, err)

	related, err := env.catalog.ListRelatedTemplates(ctx, template, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"golden-luxury"}, templateSlugs(related))
}

func TestCatalogService_GetPublishedTemplate_NoViewSideEffect(t *testing.T) {
	env := newTestEnv(t)

	template, err := env.catalog.GetPublishedTemplate(context.Background(), "golden-luxury")
	require.NoError(t, err)
	assert.Equal(t, "templates/wedding/GoldenLuxury", template.ComponentPath)
	assert.Equal(t, 0, env.templateBySlug(t, "golden-luxury").ViewsCount)
}

func TestCatalogService_IncrementTemplateUsage_Concurrent(t *testing.T) {
	env := newTestEnv(t)
	template := env.templateBySlug(t, "classic-white")

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, env.catalog.IncrementTemplateUsage(context.Background(), template.ID))
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, env.templateBySlug(t, "classic-white").UsageCount)
}

func TestCatalogService_IncrementTemplateUsage_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.catalog.IncrementTemplateUsage(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	env := newTestEnv(t)

	categories, err := env.catalog.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "event-komunitas", categories[5].Slug)
	assert.Len(t, categories[0].SubCategories, 5)

	brief, err := env.catalog.ListAllCategoriesBrief(context.Background())
	require.NoError(t, err)
	require.Len(t, brief, 6)
	assert.Equal(t, "💍", brief[0].Icon)
	assert.Empty(t, brief[0].Description)
}

func TestCatalogService_FreeTemplateListedRegardlessOfPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	resepsi := env.subCategory(t, "pernikahan", "resepsi")

	template := env.createTemplate(t, resepsi.ID, "gratis-berharga", models.TemplateStatusPublished, 999)
	require.NoError(t, env.db.Model(template).UpdateColumns(map[string]interface{}{
		"is_free": true,
		"price":   decimal.NewFromInt(50000),
	}).Error)

	top, err := env.catalog.ListTopTemplates(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "gratis-berharga", top[0].Slug)
	assert.True(t, top[0].IsFree)
	assert.True(t, decimal.NewFromInt(50000).Equal(top[0].Price))

	category, err := env.catalog.ListCategoryWithTemplates(ctx, "pernikahan")
	require.NoError(t, err)
	var found bool
	for _, sub := range category.SubCategories {
		if sub.Slug == "resepsi" {
			found = assert.Contains(t, templateSlugs(sub.Templates), "gratis-berharga")
		}
	}
	assert.True(t, found)
}

func TestCatalogService_DeleteCategoryCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	inv := env.createPublishedInvitation(t, user.ID, "kaskad")
	_, err := env.guests.AddGuest(ctx, inv.ID, user.ID, AddGuestInput{Name: "Budi"})
	require.NoError(t, err)

	var category models.Category
	require.NoError(t, env.db.Where("slug = ?", "pernikahan").First(&category).Error)
	require.NoError(t, env.db.Delete(&category).Error)

	var subCategories, templates, invitations, guests int64
	require.NoError(t, env.db.Model(&models.SubCategory{}).Where("category_id = ?", category.ID).Count(&subCategories).Error)
	require.NoError(t, env.db.Model(&models.Template{}).
		Where("slug IN ?", []string{"elegant-rose", "classic-white", "golden-luxury"}).Count(&templates).Error)
	require.NoError(t, env.db.Model(&models.Invitation{}).Count(&invitations).Error)
	require.NoError(t, env.db.Model(&models.Guest{}).Count(&guests).Error)
	assert.Zero(t, subCategories)
	assert.Zero(t, templates)
	assert.Zero(t, invitations)
	assert.Zero(t, guests)

	_, err = env.catalog.ListCategoryWithTemplates(ctx, "pernikahan")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = env.users.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
}
