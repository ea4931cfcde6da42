package handlers

import (
	"errors"

	"undangan.link/handlers/respond"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

// indexTemplatesLimit şablon kataloğu sayfasındaki popüler şablon sayısıdır.
const indexTemplatesLimit = 8

// CatalogHandler herkese açık kategori ve şablon uç noktalarını sunar.
type CatalogHandler struct {
	catalogService services.ICatalogService
}

func NewCatalogHandler(catalogService services.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Home (GET /api/home)
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	categories, err := h.catalogService.ListFeaturedCategories(ctx)
	if err != nil {
		return respond.Error(c, err)
	}
	templates, err := h.catalogService.ListTopTemplates(ctx, services.DefaultTopTemplatesLimit)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"categories":        categories,
		"featuredTemplates": templates,
	})
}

// Index (GET /api/templates)
// ?limit= ile popüler şablon sayısı değiştirilebilir.
func (h *CatalogHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	categories, err := h.catalogService.ListCategories(ctx)
	if err != nil {
		return respond.Error(c, err)
	}
	templates, err := h.catalogService.ListTopTemplates(ctx, c.QueryInt("limit", indexTemplatesLimit))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"categories":        categories,
		"featuredTemplates": templates,
	})
}

// Category (GET /api/templates/:category)
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category, err := h.catalogService.ListCategoryWithTemplates(ctx, c.Params("category"))
	if err != nil {
		return respond.Error(c, err)
	}
	all, err := h.catalogService.ListAllCategoriesBrief(ctx)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"category":      category,
		"allCategories": all,
	})
}

// Show (GET /api/templates/:category/:template)
// Her çağrı şablonun görüntülenme sayısını bir artırır.
func (h *CatalogHandler) Show(c *fiber.Ctx) error {
	ctx := c.UserContext()
	template, err := h.catalogService.GetTemplateBySlug(ctx, c.Params("category"), c.Params("template"))
	if err != nil {
		return respond.Error(c, err)
	}
	related, err := h.catalogService.ListRelatedTemplates(ctx, template, services.DefaultRelatedTemplatesLimit)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"template":         template,
		"relatedTemplates": related,
	})
}

// Preview (GET /templates/preview/:template)
// Şablonu demo verisiyle HTML olarak render eder.
func (h *CatalogHandler) Preview(c *fiber.Ctx) error {
	template, err := h.catalogService.GetPublishedTemplate(c.UserContext(), c.Params("template"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return renderer.NotFound(c, "Template tidak ditemukan")
		}
		return respond.Error(c, err)
	}

	view, _ := renderer.ViewFor(template.ComponentPath)
	return renderer.Render(c, fiber.StatusOK, view, fiber.Map{
		"Title":       "Preview " + template.Name,
		"Template":    template,
		"Payload":     services.DemoPayload(),
		"IsPreview":   true,
		"RSVPEnabled": false,
	}, renderer.InvitationLayout)
}
