// Package renderer şablon bileşen yollarını gömülü HTML görünümlerine eşler
// ve Fiber üzerinden render işlemini sarar.
package renderer

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	InvitationLayout = "layouts/invitation_layout"
	ErrorLayout      = "layouts/error_layout"
	PlaceholderView  = "templates/placeholder"
	NotFoundView     = "errors/404"
)

var registry = map[string]string{
	"templates/wedding/ElegantRose":  "templates/wedding/elegant_rose",
	"templates/wedding/ClassicWhite": "templates/wedding/classic_white",
	"templates/wedding/GoldenLuxury": "templates/wedding/golden_luxury",
}

// ViewFor component_path için görünüm adını döner. Kayıtlı değilse
// placeholder görünümü ve false döner.
func ViewFor(componentPath string) (string, bool) {
	view, ok := registry[strings.Trim(strings.TrimSpace(componentPath), "/")]
	if !ok {
		return PlaceholderView, false
	}
	return view, true
}

// ComponentPaths kayıtlı bileşen yollarını döner.
func ComponentPaths() []string {
	paths := make([]string, 0, len(registry))
	for p := range registry {
		paths = append(paths, p)
	}
	return paths
}

// Render verilen görünümü durum koduyla birlikte layout içinde render eder.
func Render(c *fiber.Ctx, status int, view string, data fiber.Map, layout string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).Render(view, data, layout)
}

// NotFound 404 sayfasını render eder.
func NotFound(c *fiber.Ctx, title string) error {
	return Render(c, fiber.StatusNotFound, NotFoundView, fiber.Map{"Title": title}, ErrorLayout)
}
