// Package slugify URL dostu slug ve kişiye özel link anahtarları üretir.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const suffixLength = 10

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make metni küçük harfli, aksansız ve tire ile ayrılmış bir slug'a çevirir.
// "Bapak Andi & Ibu Siti" -> "bapak-andi-ibu-siti"
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	plain = strings.ToLower(plain)
	plain = strings.NewReplacer("ı", "i", "ß", "ss", "&", " ").Replace(plain)
	plain = nonSlugChars.ReplaceAllString(plain, "-")
	return strings.Trim(plain, "-")
}

// IsValid verilen değerin Make çıktısı formatında olup olmadığını kontrol eder.
func IsValid(s string) bool {
	return slugPattern.MatchString(s)
}

// RandomSuffix link anahtarları için tahmin edilemez kısa bir ek üretir.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
}

// GuestLink slug ve rastgele ek birleştirerek misafire özel link anahtarı üretir.
func GuestLink(slug string) string {
	if slug == "" {
		return RandomSuffix()
	}
	return slug + "-" + RandomSuffix()
}
