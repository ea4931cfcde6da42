package slugify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"John Doe":                "john-doe",
		"  Bapak Andi & Ibu Siti ": "bapak-andi-ibu-siti",
		"Rizki's Wedding!!":       "rizki-s-wedding",
		"Çağrı Öztürk":            "cagri-ozturk",
		"Pernikahan 2026":         "pernikahan-2026",
		"---":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), "input %q", in)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("rizki-wedding"))
	assert.True(t, IsValid("a1"))
	assert.False(t, IsValid("Rizki-Wedding"))
	assert.False(t, IsValid("-rizki"))
	assert.False(t, IsValid("rizki--wedding"))
	assert.False(t, IsValid(""))
}

func TestGuestLink(t *testing.T) {
	link := GuestLink("john-doe")
	assert.True(t, strings.HasPrefix(link, "john-doe-"))
	assert.Len(t, link, len("john-doe-")+suffixLength)
	assert.True(t, IsValid(link))

	assert.NotEqual(t, GuestLink("john-doe"), GuestLink("john-doe"))
	assert.Len(t, GuestLink(""), suffixLength)
}
