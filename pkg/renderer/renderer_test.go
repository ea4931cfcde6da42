package renderer

import (
	"io/fs"
	"testing"

	"undangan.link/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewFor(t *testing.T) {
	view, ok := ViewFor("templates/wedding/ElegantRose")
	assert.True(t, ok)
	assert.Equal(t, "templates/wedding/elegant_rose", view)

	view, ok = ViewFor(" /templates/wedding/GoldenLuxury/ ")
	assert.True(t, ok)
	assert.Equal(t, "templates/wedding/golden_luxury", view)

	view, ok = ViewFor("templates/birthday/Balloons")
	assert.False(t, ok)
	assert.Equal(t, PlaceholderView, view)
}

func TestRegisteredViewsAreEmbedded(t *testing.T) {
	names := []string{InvitationLayout, ErrorLayout, PlaceholderView, NotFoundView}
	for _, p := range ComponentPaths() {
		view, _ := ViewFor(p)
		names = append(names, view)
	}
	for _, name := range names {
		_, err := fs.Stat(views.FS, name+".html")
		require.NoError(t, err, name)
	}
}
