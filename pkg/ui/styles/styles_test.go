package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jive-vlbi/ptboot/pkg/ui/styles"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Info", "Bold", "Muted"} {
		_, ok := styles.StyleRegistry[name]
		assert.True(t, ok, "style %s missing from registry", name)
	}
}

func TestGetStyleUnknownName(t *testing.T) {
	// Unknown names fall back to a zero style instead of panicking.
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromDataMalformed(t *testing.T) {
	// A parse error must not clobber the loaded registry.
	err := styles.LoadStylesFromData([]byte("{not yaml"))
	assert.Error(t, err)
	assert.NotEmpty(t, styles.StyleRegistry)
}
