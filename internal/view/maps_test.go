package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMapGallery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maps.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"surf_mesa":"/img/mesa.jpg"}`), 0o644))

	gallery, err := LoadMapGallery(path)
	require.NoError(t, err)
	url, ok := gallery.ImageURL("surf_mesa")
	assert.True(t, ok)
	assert.Equal(t, "/img/mesa.jpg", url)
	_, ok = gallery.ImageURL("surf_utopia")
	assert.False(t, ok)
}

func TestLoadMapGalleryMissingFileUsesDefaults(t *testing.T) {
	gallery, err := LoadMapGallery(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMapGallery(), gallery)
}

func TestLoadMapGalleryMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"surf_mesa":`), 0o644))

	_, err := LoadMapGallery(path)
	assert.Error(t, err)
}
