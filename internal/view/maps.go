package view

import (
	"encoding/json"
	"fmt"
	"os"
)

// MapGallery maps a map name to the URL of its preview image.
type MapGallery map[string]string

func (g MapGallery) ImageURL(name string) (string, bool) {
	url, ok := g[name]
	return url, ok
}

// LoadMapGallery reads a map-name to image-URL lookup from a JSON file. A
// missing file yields the built-in defaults so a fresh checkout renders
// something sensible.
func LoadMapGallery(path string) (MapGallery, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMapGallery(), nil
		}
		return nil, fmt.Errorf("view.LoadMapGallery: %w", err)
	}
	var gallery MapGallery
	if err := json.Unmarshal(b, &gallery); err != nil {
		return nil, fmt.Errorf("view.LoadMapGallery: %w", err)
	}
	return gallery, nil
}

func DefaultMapGallery() MapGallery {
	return MapGallery{
		"surf_utopia":     "/static/maps/surf_utopia.jpg",
		"surf_kitsune":    "/static/maps/surf_kitsune.jpg",
		"surf_mesa":       "/static/maps/surf_mesa.jpg",
		"surf_beginner":   "/static/maps/surf_beginner.jpg",
		"surf_rookie":     "/static/maps/surf_rookie.jpg",
		"surf_greatriver": "/static/maps/surf_greatriver.jpg",
	}
}
