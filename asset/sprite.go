// Package asset loads optional on-disk resources; every loader degrades to nil on failure
package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/vi-galaxy/galaxy"
)

// LoadSprite decodes an image file in any registered format
func LoadSprite(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("sprite %s (%s) is empty", path, format)
	}
	return img, nil
}

// AttachSprites loads sprites for companions named in paths
// Missing or broken files are logged and leave the procedural shape in place
// Returns the number of sprites attached
func AttachSprites(paths map[string]string, companions []*galaxy.Companion) int {
	attached := 0
	for _, c := range companions {
		path, ok := paths[c.Name]
		if !ok || path == "" {
			continue
		}
		img, err := LoadSprite(path)
		if err != nil {
			log.Printf("companion %s: %v", c.Name, err)
			continue
		}
		c.Sprite = img
		attached++
	}
	return attached
}
