package image

import (
	"embed"
	"fmt"
	"math/rand"
	"path"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

//go:embed gallery/*.txt
var galleryFS embed.FS

// gallery holds the built-in art, loaded once at start.
var gallery = loadGallery()

func loadGallery() []string {
	entries, err := galleryFS.ReadDir("gallery")
	if err != nil {
		panic(fmt.Sprintf("image: failed to read built-in gallery: %v", err))
	}
	arts := make([]string, 0, len(entries))
	for _, e := range entries {
		data, err := galleryFS.ReadFile(path.Join("gallery", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("image: failed to read %s: %v", e.Name(), err))
		}
		arts = append(arts, string(data))
	}
	return arts
}

// Gallery returns the built-in art.
func Gallery() []string {
	out := make([]string, len(gallery))
	copy(out, gallery)
	return out
}

// Random returns one of the built-in images, picked uniformly.
func Random(rng *rand.Rand, scheme config.RewardingScheme) *Image {
	im, err := FromArt(gallery[rng.Intn(len(gallery))], scheme, rng)
	if err != nil {
		// Every built-in image has pixels.
		panic(err)
	}
	return im
}
