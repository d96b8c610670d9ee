// Package image holds the ASCII-art pictures that are disclosed piece by piece
// while a round is played.
package image

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// BigImage is the pixel count above which pixels are disclosed in random
// order instead of radiating from the top-left corner.
const BigImage = 60

// Pixel is one non-space character of an image.
type Pixel struct {
	X, Y  int
	Glyph rune
}

// weight is the squared distance from the top-left corner.
func (p Pixel) weight() int {
	return p.X*p.X + p.Y*p.Y
}

// Progress is the part of a round the disclosure depends on.
type Progress interface {
	HiddenChars() int
	CharsToGuess() int
	Lives() int
	MaxLives() int
}

// Image is an ASCII-art picture whose pixels are stored in disclosure order.
type Image struct {
	pixels  []Pixel
	width   int
	height  int
	visible int
	scheme  config.RewardingScheme
}

// Build creates the image described by a configuration.
func Build(spec config.ImageSpec, rng *rand.Rand) (*Image, error) {
	return FromArt(spec.Art, spec.Scheme, rng)
}

// FromArt creates an image from multi-line ASCII art. Every non-space
// character becomes a pixel. Known artist signatures are disclosed last.
// Art without any pixel yields config.ErrNoImageData.
func FromArt(art string, scheme config.RewardingScheme, rng *rand.Rand) (*Image, error) {
	var regular, signature []Pixel

	for y, line := range strings.Split(art, "\n") {
		line = strings.TrimSuffix(line, "\r")
		orig := []rune(line)
		blanked := []rune(blankSignatures(line))

		for x, r := range blanked {
			switch {
			case r != ' ':
				regular = append(regular, Pixel{X: x, Y: y, Glyph: r})
			case orig[x] != ' ':
				signature = append(signature, Pixel{X: x, Y: y, Glyph: orig[x]})
			}
		}
	}

	if len(regular)+len(signature) == 0 {
		return nil, config.ErrNoImageData
	}

	if len(regular) <= BigImage {
		sort.SliceStable(regular, func(i, j int) bool {
			return regular[i].weight() < regular[j].weight()
		})
	} else {
		rng.Shuffle(len(regular), func(i, j int) {
			regular[i], regular[j] = regular[j], regular[i]
		})
	}

	im := &Image{
		pixels: append(regular, signature...),
		scheme: scheme,
	}
	for _, p := range im.pixels {
		im.width = max(im.width, p.X+1)
		im.height = max(im.height, p.Y+1)
	}
	im.visible = len(im.pixels)
	return im, nil
}

// Update discloses as much of the image as the round deserves.
func (im *Image) Update(p Progress) {
	switch im.scheme {
	case config.UnhideWhenLostLife:
		im.Disclose(p.Lives(), p.MaxLives())
	default:
		// A lost round already disclosed its secret.
		if p.Lives() != 0 {
			im.Disclose(p.HiddenChars(), p.CharsToGuess())
		}
	}
}

// Disclose sets the visible pixel count from the fraction n/d of the round
// that is still to be played. A sixth of the image is always visible.
// A zero denominator leaves the image unchanged.
func (im *Image) Disclose(n, d int) {
	if d <= 0 {
		return
	}
	l := len(im.pixels)
	im.visible = (5*l*(d-n)/d + l) / 6
}

// String renders the visible pixels on a canvas of the image's dimension.
func (im *Image) String() string {
	stride := im.width + 1
	canvas := make([]rune, stride*im.height)
	for i := range canvas {
		canvas[i] = ' '
	}
	for y := 0; y < im.height; y++ {
		canvas[y*stride+im.width] = '\n'
	}
	for _, p := range im.pixels[:im.visible] {
		canvas[p.Y*stride+p.X] = p.Glyph
	}
	return string(canvas)
}

// Dimension returns width and height of the canvas.
func (im *Image) Dimension() (int, int) { return im.width, im.height }

// Len returns the number of pixels.
func (im *Image) Len() int { return len(im.pixels) }

// Visible returns the number of pixels currently disclosed.
func (im *Image) Visible() int { return im.visible }

// Scheme returns the rewarding scheme the image is disclosed by.
func (im *Image) Scheme() config.RewardingScheme { return im.scheme }

// Pixels returns a copy of the pixels in disclosure order.
func (im *Image) Pixels() []Pixel {
	out := make([]Pixel, len(im.pixels))
	copy(out, im.pixels)
	return out
}
