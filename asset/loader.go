package asset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/lixenwraith/bird-shooter/core"
)

// ErrEmptyImage is returned for images without a single opaque pixel
var ErrEmptyImage = errors.New("asset: image has no opaque pixels")

// Sprite is a decoded image plus the summary the terminal renderer needs
type Sprite struct {
	Path   string
	Image  image.Image
	Width  int
	Height int
	Tint   core.RGB // Mean color of opaque pixels
}

// Loader decodes PNG assets relative to Root and caches them by path
// Failures are cached too so a missing file is reported once
type Loader struct {
	Root string

	mu     sync.Mutex
	cache  map[string]*Sprite
	failed map[string]error
}

// NewLoader creates a loader reading from root
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		cache:  make(map[string]*Sprite),
		failed: make(map[string]error),
	}
}

// Load returns the sprite for path, decoding it on first use
func (l *Loader) Load(path string) (*Sprite, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.cache[path]; ok {
		return s, nil
	}
	if err, ok := l.failed[path]; ok {
		return nil, err
	}

	s, err := l.decode(path)
	if err != nil {
		l.failed[path] = err
		return nil, err
	}
	l.cache[path] = s
	return s, nil
}

// Cached reports whether path decoded successfully earlier
func (l *Loader) Cached(path string) (*Sprite, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.cache[path]
	return s, ok
}

// Resolve returns the filesystem path for an asset
func (l *Loader) Resolve(path string) string {
	if filepath.IsAbs(path) || l.Root == "" {
		return path
	}
	return filepath.Join(l.Root, path)
}

func (l *Loader) decode(path string) (*Sprite, error) {
	full := l.Resolve(path)
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}

	tint, err := MeanColor(img)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}

	b := img.Bounds()
	return &Sprite{
		Path:   path,
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
		Tint:   tint,
	}, nil
}

// MeanColor averages the color of pixels at least half opaque
func MeanColor(img image.Image) (core.RGB, error) {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca < 0x8000 {
				continue
			}
			// Undo premultiplication so edge pixels keep their hue
			r += uint64(cr) * 0xffff / uint64(ca)
			g += uint64(cg) * 0xffff / uint64(ca)
			b += uint64(cb) * 0xffff / uint64(ca)
			n++
		}
	}
	if n == 0 {
		return core.RGB{}, ErrEmptyImage
	}
	return core.RGB{
		R: uint8(r / n >> 8),
		G: uint8(g / n >> 8),
		B: uint8(b / n >> 8),
	}, nil
}
