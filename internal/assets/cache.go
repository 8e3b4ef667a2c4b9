// Package assets resolves texture and font paths to terminal sprites.
//
// The game refers to visuals by path, the way a desktop game refers to image
// files. A Cache turns each path into a *Texture or *Font the first time it
// is requested and hands out the same value for the rest of its lifetime.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/byte-runner/internal/core"
)

//go:embed sprites.yaml
var defaultManifest []byte

// Texture is a terminal sprite.
type Texture struct {
	Path  string
	Glyph rune     // fill rune when Art is empty
	Art   []string // rows sampled onto the destination box; spaces are transparent
	Box   bool     // draw an outlined panel
	Color core.Color
}

// Font is a text style.
type Font struct {
	Path string
	Bold bool
}

// Manifest lists every texture and font a Cache can load.
type Manifest struct {
	Textures map[string]TextureSpec `yaml:"textures"`
	Fonts    map[string]FontSpec    `yaml:"fonts"`
}

// TextureSpec is the manifest entry for a texture.
type TextureSpec struct {
	Glyph string   `yaml:"glyph"`
	Art   []string `yaml:"art"`
	Box   bool     `yaml:"box"`
	Color string   `yaml:"color"`
}

// FontSpec is the manifest entry for a font.
type FontSpec struct {
	Bold bool `yaml:"bold"`
}

// ErrNotFound is returned for a path missing from the manifest.
var ErrNotFound = errors.New("asset not found")

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}
	return m, nil
}

// DefaultManifest returns the embedded sprite manifest.
func DefaultManifest() Manifest {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(err) // embedded file is part of the binary
	}
	return m
}

// Cache memoizes textures and fonts by path. It is safe for concurrent use,
// which lets SSH sessions share one cache.
type Cache struct {
	mu       sync.Mutex
	manifest Manifest
	textures map[string]*Texture
	fonts    map[string]*Font
}

// NewCache creates a cache over m.
func NewCache(m Manifest) *Cache {
	return &Cache{
		manifest: m,
		textures: make(map[string]*Texture),
		fonts:    make(map[string]*Font),
	}
}

// NewDefaultCache creates a cache over the embedded manifest.
func NewDefaultCache() *Cache {
	return NewCache(DefaultManifest())
}

// Texture returns the texture for path, creating it on first use.
func (c *Cache) Texture(path string) (*Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.textures[path]; ok {
		return t, nil
	}
	spec, ok := c.manifest.Textures[path]
	if !ok {
		return nil, fmt.Errorf("assets: texture %s: %w", path, ErrNotFound)
	}
	t, err := newTexture(path, spec)
	if err != nil {
		return nil, err
	}
	c.textures[path] = t
	return t, nil
}

// MustTexture is Texture for paths the game always expects to resolve.
// A miss is a programming error and panics.
func (c *Cache) MustTexture(path string) *Texture {
	t, err := c.Texture(path)
	if err != nil {
		panic(err)
	}
	return t
}

// Font returns the font for path, creating it on first use.
func (c *Cache) Font(path string) (*Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[path]; ok {
		return f, nil
	}
	spec, ok := c.manifest.Fonts[path]
	if !ok {
		return nil, fmt.Errorf("assets: font %s: %w", path, ErrNotFound)
	}
	f := &Font{Path: path, Bold: spec.Bold}
	c.fonts[path] = f
	return f, nil
}

// MustFont is Font for paths the game always expects to resolve.
func (c *Cache) MustFont(path string) *Font {
	f, err := c.Font(path)
	if err != nil {
		panic(err)
	}
	return f
}

// Preload resolves every listed path and reports all failures at once.
// Callers run it at startup so a broken manifest stops the program before
// the first frame.
func (c *Cache) Preload(textures, fonts []string) error {
	var errs []error
	for _, p := range textures {
		if _, err := c.Texture(p); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range fonts {
		if _, err := c.Font(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Loaded returns the sorted paths of every texture created so far.
func (c *Cache) Loaded() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.textures))
	for p := range c.textures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func newTexture(path string, spec TextureSpec) (*Texture, error) {
	t := &Texture{Path: path, Art: spec.Art, Box: spec.Box, Glyph: '█'}
	if spec.Glyph != "" {
		t.Glyph = []rune(spec.Glyph)[0]
	}
	if spec.Color != "" {
		col, err := core.ParseColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: texture %s: %w", path, err)
		}
		t.Color = col
	}
	return t, nil
}
