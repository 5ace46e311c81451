package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/imgcore/pix"
)

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads. Decoded pix images are keyed by the exact path string used to
// load them; different paths to the same file produce separate entries.
//
// Cached images remain in memory until removed via Evict or Clear. Callers
// sharing a cached image across goroutines must not mutate it.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*pix.Image[uint8]
}

// NewCache creates an empty image cache, ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*pix.Image[uint8])}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached.
func (c *Cache) Load(path string) (*pix.Image[uint8], error) {
	c.mu.RLock()
	if im, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return im, nil
	}
	c.mu.RUnlock()

	im, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = im
	c.mu.Unlock()
	return im, nil
}

// Evict removes a specific image from the cache by its path.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*pix.Image[uint8])
	c.mu.Unlock()
}

// Info contains metadata about a decoded image file.
type Info struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Model         string `json:"model"`
	Format        string `json:"format"` // by file extension, not contents
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// Info loads an image through the cache and returns its metadata.
func (c *Cache) Info(path string) (*Info, error) {
	im, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w: %w", path, ErrConversion, err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".tif", ".tiff":
		format = "tiff"
	case ".bmp":
		format = "bmp"
	}

	return &Info{
		Width:         im.Width(),
		Height:        im.Height(),
		Model:         im.Model().String(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
