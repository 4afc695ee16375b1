package colors

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
)

// Palette is the chart palette categories are coloured from.
var Palette = []string{
	"#4C78A8", "#F58518", "#E45756", "#72B7B2", "#54A24B",
	"#EECA3B", "#B279A2", "#FF9DA6", "#9D755D", "#BAB0AC",
}

// UncategorizedColor is used for the default category.
const UncategorizedColor = "#888888"

// PaletteColor returns the i-th palette colour, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

type CategoryState struct {
	Color    string    `json:"color"`
	LastUsed time.Time `json:"last_used"`
}

// ColorCache keeps category colours stable across runs. When every palette
// colour is taken the least recently used category gives its colour up.
type ColorCache struct {
	Path       string
	Categories map[string]*CategoryState `json:"categories"`
	dirty      bool
	now        func() time.Time
}

const (
	xdgAppName = "lifestyle"
	cacheFile  = "category_colors.json"
)

// NewColorCache opens the cache under the user's config directory.
func NewColorCache() (*ColorCache, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewColorCacheAt(filepath.Join(home, ".config", xdgAppName, cacheFile))
}

// NewColorCacheAt opens the cache stored at path, starting empty if the file
// does not exist. An empty path gives an in-memory cache.
func NewColorCacheAt(path string) (*ColorCache, error) {
	cache := &ColorCache{
		Path:       path,
		Categories: make(map[string]*CategoryState),
		now:        time.Now,
	}

	if path == "" {
		return cache, nil
	}
	if _, err := os.Stat(path); err == nil {
		if err := cache.Load(); err != nil {
			return nil, err
		}
	}
	return cache, nil
}

func (c *ColorCache) Load() error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(&c.Categories)
}

func (c *ColorCache) Save() error {
	if !c.dirty || c.Path == "" {
		return nil
	}
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		logger.Error("could not create color cache directory", "dir", dir, "err", err)
		return err
	}

	f, err := os.Create(c.Path)
	if err != nil {
		logger.Error("could not create color cache file", "path", c.Path, "err", err)
		return err
	}
	defer f.Close()
	err = json.NewEncoder(f).Encode(c.Categories)
	if err == nil {
		c.dirty = false
	}
	return err
}

// Color returns the colour for category, assigning one if needed.
func (c *ColorCache) Color(category string) string {
	if category == "" || category == "Uncategorized" {
		return UncategorizedColor
	}

	if state, ok := c.Categories[category]; ok {
		state.LastUsed = c.now()
		c.dirty = true
		return state.Color
	}
	return c.assign(category)
}

func (c *ColorCache) assign(category string) string {
	used := make(map[string]bool)
	for _, s := range c.Categories {
		used[s.Color] = true
	}

	for _, color := range Palette {
		if !used[color] {
			c.Categories[category] = &CategoryState{Color: color, LastUsed: c.now()}
			c.dirty = true
			return color
		}
	}

	// Palette exhausted: recycle the least recently used colour.
	var oldest string
	var oldestTime time.Time
	first := true
	for name, s := range c.Categories {
		if first || s.LastUsed.Before(oldestTime) || (s.LastUsed.Equal(oldestTime) && name < oldest) {
			oldest, oldestTime, first = name, s.LastUsed, false
		}
	}

	if oldest == "" {
		return Palette[0]
	}
	recycled := c.Categories[oldest].Color
	delete(c.Categories, oldest)
	c.Categories[category] = &CategoryState{Color: recycled, LastUsed: c.now()}
	c.dirty = true
	return recycled
}
