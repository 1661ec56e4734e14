// Package gallery holds the image catalog, the bounded decode cache and the
// circular cursor a viewer navigates with.
package gallery

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const NoImagesCaption = "No images"

// Gallery ties a catalog, a cache and a cursor together and is the only
// surface a presenter talks to. It is not safe for concurrent use; callers
// that decode off their render loop must serialize access themselves.
type Gallery[R Resource] struct {
	catalog *Catalog
	cache   *Cache[R]
	cursor  *Cursor
	decode  DecodeFunc[R]
}

func New[R Resource](prober Prober, decode DecodeFunc[R], capacity int) *Gallery[R] {
	return &Gallery[R]{
		catalog: NewCatalog(prober),
		cache:   NewCache[R](capacity),
		cursor:  NewCursor(0),
		decode:  decode,
	}
}

// Add appends an image and keeps the cursor bounds in step with the catalog.
func (g *Gallery[R]) Add(name, locator string) error {
	if err := g.catalog.Add(name, locator); err != nil {
		return err
	}
	g.cursor.SetTotal(g.catalog.Count())
	return nil
}

func (g *Gallery[R]) Count() int {
	return g.catalog.Count()
}

func (g *Gallery[R]) Index() int {
	return g.cursor.Index()
}

func (g *Gallery[R]) Entries() []Entry {
	return g.catalog.Entries()
}

func (g *Gallery[R]) CurrentEntry() (Entry, error) {
	if g.catalog.Count() == 0 {
		return Entry{}, ErrEmpty
	}
	return g.catalog.Get(g.cursor.Index())
}

// CurrentResource returns the decoded resource for the current entry. The
// result is only valid until the next navigation or reset.
func (g *Gallery[R]) CurrentResource() (R, bool) {
	var zero R
	entry, err := g.CurrentEntry()
	if err != nil {
		return zero, false
	}
	res, err := g.cache.Get(entry.Locator, g.decode)
	if err != nil {
		return zero, false
	}
	return res, true
}

// Load is CurrentResource with the failure reason kept, for status lines.
func (g *Gallery[R]) Load() (R, Entry, error) {
	var zero R
	entry, err := g.CurrentEntry()
	if err != nil {
		return zero, entry, err
	}
	res, err := g.cache.Get(entry.Locator, g.decode)
	return res, entry, err
}

func (g *Gallery[R]) Caption() string {
	entry, err := g.CurrentEntry()
	if err != nil {
		return NoImagesCaption
	}
	return entry.Name
}

func (g *Gallery[R]) CounterText() string {
	if g.catalog.Count() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", g.cursor.Index()+1, g.catalog.Count())
}

func (g *Gallery[R]) OnNext() {
	g.cursor.Next()
}

func (g *Gallery[R]) OnPrevious() {
	g.cursor.Previous()
}

// Apply performs a navigation command and reports whether the cursor moved.
func (g *Gallery[R]) Apply(cmd Command) bool {
	before := g.cursor.Index()
	switch cmd {
	case Next:
		g.OnNext()
	case Previous:
		g.OnPrevious()
	default:
		return false
	}
	return g.cursor.Index() != before
}

// ResetAll releases every cached resource, then empties the catalog and
// rewinds the cursor.
func (g *Gallery[R]) ResetAll() {
	g.cache.Clear()
	g.catalog.Clear()
	g.cursor.Reset()
	g.cursor.SetTotal(0)
	logrus.Debug("gallery reset")
}

// CacheStats reports resident count and capacity.
func (g *Gallery[R]) CacheStats() (resident, capacity int) {
	return g.cache.Len(), g.cache.Capacity()
}
