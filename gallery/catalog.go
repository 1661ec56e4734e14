package gallery

import "fmt"

type Entry struct {
	Name    string
	Locator string
}

// Prober reports whether the source behind a locator exists right now.
type Prober interface {
	Exists(locator string) bool
}

// Catalog is the ordered list of images. Insertion order is navigation order.
type Catalog struct {
	prober  Prober
	entries []Entry
}

func NewCatalog(prober Prober) *Catalog {
	return &Catalog{
		prober:  prober,
		entries: make([]Entry, 0),
	}
}

func (c *Catalog) Add(name, locator string) error {
	if c.prober != nil && !c.prober.Exists(locator) {
		return fmt.Errorf("add %s: %w", locator, ErrNotFound)
	}
	c.entries = append(c.entries, Entry{Name: name, Locator: locator})
	return nil
}

// Clear drops every entry. Cached resources are not released here.
func (c *Catalog) Clear() {
	c.entries = c.entries[:0]
}

func (c *Catalog) Count() int {
	return len(c.entries)
}

func (c *Catalog) Get(index int) (Entry, error) {
	if index < 0 || index >= len(c.entries) {
		return Entry{}, fmt.Errorf("entry %d of %d: %w", index, len(c.entries), ErrOutOfRange)
	}
	return c.entries[index], nil
}

func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
