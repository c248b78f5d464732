package catalog

import (
	"strings"

	"wayfind/internal/config"
	"wayfind/internal/domain"
)

// Options controls how the store catalog is built from raw venue spaces
type Options struct {
	ExcludeKeywords []string          // case-insensitive substring denylist
	Categories      []config.Category // used to tag stores that carry no tags
}

// Catalog is the filtered, stable list of retail stores for a loaded venue.
// It holds its entries in provider source order and is built once per load;
// an empty catalog is a valid, displayable state.
type Catalog struct {
	stores []domain.Store
	index  map[domain.StoreID]int
}

// Build filters the venue's spaces down to the retail directory. Spaces
// with an empty name or whose name contains an excluded keyword are
// dropped. Stores without category tags are tagged here, by matching the
// configured category keywords against the store name, so that category
// filtering downstream is plain tag equality.
func Build(venue *domain.Venue, opts Options) *Catalog {
	c := &Catalog{
		index: make(map[domain.StoreID]int),
	}
	if venue == nil {
		return c
	}

	for _, space := range venue.Spaces {
		if space.Name == "" {
			continue
		}
		if matchesAny(space.Name, opts.ExcludeKeywords) {
			continue
		}
		if len(space.Categories) == 0 {
			space.Categories = tagsForName(space.Name, opts.Categories)
		}
		c.index[space.ID] = len(c.stores)
		c.stores = append(c.stores, space)
	}

	return c
}

// Stores returns all catalog entries in source order
func (c *Catalog) Stores() []domain.Store {
	return c.stores
}

// Len returns the number of stores in the catalog
func (c *Catalog) Len() int {
	return len(c.stores)
}

// Get returns the store with the given ID
func (c *Catalog) Get(id domain.StoreID) (domain.Store, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Store{}, false
	}
	return c.stores[i], true
}

// Entrances returns the stores whose name marks them as an entrance,
// used for directory kiosk markers and as the default walking origin.
func (c *Catalog) Entrances() []domain.Store {
	var out []domain.Store
	for _, s := range c.stores {
		if strings.Contains(strings.ToLower(s.Name), "entrance") {
			out = append(out, s)
		}
	}
	return out
}

// Featured returns the first n stores, promoted with markers in the UI
func (c *Catalog) Featured(n int) []domain.Store {
	if n > len(c.stores) {
		n = len(c.stores)
	}
	if n < 0 {
		n = 0
	}
	return c.stores[:n]
}

// OnFloor returns the stores located on the given floor, in source order
func (c *Catalog) OnFloor(floorID string) []domain.Store {
	var out []domain.Store
	for _, s := range c.stores {
		if s.FloorID == floorID {
			out = append(out, s)
		}
	}
	return out
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func tagsForName(name string, categories []config.Category) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				tags = append(tags, cat.Name)
				break
			}
		}
	}
	return tags
}
