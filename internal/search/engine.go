package search

import (
	"strings"

	"wayfind/internal/catalog"
	"wayfind/internal/domain"
)

// AllCategories is the sentinel that resets a category filter
const AllCategories = "all"

// Engine computes the current result set from the store catalog. One
// filter mode is active at a time: a free-text query or a category pill.
// The result set is always a subset of the catalog, recomputed on every
// change and never persisted.
type Engine struct {
	catalog  *catalog.Catalog
	results  []domain.Store
	query    string
	category string
}

// NewEngine creates an engine whose result set starts as the full catalog
func NewEngine(c *catalog.Catalog) *Engine {
	e := &Engine{catalog: c}
	e.Reset()
	return e
}

// Query filters the catalog by case-insensitive substring match against
// store names. An empty or whitespace-only query resets to the full
// catalog. Returns the new result set; zero matches is an empty result
// set, not an error.
func (e *Engine) Query(q string) []domain.Store {
	e.category = ""
	e.query = strings.TrimSpace(q)
	if e.query == "" {
		e.results = e.catalog.Stores()
		return e.results
	}

	lower := strings.ToLower(e.query)
	results := make([]domain.Store, 0)
	for _, s := range e.catalog.Stores() {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			results = append(results, s)
		}
	}
	e.results = results
	return e.results
}

// FilterCategory filters the catalog to stores carrying the given
// category tag (exact match). The empty string or AllCategories resets
// to the full catalog.
func (e *Engine) FilterCategory(name string) []domain.Store {
	e.query = ""
	e.category = name
	if name == "" || strings.EqualFold(name, AllCategories) {
		e.category = ""
		e.results = e.catalog.Stores()
		return e.results
	}

	results := make([]domain.Store, 0)
	for _, s := range e.catalog.Stores() {
		for _, tag := range s.Categories {
			if tag == name {
				results = append(results, s)
				break
			}
		}
	}
	e.results = results
	return e.results
}

// Reset clears any active filter and restores the full catalog
func (e *Engine) Reset() {
	e.query = ""
	e.category = ""
	e.results = e.catalog.Stores()
}

// Results returns the current result set
func (e *Engine) Results() []domain.Store {
	return e.results
}

// ActiveQuery returns the current text query, "" when none
func (e *Engine) ActiveQuery() string {
	return e.query
}

// ActiveCategory returns the current category filter, "" when none
func (e *Engine) ActiveCategory() string {
	return e.category
}
