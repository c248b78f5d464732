package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wayfind/internal/config"
	"wayfind/internal/domain"
)

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:   "v1",
		Name: "Test Mall",
		Floors: []domain.Floor{
			{ID: "f1", Name: "Ground Floor", ShortName: "G", Elevation: 0},
			{ID: "f2", Name: "Level 1", ShortName: "1", Elevation: 1},
		},
		Spaces: []domain.Store{
			{ID: "1", Name: "Acme Shoes", FloorID: "f1"},
			{ID: "2", Name: "Washroom West", FloorID: "f1"},
			{ID: "3", Name: "North Entrance", FloorID: "f1"},
			{ID: "4", Name: "Zeta Cafe", FloorID: "f2"},
			{ID: "5", Name: "", FloorID: "f2"},
			{ID: "6", Name: "Service Corridor B", FloorID: "f2"},
			{ID: "7", Name: "Tech World Electronics", FloorID: "f2"},
		},
	}
}

func buildOpts() Options {
	return Options{
		ExcludeKeywords: []string{"washroom", "corridor"},
		Categories:      config.DefaultCategories(),
	}
}

func TestBuildExcludesNonRetailSpaces(t *testing.T) {
	c := Build(testVenue(), buildOpts())

	names := make([]string, 0, c.Len())
	for _, s := range c.Stores() {
		names = append(names, s.Name)
	}
	// Source order preserved, washroom/corridor/unnamed dropped
	require.Equal(t, []string{"Acme Shoes", "North Entrance", "Zeta Cafe", "Tech World Electronics"}, names)
}

func TestBuildNilVenueYieldsEmptyCatalog(t *testing.T) {
	c := Build(nil, buildOpts())
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Stores())
	require.Empty(t, c.Entrances())
}

func TestBuildTagsStoresFromCategoryKeywords(t *testing.T) {
	c := Build(testVenue(), buildOpts())

	cafe, ok := c.Get("4")
	require.True(t, ok)
	require.Contains(t, cafe.Categories, "Food & Dining")

	tech, ok := c.Get("7")
	require.True(t, ok)
	require.Contains(t, tech.Categories, "Electronics")

	shoes, ok := c.Get("1")
	require.True(t, ok)
	require.Contains(t, shoes.Categories, "Fashion & Apparel")
}

func TestBuildKeepsProviderTags(t *testing.T) {
	venue := testVenue()
	venue.Spaces[0].Categories = []string{"Footwear"}

	c := Build(venue, buildOpts())
	shoes, ok := c.Get("1")
	require.True(t, ok)
	require.Equal(t, []string{"Footwear"}, shoes.Categories)
}

func TestEntrances(t *testing.T) {
	c := Build(testVenue(), buildOpts())

	entrances := c.Entrances()
	require.Len(t, entrances, 1)
	require.Equal(t, "North Entrance", entrances[0].Name)
}

func TestFeatured(t *testing.T) {
	c := Build(testVenue(), buildOpts())

	require.Len(t, c.Featured(2), 2)
	require.Equal(t, "Acme Shoes", c.Featured(2)[0].Name)
	// Asking for more than exists caps at catalog size
	require.Len(t, c.Featured(100), c.Len())
	require.Empty(t, c.Featured(0))
}

func TestOnFloor(t *testing.T) {
	c := Build(testVenue(), buildOpts())

	ground := c.OnFloor("f1")
	require.Len(t, ground, 2)
	upper := c.OnFloor("f2")
	require.Len(t, upper, 2)
	require.Equal(t, "Zeta Cafe", upper[0].Name)
}

func TestGetUnknownID(t *testing.T) {
	c := Build(testVenue(), buildOpts())
	_, ok := c.Get("nope")
	require.False(t, ok)
}
