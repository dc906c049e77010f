package venues

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildSearchQueryDefaults(t *testing.T) {
	where, orderBy, args := buildSearchQuery(SearchFilter{})

	assert.Equal(t, "is_active = true", where)
	assert.Equal(t, "rating DESC", orderBy)
	assert.Empty(t, args)
}

func TestBuildSearchQueryKeyword(t *testing.T) {
	where, _, args := buildSearchQuery(SearchFilter{Keyword: "jazz"})

	assert.Contains(t, where, "(name ILIKE $1 OR description ILIKE $1)")
	require.Len(t, args, 1)
	assert.Equal(t, "%jazz%", args[0])
}

func TestBuildSearchQueryBudgetOverlap(t *testing.T) {
	where, _, args := buildSearchQuery(SearchFilter{
		MinPrice: ptr(20.0),
		MaxPrice: ptr(80.0),
	})

	// min_price bounds the venue ceiling, max_price bounds the venue floor.
	assert.Contains(t, where, "price_range_max >= $1")
	assert.Contains(t, where, "price_range_min <= $2")
	require.Len(t, args, 2)
	assert.Equal(t, 20.0, args[0])
	assert.Equal(t, 80.0, args[1])
}

func TestBuildSearchQueryBoundingBox(t *testing.T) {
	lat, lon, radius := 40.7128, -74.006, 10.0

	where, _, args := buildSearchQuery(SearchFilter{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
	})

	assert.Contains(t, where, "latitude >= $1 AND latitude <= $2 AND longitude >= $3 AND longitude <= $4")
	require.Len(t, args, 4)

	latRange := radius / 111
	lonRange := radius / (111 * math.Cos(lat*math.Pi/180))

	assert.InDelta(t, lat-latRange, args[0].(float64), 1e-9)
	assert.InDelta(t, lat+latRange, args[1].(float64), 1e-9)
	assert.InDelta(t, lon-lonRange, args[2].(float64), 1e-9)
	assert.InDelta(t, lon+lonRange, args[3].(float64), 1e-9)
}

func TestBuildSearchQueryBoundingBoxRequiresAllParams(t *testing.T) {
	lat := 40.7128

	where, _, args := buildSearchQuery(SearchFilter{Latitude: &lat})

	assert.NotContains(t, where, "latitude")
	assert.Empty(t, args)
}

func TestBuildSearchQuerySortKeys(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"", "rating DESC"},
		{SortByRating, "rating DESC"},
		{SortByPriceLow, "price_range_min ASC"},
		{SortByPriceHigh, "price_range_max DESC"},
		{SortByDistance, "id ASC"},
	}

	for _, tt := range tests {
		_, orderBy, _ := buildSearchQuery(SearchFilter{SortBy: tt.sortBy})
		assert.Equal(t, tt.want, orderBy)
	}
}

func TestBuildSearchQueryArgNumbering(t *testing.T) {
	category := CategoryRestaurants

	where, _, args := buildSearchQuery(SearchFilter{
		Keyword:  "pasta",
		Category: &category,
		MinPrice: ptr(15.0),
	})

	assert.Contains(t, where, "ILIKE $1")
	assert.Contains(t, where, "category = $2")
	assert.Contains(t, where, "price_range_max >= $3")
	assert.Len(t, args, 3)
}
