package venues

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type Category string

const (
	CategoryNightlife         Category = "nightlife"
	CategoryHotels            Category = "hotels"
	CategoryDaytimeActivities Category = "daytime_activities"
	CategoryEveningActivities Category = "evening_activities"
	CategoryTransport         Category = "transport"
	CategoryRestaurants       Category = "restaurants"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryNightlife, CategoryHotels, CategoryDaytimeActivities,
		CategoryEveningActivities, CategoryTransport, CategoryRestaurants:
		return true
	}
	return false
}

type Venue struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          Category  `json:"category"`
	Address           string    `json:"address"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	Phone             *string   `json:"phone"`
	Email             *string   `json:"email"`
	WebsiteURL        *string   `json:"website_url"`
	PriceRangeMin     float64   `json:"price_range_min"`
	PriceRangeMax     float64   `json:"price_range_max"`
	Rating            float64   `json:"rating"`
	ReviewCount       int       `json:"review_count"`
	IsActive          bool      `json:"is_active"`
	ThumbnailImageURL *string   `json:"thumbnail_image_url"`
	OwnerID           int64     `json:"owner_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

const (
	SortByRating    = "rating"
	SortByPriceLow  = "price_low"
	SortByPriceHigh = "price_high"
	SortByDistance  = "distance"
)

type SearchFilter struct {
	Keyword  string
	Category *Category
	MinPrice *float64
	MaxPrice *float64

	// Location-based filtering. All three must be set for the
	// bounding-box filter to apply.
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	SortBy string
}

// Parse extracts query parameters from the request URL and populates the SearchFilter.
func (f SearchFilter) Parse(r *http.Request) (SearchFilter, error) {
	params := r.URL.Query()

	if keyword := params.Get("keyword"); keyword != "" {
		f.Keyword = keyword
	}

	if categoryStr := params.Get("category"); categoryStr != "" {
		category := Category(categoryStr)
		if !ValidCategory(category) {
			return f, fmt.Errorf("invalid category value: %s", categoryStr)
		}
		f.Category = &category
	}

	if minPriceStr := params.Get("min_price"); minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_price: %w", err)
		}
		f.MinPrice = &minPrice
	}

	if maxPriceStr := params.Get("max_price"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return f, fmt.Errorf("invalid max_price: %w", err)
		}
		f.MaxPrice = &maxPrice
	}

	if latStr := params.Get("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return f, fmt.Errorf("invalid latitude value: %w", err)
		}
		f.Latitude = &lat
	}

	if lonStr := params.Get("longitude"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return f, fmt.Errorf("invalid longitude value: %w", err)
		}
		f.Longitude = &lon
	}

	if radiusStr := params.Get("radius_km"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return f, fmt.Errorf("invalid radius_km value: %w", err)
		}
		f.RadiusKm = &radius
	}

	if sortBy := params.Get("sort_by"); sortBy != "" {
		switch sortBy {
		case SortByRating, SortByPriceLow, SortByPriceHigh, SortByDistance:
			f.SortBy = sortBy
		default:
			return f, fmt.Errorf("invalid sort_by value: %s", sortBy)
		}
	}

	return f, nil
}
