package catalog

import "github.com/shopspring/decimal"

// Seller is the business offering a pack. Sellers are embedded in items and
// are not independently addressable.
type Seller struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Item is a surplus-food pack offered at a discount. Items are immutable once
// fetched from the store.
type Item struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	PickupTime    string          `json:"pickup_time"`
	ImageURL      string          `json:"image_url"`
	Distance      string          `json:"distance"`
	Seller        Seller          `json:"seller"`
	Tags          []string        `json:"tags"`
	DietaryInfo   []string        `json:"dietary_info"`
	Stock         int             `json:"stock"`
	Location      GeoPoint        `json:"location"`
}

// Tag labels used by the prepared-food and bakery views.
const (
	TagPrepared = "Comida preparada"
	TagBakery   = "Panadería"
)

func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
