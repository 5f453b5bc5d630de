package entity

import (
	"regexp"
	"strings"
	"time"
)

const (
	ProductStatusAvailable = "available"
	ProductStatusLowStock  = "low-stock"
	ProductStatusSoldOut   = "sold-out"
	ProductStatusArchived  = "archived"
)

type Price struct {
	Amount     float64 `json:"amount" firestore:"amount"`
	Currency   string  `json:"currency" firestore:"currency"`
	Unit       string  `json:"unit" firestore:"unit"` // "kg", "ton", "bushel"
	Negotiable bool    `json:"negotiable" firestore:"negotiable"`
}

type Quantity struct {
	Available float64 `json:"available" firestore:"available"`
	Unit      string  `json:"unit" firestore:"unit"`
	Minimum   float64 `json:"minimum" firestore:"minimum"`
}

type Quality struct {
	Grade         string   `json:"grade,omitempty" firestore:"grade,omitempty"`
	Certification []string `json:"certification,omitempty" firestore:"certification,omitempty"`
	Organic       bool     `json:"organic" firestore:"organic"`
}

type Harvest struct {
	Date   *time.Time `json:"date,omitempty" firestore:"date,omitempty"`
	Season string     `json:"season,omitempty" firestore:"season,omitempty"`
}

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	FarmerID    string   `json:"farmer_id" firestore:"farmerId"`
	Name        string   `json:"name" firestore:"name"`
	Slug        string   `json:"slug" firestore:"slug"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	SubCategory string   `json:"sub_category,omitempty" firestore:"subCategory,omitempty"`
	Images      []string `json:"images" firestore:"images"`
	Price       Price    `json:"price" firestore:"price"`
	Quantity    Quantity `json:"quantity" firestore:"quantity"`
	Quality     Quality  `json:"quality" firestore:"quality"`
	Harvest     Harvest  `json:"harvest" firestore:"harvest"`
	Location    GeoPoint `json:"location" firestore:"location"`
	Status      string   `json:"status" firestore:"status"`
	Featured    bool     `json:"featured" firestore:"featured"`
	Ratings     Rating   `json:"ratings" firestore:"ratings"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product name. Uniqueness is the
// caller's concern; the repository appends a short suffix on collision.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
