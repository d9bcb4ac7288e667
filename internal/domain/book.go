package domain

import "github.com/shopspring/decimal"

// Book represents a title in the catalog.
// Prices are exact decimals so cart totals never accumulate float error.
type Book struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Price           decimal.Decimal `json:"price"`
	Rating          float64         `json:"rating"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Pages           int             `json:"pages"`
	Language        string          `json:"language"`
	Publisher       string          `json:"publisher"`
	PublicationYear int             `json:"publication_year"`
	ISBN            string          `json:"isbn"`
	CoverURL        string          `json:"cover_url,omitempty"`
}

// Category is a browsable catalog section.
type Category struct {
	Name string `json:"name"`
}
