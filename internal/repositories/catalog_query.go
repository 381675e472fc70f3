package repositories

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Sort directions accepted on the products listing.
const (
	SortPriceHigh = "PRICE_HIGH"
	SortPriceLow  = "PRICE_LOW"
)

// categoryNames maps the numeric category keys the storefront sends to the
// category names baked into product image URLs. There is no real category
// column; matching the name against image_url is the established heuristic.
var categoryNames = map[string]string{
	"1": "Clothes",
	"2": "Electronics",
	"3": "Appliances",
	"4": "Grocery",
	"5": "Toys",
}

// CatalogQuery is the translated form of a products listing request: a
// conjunction of filter terms plus an optional price ordering.
type CatalogQuery struct {
	ImageURLSubstr string  // case-insensitive substring on image_url
	TitleSubstr    string  // case-insensitive substring on title
	MinRating      float64 // inclusive lower bound, valid only if HasMinRating
	HasMinRating   bool
	SortBy         string // SortPriceHigh, SortPriceLow, or empty
}

// ParseCatalogQuery translates raw query parameters into a CatalogQuery.
// Unknown category keys and unparseable ratings contribute no filter term.
func ParseCatalogQuery(params map[string]string) CatalogQuery {
	var q CatalogQuery

	if key := params["category"]; key != "" {
		q.ImageURLSubstr = categoryNames[key]
	}
	q.TitleSubstr = params["title_search"]

	if raw := params["rating"]; raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinRating = min
			q.HasMinRating = true
		}
	}

	switch params["sort_by"] {
	case SortPriceHigh, SortPriceLow:
		q.SortBy = params["sort_by"]
	}
	return q
}

// Scope applies the query as a GORM scope. LOWER(...) LIKE keeps the
// case-insensitive matching portable across postgres and sqlite.
func (q CatalogQuery) Scope(tx *gorm.DB) *gorm.DB {
	if q.ImageURLSubstr != "" {
		tx = tx.Where(`LOWER(image_url) LIKE ? ESCAPE '\'`, containsPattern(q.ImageURLSubstr))
	}
	if q.TitleSubstr != "" {
		tx = tx.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(q.TitleSubstr))
	}
	if q.HasMinRating {
		tx = tx.Where("rating >= ?", q.MinRating)
	}
	switch q.SortBy {
	case SortPriceHigh:
		tx = tx.Order("price DESC")
	case SortPriceLow:
		tx = tx.Order("price ASC")
	}
	return tx
}

// likeEscaper neutralizes LIKE metacharacters so a search term matches
// itself literally rather than acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
