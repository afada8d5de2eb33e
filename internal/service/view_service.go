package service

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-inventory-admin/internal/model"
)

// SortOption selects the listing sort key.
type SortOption string

const (
	SortByName  SortOption = "name"
	SortByStock SortOption = "stock"
	SortByPrice SortOption = "price"
)

// Query is the transient listing state: free-text search plus sort
// key. It carries no catalog data of its own.
type Query struct {
	Search string
	Sort   SortOption
}

// Summary is the dashboard snapshot derived from the full catalog.
type Summary struct {
	ProductCount  int
	LowStockCount int
	TotalValue    string
}

// ViewService derives read-only views from a catalog snapshot. It is
// recomputed on every call and never mutates or persists anything;
// low-stock and total value always cover the full catalog regardless
// of the active query.
type ViewService interface {
	Apply(products []model.Product, query Query) []model.Product
	LowStock(products []model.Product) []model.Product
	TotalValue(products []model.Product) float64
	Summary(products []model.Product) Summary
}

type viewService struct {
	mu       sync.Mutex
	collator *collate.Collator
}

func NewViewService() ViewService {
	return &viewService{
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Apply filters by case-insensitive name substring, then stable-sorts
// by the query's sort key. Empty search matches everything. Name
// ordering is collation-aware ascending; stock and price are
// descending. Insertion order breaks ties, so re-applying the same
// query is a no-op.
func (v *viewService) Apply(products []model.Product, query Query) []model.Product {
	search := strings.ToLower(query.Search)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), search) {
			out = append(out, p)
		}
	}

	switch query.Sort {
	case SortByStock:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stock > out[j].Stock
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	default:
		// The collator buffers state between comparisons and is not
		// safe for concurrent use.
		v.mu.Lock()
		sort.SliceStable(out, func(i, j int) bool {
			return v.collator.CompareString(out[i].Name, out[j].Name) < 0
		})
		v.mu.Unlock()
	}
	return out
}

// LowStock returns every product under the alert threshold, always
// computed against the full catalog.
func (v *viewService) LowStock(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// TotalValue sums stock times unit price over the full catalog.
func (v *viewService) TotalValue(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.Stock) * p.Price
	}
	return total
}

func (v *viewService) Summary(products []model.Product) Summary {
	return Summary{
		ProductCount:  len(products),
		LowStockCount: len(v.LowStock(products)),
		TotalValue:    FormatValue(v.TotalValue(products)),
	}
}

// FormatValue renders a monetary amount with two decimals; an empty
// catalog comes out as "0.00".
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
