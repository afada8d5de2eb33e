package model

// LowStockThreshold is the fixed stock level below which a product is
// flagged as low-stock. Policy constant, not configurable per product.
const LowStockThreshold = 10

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
}

// LowStock reports whether the product is below the alert threshold.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// Draft holds the in-progress form values for an add or edit flow.
// Fields stay textual until the values are committed to the catalog;
// Stock and Price are coerced to numbers at that point.
type Draft struct {
	Name     string `validate:"required"`
	Category string
	Stock    string `validate:"required"`
	Price    string `validate:"required"`
}

// Empty reports whether no field has been filled in yet.
func (d Draft) Empty() bool {
	return d == Draft{}
}

// ImportRow is one already-tokenized line of a bulk upload, in the
// fixed column order (name, stock, price, category). The first row of
// an upload is data, not a header.
type ImportRow struct {
	Name     string
	Stock    string
	Price    string
	Category string
}
