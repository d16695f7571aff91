package domain

type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         float64
	Category      string
	StockQuantity int
	ImageURL      string
	StoreName     string
}

func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// ProductFilter narrows a catalog fetch. Zero value means all products.
type ProductFilter struct {
	Query    string
	Category string
}

func (f ProductFilter) Empty() bool {
	return f.Query == "" && f.Category == ""
}
