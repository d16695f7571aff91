package domain

type OrderLine struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// Order is the remote API's record of a submitted checkout.
type Order struct {
	ID     int64
	Status string
	Total  float64
	Lines  []OrderLine
}
