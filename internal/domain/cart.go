package domain

type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart holds the line items the user intends to purchase, keyed by product
// ID. Mutations keep the invariant that no item exists with quantity <= 0.
type Cart struct {
	Items []CartItem
}

// Add merges into an existing line when the product is already present,
// otherwise appends a new one. A non-positive quantity is coerced to 1.
func (c *Cart) Add(productID int64, name string, unitPrice float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
}

// Remove deletes the matching line. An absent product is a no-op.
func (c *Cart) Remove(productID int64) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// SetQuantity sets the line quantity; a quantity <= 0 removes the line
// entirely rather than leaving it at zero.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is recomputed from scratch over all lines on every call, never
// adjusted incrementally.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}

	return total
}

func (c Cart) Find(productID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}

func (c Cart) Len() int {
	return len(c.Items)
}
