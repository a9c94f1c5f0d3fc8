package model

// Bundle is the unit moved through the verification workflow: the customer's
// identity plus the products they picked on the storefront.
type Bundle struct {
	CustomerEmail    string    `json:"customerEmail"`
	CustomerName     string    `json:"customerName,omitempty"`
	SelectedProducts []Product `json:"selectedProducts"`
}

type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	// PriceID is filled in during invoice creation from the price catalog.
	PriceID string `json:"priceId,omitempty"`
}

func (b *Bundle) Subtotal() float64 {
	total := 0.0
	for _, p := range b.SelectedProducts {
		total += p.Price
	}
	return total
}
