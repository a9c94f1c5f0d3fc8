package pricing

import "math"

// DiscountPercent maps a bundle subtotal to a tiered percent discount in
// [0,25]. The same tiers run on the storefront; this server-side value is the
// authoritative one used for invoicing, whatever the client submitted.
func DiscountPercent(subtotal float64) int {
	switch {
	case subtotal >= 100:
		return min(25, int(math.Floor((subtotal-100)/10))+15)
	case subtotal >= 50:
		return min(15, int(math.Floor((subtotal-50)/5))+10)
	case subtotal >= 20:
		return min(10, int(math.Floor((subtotal-20)/3))+5)
	case subtotal >= 13:
		return 5
	default:
		return 0
	}
}
