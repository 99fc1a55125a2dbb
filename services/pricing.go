package services

// Shipping rule shared by cart totals and checkout. Orders at or above
// the threshold ship free; an empty cart ships nothing at all.
const (
	FreeShippingThreshold = 30.00
	FlatShippingFee       = 4.50
)

func ShippingFor(subtotal float64) float64 {
	if subtotal == 0 || subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
