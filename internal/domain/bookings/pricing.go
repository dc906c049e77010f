package bookings

// TotalAmount prices a booking off the venue's lowest per-person price.
func TotalAmount(pricePerPerson float64, guestCount int) float64 {
	return pricePerPerson * float64(guestCount)
}
