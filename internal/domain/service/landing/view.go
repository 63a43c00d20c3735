package landing

import "offer_landing/internal/domain/entity"

// View is what the offer section of the page shows for a record.
type View struct {
	Price            string
	PriceFormatted   string
	ContactHandle    string
	ContactAvailable bool
}

// NewView prepares a record for rendering.
func NewView(record entity.DealRecord) View {
	return View{
		Price:            record.PriceFinal,
		PriceFormatted:   FormatPrice(record.PriceFinal),
		ContactHandle:    record.AdvisorContactHandle,
		ContactAvailable: record.IsContactAvailable(),
	}
}
