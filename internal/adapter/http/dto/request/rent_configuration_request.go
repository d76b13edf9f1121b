package request

import "github.com/shopspring/decimal"

// RentConfigurationRequest is the landlord-facing payload declaring the
// monthly rent for a house.
type RentConfigurationRequest struct {
	MonthlyRentAmount float64 `json:"monthly_rent_amount" binding:"required,gt=0"`
	RentDueDay        int     `json:"rent_due_day" binding:"required,min=1,max=31"`
}

// ResolveAmount converts the JSON number into the cent-rounded decimal the
// domain works with.
func (r RentConfigurationRequest) ResolveAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.MonthlyRentAmount).Round(2)
}
