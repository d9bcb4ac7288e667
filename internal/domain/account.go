package domain

import "github.com/shopspring/decimal"

// CustomerAccount is the back-office record an admin manages.
// It mirrors what the storefront knows about a customer plus the
// aggregates the dashboard shows.
type CustomerAccount struct {
	Record
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	ProfileImageURL string          `json:"profile_image_url,omitempty"`
	IsActive        bool            `json:"is_active"`
	TotalOrders     int             `json:"total_orders"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	Role            Role            `json:"role"`
}

// RecordOrder folds a completed checkout into the account aggregates.
func (a *CustomerAccount) RecordOrder(amount decimal.Decimal) {
	a.TotalOrders++
	a.TotalSpent = a.TotalSpent.Add(amount)
	a.Touch()
}
