// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// PurchaseTransaction records the dealership buying a vehicle from a
// customer. At most one exists per VIN and it is immutable once written.
type PurchaseTransaction struct {
	VIN           string    `json:"vin"`            // The vehicle acquired.
	Username      string    `json:"username"`       // The staff member who recorded the purchase.
	CustomerID    int64     `json:"customer_id"`    // The customer the vehicle was bought from.
	PurchasePrice float64   `json:"purchase_price"` // What the dealership paid.
	PurchasedOn   time.Time `json:"purchased_on"`   // The purchase date.
}

// SaleTransaction records the dealership selling a vehicle to a customer.
// At most one exists per VIN and it is immutable once written.
type SaleTransaction struct {
	VIN        string    `json:"vin"`         // The vehicle sold.
	Username   string    `json:"username"`    // The salesperson who closed the sale.
	CustomerID int64     `json:"customer_id"` // The customer the vehicle was sold to.
	SalePrice  float64   `json:"sale_price"`  // The agreed price. Caller-supplied, never computed.
	SoldOn     time.Time `json:"sold_on"`     // The sale date.
}

// SuggestedSalePrice is the list price for an unsold vehicle: 125% of the
// purchase price plus 110% of the accumulated parts cost, rounded to cents.
func SuggestedSalePrice(purchasePrice, partsCost float64) float64 {
	return math.Round((1.25*purchasePrice+1.1*partsCost)*100) / 100
}

// DealDetails pairs a transaction's money and date with the counterparty and
// staff member involved, for the sale and purchase detail views.
type DealDetails struct {
	VIN          string    `json:"vin"`
	Price        float64   `json:"price"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"` // Display name of the counterparty.
	CustomerID   int64     `json:"customer_id"`
	StaffName    string    `json:"staff_name"`    // Display name of the recording staff member.
	Username     string    `json:"username"`
}
