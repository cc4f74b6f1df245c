// Package entity contains the core business objects of the project.
package entity

// Address is a postal address, stored inline on vendors and customers.
type Address struct {
	Street     string `json:"street"`      // Street line, including number.
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Vendor is a parts supplier, identified by its business name.
type Vendor struct {
	Name        string  `json:"name"`         // Unique vendor name, referenced by parts orders.
	PhoneNumber string  `json:"phone_number"` // Contact phone number.
	Address     Address `json:"address"`      // The vendor's postal address.
}
