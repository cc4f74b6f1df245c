// Package entity contains the core business objects of the project.
package entity

import "math"

// PartStatus represents the lifecycle stage of an ordered part.
// The status only ever moves forward: Ordered, then Received, then Installed.
type PartStatus string

const (
	// PartStatusOrdered indicates the part has been ordered from the vendor.
	PartStatusOrdered PartStatus = "Ordered"
	// PartStatusReceived indicates the part has arrived at the dealership.
	PartStatusReceived PartStatus = "Received"
	// PartStatusInstalled indicates the part has been installed on the vehicle.
	PartStatusInstalled PartStatus = "Installed"
)

// String returns the string representation of the PartStatus.
func (s PartStatus) String() string {
	return string(s)
}

// IsValid checks if the PartStatus is a valid value.
func (s PartStatus) IsValid() bool {
	switch s {
	case PartStatusOrdered, PartStatusReceived, PartStatusInstalled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to target.
// Skipping Received is allowed; moving backwards never is.
func (s PartStatus) CanTransitionTo(target PartStatus) bool {
	switch s {
	case PartStatusOrdered:
		return target == PartStatusReceived || target == PartStatusInstalled
	case PartStatusReceived:
		return target == PartStatusInstalled
	default:
		return false
	}
}

// Part is a single line on a parts order, identified by the vendor's part
// number within that order.
type Part struct {
	VendorPartsNumber string     `json:"vendor_parts_number"` // The vendor's part number, unique within the order.
	OrderNumber       string     `json:"order_number"`        // The parts order this line belongs to.
	Description       string     `json:"description"`         // What the part is.
	Quantity          int        `json:"quantity"`            // How many were ordered. Always positive.
	UnitPrice         float64    `json:"unit_price"`          // Price per unit at order time. Always positive.
	Status            PartStatus `json:"status"`              // Current lifecycle stage.
}

// LineCost returns quantity times unit price for this line.
func (p *Part) LineCost() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// PartsOrder is an order of one or more parts from a vendor against a
// specific vehicle. TotalCost is frozen when the order is created and does
// not track later changes to part prices.
type PartsOrder struct {
	OrderNumber string  `json:"order_number"` // Globally unique order number, conventionally "{VIN}-NNN".
	VIN         string  `json:"vin"`          // The vehicle the parts are for.
	VendorName  string  `json:"vendor_name"`  // The vendor supplying the parts.
	TotalCost   float64 `json:"total_cost"`
	Parts       []Part  `json:"parts"`        // The order lines. Never empty.
}

// ComputeTotalCost sums quantity times unit price over the given lines,
// rounded to cents.
func ComputeTotalCost(parts []Part) float64 {
	var total float64
	for i := range parts {
		total += parts[i].LineCost()
	}

	return math.Round(total*100) / 100
}

// Open reports whether any line on the order still blocks the vehicle,
// meaning it has not reached Installed.
func (o *PartsOrder) Open() bool {
	for i := range o.Parts {
		if o.Parts[i].Status != PartStatusInstalled {
			return true
		}
	}

	return false
}
