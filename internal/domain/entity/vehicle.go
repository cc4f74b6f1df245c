// Package entity contains the core business objects of the project.
package entity

// Condition represents the assessed physical condition of a vehicle.
type Condition string

const (
	// ConditionExcellent indicates a vehicle in excellent condition.
	ConditionExcellent Condition = "Excellent"
	// ConditionVeryGood indicates a vehicle in very good condition.
	ConditionVeryGood Condition = "Very Good"
	// ConditionGood indicates a vehicle in good condition.
	ConditionGood Condition = "Good"
	// ConditionFair indicates a vehicle in fair condition.
	ConditionFair Condition = "Fair"
)

// String returns the string representation of the Condition.
func (c Condition) String() string {
	return string(c)
}

// IsValid checks if the Condition is a valid value.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionVeryGood, ConditionGood, ConditionFair:
		return true
	default:
		return false
	}
}

// Conditions lists every valid condition, in display order.
func Conditions() []Condition {
	return []Condition{ConditionExcellent, ConditionVeryGood, ConditionGood, ConditionFair}
}

// FuelType represents the fuel system of a vehicle.
type FuelType string

const (
	FuelTypeGas          FuelType = "Gas"
	FuelTypeDiesel       FuelType = "Diesel"
	FuelTypeNaturalGas   FuelType = "Natural Gas"
	FuelTypeHybrid       FuelType = "Hybrid"
	FuelTypePluginHybrid FuelType = "Plugin Hybrid"
	FuelTypeFuelCell     FuelType = "Fuel Cell"
)

// String returns the string representation of the FuelType.
func (f FuelType) String() string {
	return string(f)
}

// IsValid checks if the FuelType is a valid value.
func (f FuelType) IsValid() bool {
	switch f {
	case FuelTypeGas, FuelTypeDiesel, FuelTypeNaturalGas, FuelTypeHybrid, FuelTypePluginHybrid, FuelTypeFuelCell:
		return true
	default:
		return false
	}
}

// FuelTypes lists every valid fuel type, in display order.
func FuelTypes() []FuelType {
	return []FuelType{FuelTypeGas, FuelTypeDiesel, FuelTypeNaturalGas, FuelTypeHybrid, FuelTypePluginHybrid, FuelTypeFuelCell}
}

// Vehicle is a car the dealership has taken into inventory. The VIN is the
// permanent identifier and never changes after intake; the vehicle row itself
// is never deleted, sold vehicles simply stop being available.
type Vehicle struct {
	VIN          string    `json:"vin"`          // The vehicle identification number, unique per vehicle.
	VehicleType  string    `json:"vehicle_type"` // One of the vehicle type lookup values (Sedan, SUV, ...).
	Manufacturer string    `json:"manufacturer"` // One of the manufacturer lookup values.
	Condition    Condition `json:"condition"`    // The assessed condition at intake.
	ModelName    string    `json:"model_name"`   // The manufacturer's model name.
	Year         int       `json:"year"`         // The model year.
	FuelType     FuelType  `json:"fuel_type"`    // The fuel system.
	Horsepower   int       `json:"horsepower"`   // Engine horsepower.
	Description  string    `json:"description"`  // Free-form notes, searchable by keyword.
	Colors       []string  `json:"colors"`       // Colors from the color lookup set. A vehicle may have several.
}

// VehicleListing is a search result row: the vehicle plus the derived state
// a caller needs to judge availability and price.
type VehicleListing struct {
	Vehicle
	Sold          bool     `json:"sold"`                     // True once a sale transaction exists for the VIN.
	PendingParts  bool     `json:"pending_parts"`            // True while any part on the vehicle is not yet Installed.
	PartsCost     float64  `json:"parts_cost"`               // Total cost of every parts order placed against the vehicle.
	PurchasePrice *float64 `json:"purchase_price,omitempty"` // What the dealership paid. Nil before a purchase is recorded.
	SalePrice     *float64 `json:"sale_price,omitempty"`     // Actual sale price once sold, suggested price while unsold, nil without purchase data.
}

// Available reports whether the vehicle can currently be sold: never sold
// and no part still pending on it.
func (l *VehicleListing) Available() bool {
	return !l.Sold && !l.PendingParts
}

// VehicleCounts is the dashboard summary over the whole inventory.
type VehicleCounts struct {
	AvailableForSale int `json:"available_for_sale"` // Vehicles with no sale and no pending parts.
	WithPendingParts int `json:"with_pending_parts"` // Vehicles blocked by at least one non-installed part.
}
