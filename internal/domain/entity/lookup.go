// Package entity contains the core business objects of the project.
package entity

// ReferenceData bundles the three immutable lookup sets that constrain
// vehicle fields. Seeded at setup, read-only afterwards.
type ReferenceData struct {
	VehicleTypes  []string `json:"vehicle_types"`
	Manufacturers []string `json:"manufacturers"`
	Colors        []string `json:"colors"`
}
