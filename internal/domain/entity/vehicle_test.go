package entity

import "testing"

func TestVehicleListing_Available(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sold      bool
		pending   bool
		available bool
	}{
		{name: "unsold without pending parts", sold: false, pending: false, available: true},
		{name: "sold", sold: true, pending: false, available: false},
		{name: "pending parts", sold: false, pending: true, available: false},
		{name: "sold with pending parts", sold: true, pending: true, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			listing := VehicleListing{Sold: tt.sold, PendingParts: tt.pending}
			if got := listing.Available(); got != tt.available {
				t.Fatalf("Available() = %v, want %v", got, tt.available)
			}
		})
	}
}

func TestCondition_IsValid(t *testing.T) {
	t.Parallel()

	for _, condition := range Conditions() {
		if !condition.IsValid() {
			t.Fatalf("%s.IsValid() = false, want true", condition)
		}
	}
	if Condition("Mint").IsValid() {
		t.Fatal(`Condition("Mint").IsValid() = true, want false`)
	}
	if Condition("").IsValid() {
		t.Fatal(`empty Condition should be invalid`)
	}
}

func TestFuelType_IsValid(t *testing.T) {
	t.Parallel()

	for _, fuelType := range FuelTypes() {
		if !fuelType.IsValid() {
			t.Fatalf("%s.IsValid() = false, want true", fuelType)
		}
	}
	if FuelType("Electric").IsValid() {
		t.Fatal(`FuelType("Electric").IsValid() = true, want false`)
	}
}
