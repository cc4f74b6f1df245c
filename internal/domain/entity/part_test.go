package entity

import "testing"

func TestPartStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    PartStatus
		to      PartStatus
		allowed bool
	}{
		{name: "ordered to received", from: PartStatusOrdered, to: PartStatusReceived, allowed: true},
		{name: "ordered skips to installed", from: PartStatusOrdered, to: PartStatusInstalled, allowed: true},
		{name: "received to installed", from: PartStatusReceived, to: PartStatusInstalled, allowed: true},
		{name: "received back to ordered", from: PartStatusReceived, to: PartStatusOrdered, allowed: false},
		{name: "installed back to received", from: PartStatusInstalled, to: PartStatusReceived, allowed: false},
		{name: "installed back to ordered", from: PartStatusInstalled, to: PartStatusOrdered, allowed: false},
		{name: "ordered to itself", from: PartStatusOrdered, to: PartStatusOrdered, allowed: false},
		{name: "installed to itself", from: PartStatusInstalled, to: PartStatusInstalled, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Fatalf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestPartStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, status := range []PartStatus{PartStatusOrdered, PartStatusReceived, PartStatusInstalled} {
		if !status.IsValid() {
			t.Fatalf("%s.IsValid() = false, want true", status)
		}
	}
	if PartStatus("Shipped").IsValid() {
		t.Fatal(`PartStatus("Shipped").IsValid() = true, want false`)
	}
}

func TestComputeTotalCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parts    []Part
		expected float64
	}{
		{name: "no parts", parts: nil, expected: 0},
		{
			name: "single line",
			parts: []Part{
				{Quantity: 4, UnitPrice: 25.00},
			},
			expected: 100.00,
		},
		{
			name: "multiple lines",
			parts: []Part{
				{Quantity: 2, UnitPrice: 19.99},
				{Quantity: 1, UnitPrice: 150.50},
			},
			expected: 190.48,
		},
		{
			name: "rounds to cents",
			parts: []Part{
				{Quantity: 3, UnitPrice: 0.333},
			},
			expected: 1.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ComputeTotalCost(tt.parts); got != tt.expected {
				t.Fatalf("ComputeTotalCost() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPartsOrder_Open(t *testing.T) {
	t.Parallel()

	order := PartsOrder{
		Parts: []Part{
			{Status: PartStatusInstalled},
			{Status: PartStatusReceived},
		},
	}
	if !order.Open() {
		t.Fatal("order with a received part should be open")
	}

	order.Parts[1].Status = PartStatusInstalled
	if order.Open() {
		t.Fatal("order with every part installed should be closed")
	}
}
