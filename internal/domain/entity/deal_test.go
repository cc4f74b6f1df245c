package entity

import "testing"

func TestSuggestedSalePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		purchasePrice float64
		partsCost     float64
		expected      float64
	}{
		{name: "no parts", purchasePrice: 10000.00, partsCost: 0, expected: 12500.00},
		{name: "with parts", purchasePrice: 10000.00, partsCost: 500.00, expected: 13050.00},
		{name: "rounds to cents", purchasePrice: 9999.99, partsCost: 33.33, expected: 12536.65},
		{name: "zero purchase", purchasePrice: 0, partsCost: 200.00, expected: 220.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SuggestedSalePrice(tt.purchasePrice, tt.partsCost)
			if got != tt.expected {
				t.Fatalf("SuggestedSalePrice(%v, %v) = %v, want %v",
					tt.purchasePrice, tt.partsCost, got, tt.expected)
			}
		})
	}
}
