package orders

import (
	"testing"

	"github.com/circuitshop/circuitshop/internal/domain/models"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderItem
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name: "two items",
			items: []models.OrderItem{
				{ProductID: "p1", Name: "USB Cable", Quantity: 2, UnitPrice: 10.0},
				{ProductID: "p2", Name: "Adapter", Quantity: 1, UnitPrice: 5.5},
			},
			wantSubtotal: 25.5,
			wantTotal:    25.5,
		},
		{
			name: "single item",
			items: []models.OrderItem{
				{ProductID: "p1", Name: "Soldering Iron", Quantity: 3, UnitPrice: 24.50},
			},
			wantSubtotal: 73.5,
			wantTotal:    73.5,
		},
		{
			name: "free item contributes nothing",
			items: []models.OrderItem{
				{ProductID: "p1", Name: "Sticker", Quantity: 5, UnitPrice: 0},
				{ProductID: "p2", Name: "Cable", Quantity: 1, UnitPrice: 4.0},
			},
			wantSubtotal: 4.0,
			wantTotal:    4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, tax, total := computeTotals(tt.items)

			if subtotal != tt.wantSubtotal {
				t.Errorf("subtotal: got %v, want %v", subtotal, tt.wantSubtotal)
			}
			if tax != 0 {
				t.Errorf("tax: got %v, want 0", tax)
			}
			if total != tt.wantTotal {
				t.Errorf("total: got %v, want %v", total, tt.wantTotal)
			}
		})
	}
}
