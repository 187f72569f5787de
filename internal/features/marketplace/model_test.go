package marketplace

import "testing"

func TestListingRecalculate(t *testing.T) {
	tests := []struct {
		name         string
		quantity     float64
		pricePerUnit float64
		want         float64
	}{
		{name: "Whole Numbers", quantity: 100, pricePerUnit: 25, want: 2500},
		{name: "Fractional Quantity", quantity: 2.5, pricePerUnit: 40, want: 100},
		{name: "Zero Quantity", quantity: 0, pricePerUnit: 99, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Listing{
				Quantity:     tt.quantity,
				PricePerUnit: tt.pricePerUnit,
				TotalPrice:   12345, // stale value must be overwritten
			}
			l.Recalculate()
			if l.TotalPrice != tt.want {
				t.Errorf("TotalPrice = %v, want %v", l.TotalPrice, tt.want)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	valid := []ListingCategory{CategoryCrops, CategorySeeds, CategoryFertilizers, CategoryEquipment, CategoryOther}
	for _, c := range valid {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("livestock") {
		t.Error(`ValidCategory("livestock") = true, want false`)
	}
}

func TestValidStatus(t *testing.T) {
	valid := []ListingStatus{StatusActive, StatusSold, StatusExpired, StatusCancelled}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("pending") {
		t.Error(`ValidStatus("pending") = true, want false`)
	}
}
