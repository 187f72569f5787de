package croplog

import "testing"

func TestExpensesRecompute(t *testing.T) {
	tests := []struct {
		name     string
		expenses Expenses
		want     float64
	}{
		{
			name: "All Fields",
			expenses: Expenses{
				Seeds:       100,
				Fertilizers: 250.50,
				Pesticides:  75,
				Labor:       1200,
				Irrigation:  300,
				Other:       24.50,
			},
			want: 1950,
		},
		{
			name:     "Zero",
			expenses: Expenses{},
			want:     0,
		},
		{
			name: "Stale Total Overwritten",
			expenses: Expenses{
				Seeds: 50,
				Labor: 100,
				Total: 99999,
			},
			want: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expenses.Recompute()
			if tt.expenses.Total != tt.want {
				t.Errorf("Total = %v, want %v", tt.expenses.Total, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	valid := []CropStatus{StatusPlanning, StatusPlanted, StatusGrowing, StatusHarvested, StatusSold}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("rotting") {
		t.Error(`ValidStatus("rotting") = true, want false`)
	}
}

func TestValidActivityType(t *testing.T) {
	valid := []ActivityType{ActivityIrrigation, ActivityFertilizer, ActivityPesticide, ActivityWeeding, ActivityOther}
	for _, a := range valid {
		if !ValidActivityType(a) {
			t.Errorf("ValidActivityType(%q) = false, want true", a)
		}
	}
	if ValidActivityType("harvesting") {
		t.Error(`ValidActivityType("harvesting") = true, want false`)
	}
}
