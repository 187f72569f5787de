package weatheralert

import "testing"

func TestValidAlertType(t *testing.T) {
	valid := []AlertType{TypeHeavyRain, TypeStorm, TypeHeatwave, TypeColdWave, TypeDrought, TypeFlood, TypeOther}
	for _, a := range valid {
		if !ValidAlertType(a) {
			t.Errorf("ValidAlertType(%q) = false, want true", a)
		}
	}
	if ValidAlertType("earthquake") {
		t.Error(`ValidAlertType("earthquake") = true, want false`)
	}
}

func TestValidSeverity(t *testing.T) {
	valid := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for _, s := range valid {
		if !ValidSeverity(s) {
			t.Errorf("ValidSeverity(%q) = false, want true", s)
		}
	}
	if ValidSeverity("extreme") {
		t.Error(`ValidSeverity("extreme") = true, want false`)
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	if !(severityRank[SeverityCritical] > severityRank[SeverityHigh] &&
		severityRank[SeverityHigh] > severityRank[SeverityMedium] &&
		severityRank[SeverityMedium] > severityRank[SeverityLow]) {
		t.Error("severity ranks are not strictly ordered critical > high > medium > low")
	}
}
