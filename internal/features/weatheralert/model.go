package weatheralert

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertType string

const (
	TypeHeavyRain AlertType = "heavy-rain"
	TypeStorm     AlertType = "storm"
	TypeHeatwave  AlertType = "heatwave"
	TypeColdWave  AlertType = "cold-wave"
	TypeDrought   AlertType = "drought"
	TypeFlood     AlertType = "flood"
	TypeOther     AlertType = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AlertLocation is the area an advisory covers. District may be empty for a
// state-wide alert.
type AlertLocation struct {
	State    string `json:"state" bson:"state"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
}

type WeatherAlert struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	AlertType       AlertType          `json:"alertType" bson:"alert_type"`
	Severity        Severity           `json:"severity" bson:"severity"`
	Location        AlertLocation      `json:"location" bson:"location"`
	StartDate       time.Time          `json:"startDate" bson:"start_date"`
	EndDate         time.Time          `json:"endDate" bson:"end_date"`
	Recommendations []string           `json:"recommendations" bson:"recommendations"`
	Source          string             `json:"source" bson:"source"`
	IsActive        bool               `json:"isActive" bson:"is_active"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidAlertType reports whether t is one of the known alert types.
func ValidAlertType(t AlertType) bool {
	switch t {
	case TypeHeavyRain, TypeStorm, TypeHeatwave, TypeColdWave, TypeDrought, TypeFlood, TypeOther:
		return true
	}
	return false
}

// ValidSeverity reports whether s is one of the known severity levels.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// severityRank orders severities for sorting, highest first.
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}
