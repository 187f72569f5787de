package croplog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CropStatus tracks a crop through its season
type CropStatus string

const (
	StatusPlanning  CropStatus = "planning"
	StatusPlanted   CropStatus = "planted"
	StatusGrowing   CropStatus = "growing"
	StatusHarvested CropStatus = "harvested"
	StatusSold      CropStatus = "sold"
)

// ActivityType categorizes field work recorded against a crop
type ActivityType string

const (
	ActivityIrrigation ActivityType = "irrigation"
	ActivityFertilizer ActivityType = "fertilizer"
	ActivityPesticide  ActivityType = "pesticide"
	ActivityWeeding    ActivityType = "weeding"
	ActivityOther      ActivityType = "other"
)

type Activity struct {
	Type        ActivityType `json:"type" bson:"type"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Date        time.Time    `json:"date" bson:"date"`
	Cost        float64      `json:"cost,omitempty" bson:"cost,omitempty"`
}

// Expenses itemizes season costs. Total is derived, never set directly;
// Recompute must run before every persist.
type Expenses struct {
	Seeds       float64 `json:"seeds" bson:"seeds"`
	Fertilizers float64 `json:"fertilizers" bson:"fertilizers"`
	Pesticides  float64 `json:"pesticides" bson:"pesticides"`
	Labor       float64 `json:"labor" bson:"labor"`
	Irrigation  float64 `json:"irrigation" bson:"irrigation"`
	Other       float64 `json:"other" bson:"other"`
	Total       float64 `json:"total" bson:"total"`
}

// Recompute derives Total from the six itemized fields.
func (e *Expenses) Recompute() {
	e.Total = e.Seeds + e.Fertilizers + e.Pesticides + e.Labor + e.Irrigation + e.Other
}

type Yield struct {
	Quantity float64 `json:"quantity" bson:"quantity"`
	Unit     string  `json:"unit" bson:"unit"`
	Quality  string  `json:"quality,omitempty" bson:"quality,omitempty"`
}

// CropLog is one crop's season record, owned by exactly one user.
type CropLog struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID              primitive.ObjectID `json:"userId" bson:"user_id"`
	CropName            string             `json:"cropName" bson:"crop_name"`
	Variety             string             `json:"variety,omitempty" bson:"variety,omitempty"`
	Area                float64            `json:"area" bson:"area"`
	Unit                string             `json:"unit" bson:"unit"` // acres | hectares
	PlantingDate        time.Time          `json:"plantingDate" bson:"planting_date"`
	ExpectedHarvestDate *time.Time         `json:"expectedHarvestDate,omitempty" bson:"expected_harvest_date,omitempty"`
	ActualHarvestDate   *time.Time         `json:"actualHarvestDate,omitempty" bson:"actual_harvest_date,omitempty"`
	Status              CropStatus         `json:"status" bson:"status"`
	Activities          []Activity         `json:"activities" bson:"activities"`
	Expenses            Expenses           `json:"expenses" bson:"expenses"`
	Yield               *Yield             `json:"yield,omitempty" bson:"yield,omitempty"`
	Revenue             float64            `json:"revenue,omitempty" bson:"revenue,omitempty"`
	Notes               string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Images              []string           `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidActivityType reports whether t is one of the known activity types.
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityIrrigation, ActivityFertilizer, ActivityPesticide, ActivityWeeding, ActivityOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known crop statuses.
func ValidStatus(s CropStatus) bool {
	switch s {
	case StatusPlanning, StatusPlanted, StatusGrowing, StatusHarvested, StatusSold:
		return true
	}
	return false
}
