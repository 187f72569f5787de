package scheme

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SchemeCategory string

const (
	CategorySubsidy   SchemeCategory = "subsidy"
	CategoryLoan      SchemeCategory = "loan"
	CategoryInsurance SchemeCategory = "insurance"
	CategoryTraining  SchemeCategory = "training"
	CategoryEquipment SchemeCategory = "equipment"
	CategoryOther     SchemeCategory = "other"
)

// NationalScope is the state value for schemes that apply country-wide.
const NationalScope = "All India"

type ContactInfo struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// Scheme is a government support program. Bilingual name/description fields
// carry the Hindi rendering used by the mobile clients.
type Scheme struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	NameHindi          string             `json:"nameHindi,omitempty" bson:"name_hindi,omitempty"`
	Description        string             `json:"description" bson:"description"`
	DescriptionHindi   string             `json:"descriptionHindi,omitempty" bson:"description_hindi,omitempty"`
	Category           SchemeCategory     `json:"category" bson:"category"`
	Eligibility        []string           `json:"eligibility" bson:"eligibility"`
	Benefits           []string           `json:"benefits" bson:"benefits"`
	ApplicationProcess []string           `json:"applicationProcess" bson:"application_process"`
	Documents          []string           `json:"documents" bson:"documents"`
	OfficialWebsite    string             `json:"officialWebsite,omitempty" bson:"official_website,omitempty"`
	ContactInfo        *ContactInfo       `json:"contactInfo,omitempty" bson:"contact_info,omitempty"`
	State              string             `json:"state" bson:"state"`
	District           string             `json:"district,omitempty" bson:"district,omitempty"`
	TargetAudience     []string           `json:"targetAudience" bson:"target_audience"`
	Budget             float64            `json:"budget,omitempty" bson:"budget,omitempty"`
	Deadline           *time.Time         `json:"deadline,omitempty" bson:"deadline,omitempty"`
	IsActive           bool               `json:"isActive" bson:"is_active"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidCategory reports whether c is one of the known scheme categories.
func ValidCategory(c SchemeCategory) bool {
	switch c {
	case CategorySubsidy, CategoryLoan, CategoryInsurance, CategoryTraining, CategoryEquipment, CategoryOther:
		return true
	}
	return false
}
