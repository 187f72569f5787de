package marketplace

import (
	"time"

	"kisanmitra/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingCategory string

const (
	CategoryCrops       ListingCategory = "crops"
	CategorySeeds       ListingCategory = "seeds"
	CategoryFertilizers ListingCategory = "fertilizers"
	CategoryEquipment   ListingCategory = "equipment"
	CategoryOther       ListingCategory = "other"
)

type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusSold      ListingStatus = "sold"
	StatusExpired   ListingStatus = "expired"
	StatusCancelled ListingStatus = "cancelled"
)

// Listing is a marketplace offer owned by one seller. TotalPrice is derived
// from quantity and price per unit; Recalculate must run before every persist.
type Listing struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SellerID       primitive.ObjectID `json:"sellerId" bson:"seller_id"`
	ProductName    string             `json:"productName" bson:"product_name"`
	Category       ListingCategory    `json:"category" bson:"category"`
	Description    string             `json:"description" bson:"description"`
	Quantity       float64            `json:"quantity" bson:"quantity"`
	Unit           string             `json:"unit" bson:"unit"`
	PricePerUnit   float64            `json:"pricePerUnit" bson:"price_per_unit"`
	TotalPrice     float64            `json:"totalPrice" bson:"total_price"`
	Images         []string           `json:"images,omitempty" bson:"images,omitempty"`
	Location       models.Location    `json:"location" bson:"location"`
	Quality        string             `json:"quality,omitempty" bson:"quality,omitempty"`
	HarvestDate    *time.Time         `json:"harvestDate,omitempty" bson:"harvest_date,omitempty"`
	AvailableFrom  time.Time          `json:"availableFrom" bson:"available_from"`
	AvailableUntil *time.Time         `json:"availableUntil,omitempty" bson:"available_until,omitempty"`
	Status         ListingStatus      `json:"status" bson:"status"`
	Views          int64              `json:"views" bson:"views"`
	Inquiries      int64              `json:"inquiries" bson:"inquiries"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// Recalculate derives TotalPrice from quantity and unit price.
func (l *Listing) Recalculate() {
	l.TotalPrice = l.Quantity * l.PricePerUnit
}

// ValidCategory reports whether c is one of the known listing categories.
func ValidCategory(c ListingCategory) bool {
	switch c {
	case CategoryCrops, CategorySeeds, CategoryFertilizers, CategoryEquipment, CategoryOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known listing statuses.
func ValidStatus(s ListingStatus) bool {
	switch s {
	case StatusActive, StatusSold, StatusExpired, StatusCancelled:
		return true
	}
	return false
}
