package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole controls access to admin-only routes
type UserRole string

const (
	RoleFarmer UserRole = "farmer"
	RoleBuyer  UserRole = "buyer"
	RoleAdmin  UserRole = "admin"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Location struct {
	State       string       `json:"state" bson:"state"`
	District    string       `json:"district" bson:"district"`
	Village     string       `json:"village,omitempty" bson:"village,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type FarmDetails struct {
	TotalArea      float64 `json:"totalArea" bson:"total_area"`
	Unit           string  `json:"unit" bson:"unit"` // acres | hectares
	SoilType       string  `json:"soilType,omitempty" bson:"soil_type,omitempty"`
	IrrigationType string  `json:"irrigationType,omitempty" bson:"irrigation_type,omitempty"`
}

// User is the account document. Password and RefreshToken are stored but
// never serialized into responses.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         UserRole           `json:"role" bson:"role"`
	Avatar       string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Location     *Location          `json:"location,omitempty" bson:"location,omitempty"`
	FarmDetails  *FarmDetails       `json:"farmDetails,omitempty" bson:"farm_details,omitempty"`
	Verified     bool               `json:"verified" bson:"verified"`
	RefreshToken string             `json:"-" bson:"refresh_token,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
