package marketplace

import (
	"context"
	"time"

	"kisanmitra/internal/common/models"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFilter carries the optional query-string filters for public listing
// searches.
type ListFilter struct {
	Category string
	Status   string
	Search   string
	State    string
	District string
}

type UpdateInput struct {
	ProductName    *string          `json:"productName,omitempty"`
	Category       *ListingCategory `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Quantity       *float64         `json:"quantity,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	PricePerUnit   *float64         `json:"pricePerUnit,omitempty"`
	Images         []string         `json:"images,omitempty"`
	Location       *models.Location `json:"location,omitempty"`
	Quality        *string          `json:"quality,omitempty"`
	HarvestDate    *time.Time       `json:"harvestDate,omitempty"`
	AvailableFrom  *time.Time       `json:"availableFrom,omitempty"`
	AvailableUntil *time.Time       `json:"availableUntil,omitempty"`
	Status         *ListingStatus   `json:"status,omitempty"`
}

type ListingService interface {
	Create(ctx context.Context, listing *Listing) error
	List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Listing, int64, error)
	ListBySeller(ctx context.Context, sellerID primitive.ObjectID, status string, params utils.PaginationParams) ([]Listing, int64, error)
	Get(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, id string, sellerID primitive.ObjectID, input UpdateInput) (*Listing, error)
	Delete(ctx context.Context, id string, sellerID primitive.ObjectID) error
	Inquire(ctx context.Context, id string) error
}

type ListingServiceImpl struct {
	Repo ListingRepository
}

func NewListingService(repo ListingRepository) ListingService {
	return &ListingServiceImpl{Repo: repo}
}

func (s *ListingServiceImpl) Create(ctx context.Context, listing *Listing) error {
	if listing.Status == "" {
		listing.Status = StatusActive
	}
	if listing.AvailableFrom.IsZero() {
		listing.AvailableFrom = time.Now()
	}

	listing.Recalculate()

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	return s.Repo.Create(ctx, listing)
}

func (s *ListingServiceImpl) List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Listing, int64, error) {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	} else {
		query["status"] = StatusActive
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	if filter.State != "" {
		query["location.state"] = filter.State
	}
	if filter.District != "" {
		query["location.district"] = filter.District
	}

	return s.Repo.List(ctx, query, params)
}

func (s *ListingServiceImpl) ListBySeller(ctx context.Context, sellerID primitive.ObjectID, status string, params utils.PaginationParams) ([]Listing, int64, error) {
	query := bson.M{"seller_id": sellerID}
	if status != "" {
		query["status"] = status
	}

	return s.Repo.List(ctx, query, params)
}

// Get returns a single listing and bumps its view counter.
func (s *ListingServiceImpl) Get(ctx context.Context, id string) (*Listing, error) {
	return s.Repo.IncrementViews(ctx, id)
}

func (s *ListingServiceImpl) Update(ctx context.Context, id string, sellerID primitive.ObjectID, input UpdateInput) (*Listing, error) {
	listing, err := s.Repo.FindOwned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}

	if input.ProductName != nil {
		listing.ProductName = *input.ProductName
	}
	if input.Category != nil {
		listing.Category = *input.Category
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Quantity != nil {
		listing.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		listing.Unit = *input.Unit
	}
	if input.PricePerUnit != nil {
		listing.PricePerUnit = *input.PricePerUnit
	}
	if input.Images != nil {
		listing.Images = input.Images
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.Quality != nil {
		listing.Quality = *input.Quality
	}
	if input.HarvestDate != nil {
		listing.HarvestDate = input.HarvestDate
	}
	if input.AvailableFrom != nil {
		listing.AvailableFrom = *input.AvailableFrom
	}
	if input.AvailableUntil != nil {
		listing.AvailableUntil = input.AvailableUntil
	}
	if input.Status != nil {
		listing.Status = *input.Status
	}

	// TotalPrice is never taken from the request.
	listing.Recalculate()
	listing.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingServiceImpl) Delete(ctx context.Context, id string, sellerID primitive.ObjectID) error {
	return s.Repo.Delete(ctx, id, sellerID)
}

func (s *ListingServiceImpl) Inquire(ctx context.Context, id string) error {
	return s.Repo.IncrementInquiries(ctx, id)
}
