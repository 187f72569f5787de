package croplog

import (
	"context"
	"time"

	"kisanmitra/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateInput struct {
	CropName            *string     `json:"cropName,omitempty"`
	Variety             *string     `json:"variety,omitempty"`
	Area                *float64    `json:"area,omitempty"`
	Unit                *string     `json:"unit,omitempty"`
	PlantingDate        *time.Time  `json:"plantingDate,omitempty"`
	ExpectedHarvestDate *time.Time  `json:"expectedHarvestDate,omitempty"`
	ActualHarvestDate   *time.Time  `json:"actualHarvestDate,omitempty"`
	Status              *CropStatus `json:"status,omitempty"`
	Expenses            *Expenses   `json:"expenses,omitempty"`
	Yield               *Yield      `json:"yield,omitempty"`
	Revenue             *float64    `json:"revenue,omitempty"`
	Notes               *string     `json:"notes,omitempty"`
	Images              []string    `json:"images,omitempty"`
}

type CropLogService interface {
	Create(ctx context.Context, log *CropLog) error
	List(ctx context.Context, userID primitive.ObjectID, status, cropName string, params utils.PaginationParams) ([]CropLog, int64, error)
	Get(ctx context.Context, id string, userID primitive.ObjectID) (*CropLog, error)
	Update(ctx context.Context, id string, userID primitive.ObjectID, input UpdateInput) (*CropLog, error)
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	AddActivity(ctx context.Context, id string, userID primitive.ObjectID, activity Activity) (*CropLog, error)
	Statistics(ctx context.Context, userID primitive.ObjectID) (*Statistics, error)
	ExportWorkbook(ctx context.Context, userID primitive.ObjectID) (*excelize.File, error)
}

type CropLogServiceImpl struct {
	Repo CropLogRepository
}

func NewCropLogService(repo CropLogRepository) CropLogService {
	return &CropLogServiceImpl{Repo: repo}
}

func (s *CropLogServiceImpl) Create(ctx context.Context, log *CropLog) error {
	if log.Status == "" {
		log.Status = StatusPlanning
	}
	if log.Unit == "" {
		log.Unit = "acres"
	}
	if log.Activities == nil {
		log.Activities = []Activity{}
	}

	// Derived total is recomputed at the call site, not in a storage hook.
	log.Expenses.Recompute()

	now := time.Now()
	log.CreatedAt = now
	log.UpdatedAt = now

	return s.Repo.Create(ctx, log)
}

func (s *CropLogServiceImpl) List(ctx context.Context, userID primitive.ObjectID, status, cropName string, params utils.PaginationParams) ([]CropLog, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if cropName != "" {
		filter["crop_name"] = bson.M{"$regex": primitive.Regex{Pattern: cropName, Options: "i"}}
	}

	return s.Repo.List(ctx, userID, filter, params)
}

func (s *CropLogServiceImpl) Get(ctx context.Context, id string, userID primitive.ObjectID) (*CropLog, error) {
	return s.Repo.FindOwned(ctx, id, userID)
}

func (s *CropLogServiceImpl) Update(ctx context.Context, id string, userID primitive.ObjectID, input UpdateInput) (*CropLog, error) {
	log, err := s.Repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.CropName != nil {
		log.CropName = *input.CropName
	}
	if input.Variety != nil {
		log.Variety = *input.Variety
	}
	if input.Area != nil {
		log.Area = *input.Area
	}
	if input.Unit != nil {
		log.Unit = *input.Unit
	}
	if input.PlantingDate != nil {
		log.PlantingDate = *input.PlantingDate
	}
	if input.ExpectedHarvestDate != nil {
		log.ExpectedHarvestDate = input.ExpectedHarvestDate
	}
	if input.ActualHarvestDate != nil {
		log.ActualHarvestDate = input.ActualHarvestDate
	}
	if input.Status != nil {
		log.Status = *input.Status
	}
	if input.Expenses != nil {
		// The total field on the request is ignored; only itemized fields
		// are settable.
		log.Expenses = *input.Expenses
	}
	if input.Yield != nil {
		log.Yield = input.Yield
	}
	if input.Revenue != nil {
		log.Revenue = *input.Revenue
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}
	if input.Images != nil {
		log.Images = input.Images
	}

	log.Expenses.Recompute()
	log.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *CropLogServiceImpl) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	return s.Repo.Delete(ctx, id, userID)
}

func (s *CropLogServiceImpl) AddActivity(ctx context.Context, id string, userID primitive.ObjectID, activity Activity) (*CropLog, error) {
	log, err := s.Repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if activity.Date.IsZero() {
		activity.Date = time.Now()
	}

	log.Activities = append(log.Activities, activity)
	log.Expenses.Recompute()
	log.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *CropLogServiceImpl) Statistics(ctx context.Context, userID primitive.ObjectID) (*Statistics, error) {
	return s.Repo.Statistics(ctx, userID)
}
