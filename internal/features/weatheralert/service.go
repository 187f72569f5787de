package weatheralert

import (
	"context"
	"time"

	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const defaultSource = "IMD"

// ListFilter carries the optional query-string filters for the public alert
// listing.
type ListFilter struct {
	AlertType string
	Severity  string
	State     string
	District  string
}

type AlertService interface {
	Create(ctx context.Context, alert *WeatherAlert) error
	List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]WeatherAlert, int64, error)
	Get(ctx context.Context, id string) (*WeatherAlert, error)
	ForLocation(ctx context.Context, state, district string) ([]WeatherAlert, error)
}

type AlertServiceImpl struct {
	Repo AlertRepository
	Hub  *AlertHub
}

func NewAlertService(repo AlertRepository, hub *AlertHub) AlertService {
	return &AlertServiceImpl{Repo: repo, Hub: hub}
}

// Create persists a new alert and pushes it to websocket subscribers.
func (s *AlertServiceImpl) Create(ctx context.Context, alert *WeatherAlert) error {
	if alert.Source == "" {
		alert.Source = defaultSource
	}
	if alert.Recommendations == nil {
		alert.Recommendations = []string{}
	}
	alert.IsActive = true

	now := time.Now()
	alert.CreatedAt = now
	alert.UpdatedAt = now

	if err := s.Repo.Create(ctx, alert); err != nil {
		return err
	}

	s.Hub.Broadcast(alert)
	return nil
}

func (s *AlertServiceImpl) List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]WeatherAlert, int64, error) {
	query := bson.M{
		"is_active": true,
		"end_date":  bson.M{"$gte": time.Now()},
	}

	if filter.AlertType != "" {
		query["alert_type"] = filter.AlertType
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.State != "" {
		query["location.state"] = filter.State
	}
	if filter.District != "" {
		query["location.district"] = filter.District
	}

	return s.Repo.List(ctx, query, params)
}

func (s *AlertServiceImpl) Get(ctx context.Context, id string) (*WeatherAlert, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *AlertServiceImpl) ForLocation(ctx context.Context, state, district string) ([]WeatherAlert, error) {
	return s.Repo.ForLocation(ctx, state, district)
}
