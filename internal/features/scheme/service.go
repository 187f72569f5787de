package scheme

import (
	"context"
	"time"

	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ListFilter carries the optional query-string filters for scheme discovery.
// A state filter also matches country-wide schemes.
type ListFilter struct {
	Category string
	State    string
	District string
	Search   string
}

type UpdateInput struct {
	Name               *string         `json:"name,omitempty"`
	NameHindi          *string         `json:"nameHindi,omitempty"`
	Description        *string         `json:"description,omitempty"`
	DescriptionHindi   *string         `json:"descriptionHindi,omitempty"`
	Category           *SchemeCategory `json:"category,omitempty"`
	Eligibility        []string        `json:"eligibility,omitempty"`
	Benefits           []string        `json:"benefits,omitempty"`
	ApplicationProcess []string        `json:"applicationProcess,omitempty"`
	Documents          []string        `json:"documents,omitempty"`
	OfficialWebsite    *string         `json:"officialWebsite,omitempty"`
	ContactInfo        *ContactInfo    `json:"contactInfo,omitempty"`
	State              *string         `json:"state,omitempty"`
	District           *string         `json:"district,omitempty"`
	TargetAudience     []string        `json:"targetAudience,omitempty"`
	Budget             *float64        `json:"budget,omitempty"`
	Deadline           *time.Time      `json:"deadline,omitempty"`
	IsActive           *bool           `json:"isActive,omitempty"`
}

type SchemeService interface {
	Create(ctx context.Context, scheme *Scheme) error
	List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Scheme, int64, error)
	Get(ctx context.Context, id string) (*Scheme, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Scheme, error)
	Deactivate(ctx context.Context, id string) error
}

type SchemeServiceImpl struct {
	Repo SchemeRepository
}

func NewSchemeService(repo SchemeRepository) SchemeService {
	return &SchemeServiceImpl{Repo: repo}
}

func (s *SchemeServiceImpl) Create(ctx context.Context, scheme *Scheme) error {
	scheme.IsActive = true
	if scheme.State == "" {
		scheme.State = NationalScope
	}
	for _, list := range []*[]string{
		&scheme.Eligibility, &scheme.Benefits, &scheme.ApplicationProcess,
		&scheme.Documents, &scheme.TargetAudience,
	} {
		if *list == nil {
			*list = []string{}
		}
	}

	now := time.Now()
	scheme.CreatedAt = now
	scheme.UpdatedAt = now

	return s.Repo.Create(ctx, scheme)
}

func (s *SchemeServiceImpl) List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Scheme, int64, error) {
	query := bson.M{"is_active": true}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.State != "" {
		query["state"] = bson.M{"$in": []string{filter.State, NationalScope}}
	}
	if filter.District != "" {
		query["$or"] = []bson.M{
			{"district": filter.District},
			{"district": bson.M{"$in": []interface{}{nil, ""}}},
		}
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	return s.Repo.List(ctx, query, params)
}

func (s *SchemeServiceImpl) Get(ctx context.Context, id string) (*Scheme, error) {
	return s.Repo.FindActiveByID(ctx, id)
}

func (s *SchemeServiceImpl) Update(ctx context.Context, id string, input UpdateInput) (*Scheme, error) {
	scheme, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		scheme.Name = *input.Name
	}
	if input.NameHindi != nil {
		scheme.NameHindi = *input.NameHindi
	}
	if input.Description != nil {
		scheme.Description = *input.Description
	}
	if input.DescriptionHindi != nil {
		scheme.DescriptionHindi = *input.DescriptionHindi
	}
	if input.Category != nil {
		scheme.Category = *input.Category
	}
	if input.Eligibility != nil {
		scheme.Eligibility = input.Eligibility
	}
	if input.Benefits != nil {
		scheme.Benefits = input.Benefits
	}
	if input.ApplicationProcess != nil {
		scheme.ApplicationProcess = input.ApplicationProcess
	}
	if input.Documents != nil {
		scheme.Documents = input.Documents
	}
	if input.OfficialWebsite != nil {
		scheme.OfficialWebsite = *input.OfficialWebsite
	}
	if input.ContactInfo != nil {
		scheme.ContactInfo = input.ContactInfo
	}
	if input.State != nil {
		scheme.State = *input.State
	}
	if input.District != nil {
		scheme.District = *input.District
	}
	if input.TargetAudience != nil {
		scheme.TargetAudience = input.TargetAudience
	}
	if input.Budget != nil {
		scheme.Budget = *input.Budget
	}
	if input.Deadline != nil {
		scheme.Deadline = input.Deadline
	}
	if input.IsActive != nil {
		scheme.IsActive = *input.IsActive
	}

	scheme.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

// Deactivate unpublishes a scheme instead of deleting the record.
func (s *SchemeServiceImpl) Deactivate(ctx context.Context, id string) error {
	scheme, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	scheme.IsActive = false
	scheme.UpdatedAt = time.Now()

	return s.Repo.Replace(ctx, scheme)
}
