package utils

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	defaultSort  = "-created_at"
)

type PaginationParams struct {
	Page  int64
	Limit int64
	Sort  string
}

type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// PaginationResult is the envelope every list endpoint returns.
type PaginationResult struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// GetPaginationParams reads page/limit/sort from the query string. Invalid or
// missing values silently fall back to defaults; page has a floor of 1 and
// limit is clamped to [1,100].
func GetPaginationParams(c *fiber.Ctx) PaginationParams {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sort := c.Query("sort")
	if sort == "" {
		sort = defaultSort
	}

	return PaginationParams{Page: page, Limit: limit, Sort: sort}
}

// Skip returns the number of documents to skip for the current page.
func (p PaginationParams) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// SortSpec translates the sort string into a Mongo sort document. A leading
// '-' means descending, Mongoose style: "-created_at" -> {created_at: -1}.
func (p PaginationParams) SortSpec() bson.D {
	field := p.Sort
	order := 1
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
		order = -1
	}
	if field == "" {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	return bson.D{{Key: field, Value: order}}
}

// NewPaginationResult wraps a result page and total count into the envelope.
func NewPaginationResult(data interface{}, total, page, limit int64) PaginationResult {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return PaginationResult{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}
