package community

import (
	"context"
	"time"

	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFilter carries the optional query-string filters for the public feed.
type ListFilter struct {
	Category string
	Tag      string
	Search   string
}

type UpdateInput struct {
	Title    *string       `json:"title,omitempty"`
	Content  *string       `json:"content,omitempty"`
	Category *PostCategory `json:"category,omitempty"`
	Tags     []string      `json:"tags,omitempty"`
	Images   []string      `json:"images,omitempty"`
	Status   *PostStatus   `json:"status,omitempty"`
}

type PostService interface {
	Create(ctx context.Context, post *Post) error
	List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Post, int64, error)
	ListByAuthor(ctx context.Context, userID primitive.ObjectID, params utils.PaginationParams) ([]Post, int64, error)
	Get(ctx context.Context, id string) (*Post, error)
	Update(ctx context.Context, id string, userID primitive.ObjectID, input UpdateInput) (*Post, error)
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	ToggleLike(ctx context.Context, id string, userID primitive.ObjectID) (bool, int, error)
	AddComment(ctx context.Context, id string, userID primitive.ObjectID, content string) (*Comment, error)
}

type PostServiceImpl struct {
	Repo PostRepository
}

func NewPostService(repo PostRepository) PostService {
	return &PostServiceImpl{Repo: repo}
}

func (s *PostServiceImpl) Create(ctx context.Context, post *Post) error {
	post.Status = StatusActive
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Likes = []primitive.ObjectID{}
	post.Comments = []Comment{}
	post.Views = 0

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	return s.Repo.Create(ctx, post)
}

func (s *PostServiceImpl) List(ctx context.Context, filter ListFilter, params utils.PaginationParams) ([]Post, int64, error) {
	query := bson.M{"status": StatusActive}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	return s.Repo.List(ctx, query, params)
}

func (s *PostServiceImpl) ListByAuthor(ctx context.Context, userID primitive.ObjectID, params utils.PaginationParams) ([]Post, int64, error) {
	query := bson.M{
		"user_id": userID,
		"status":  bson.M{"$ne": StatusDeleted},
	}

	return s.Repo.List(ctx, query, params)
}

// Get returns a single post and bumps its view counter.
func (s *PostServiceImpl) Get(ctx context.Context, id string) (*Post, error) {
	return s.Repo.IncrementViews(ctx, id)
}

func (s *PostServiceImpl) Update(ctx context.Context, id string, userID primitive.ObjectID, input UpdateInput) (*Post, error) {
	post, err := s.Repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.Images != nil {
		post.Images = input.Images
	}
	if input.Status != nil && *input.Status != StatusDeleted {
		post.Status = *input.Status
	}

	post.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete flips the post status so the record and its comments are kept.
func (s *PostServiceImpl) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	post, err := s.Repo.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	post.Status = StatusDeleted
	post.UpdatedAt = time.Now()

	return s.Repo.Replace(ctx, post)
}

func (s *PostServiceImpl) ToggleLike(ctx context.Context, id string, userID primitive.ObjectID) (bool, int, error) {
	post, err := s.Repo.FindActiveByID(ctx, id)
	if err != nil {
		return false, 0, err
	}

	liked := post.ToggleLike(userID)
	post.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, post); err != nil {
		return false, 0, err
	}
	return liked, len(post.Likes), nil
}

func (s *PostServiceImpl) AddComment(ctx context.Context, id string, userID primitive.ObjectID, content string) (*Comment, error) {
	post, err := s.Repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := Comment{
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	post.Comments = append(post.Comments, comment)
	post.UpdatedAt = comment.CreatedAt

	if err := s.Repo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return &comment, nil
}
