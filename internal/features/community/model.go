package community

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostCategory string

const (
	CategoryQuestion     PostCategory = "question"
	CategoryDiscussion   PostCategory = "discussion"
	CategoryTip          PostCategory = "tip"
	CategorySuccessStory PostCategory = "success-story"
	CategoryHelp         PostCategory = "help"
)

type PostStatus string

const (
	StatusActive  PostStatus = "active"
	StatusClosed  PostStatus = "closed"
	StatusDeleted PostStatus = "deleted"
)

type Comment struct {
	UserID    primitive.ObjectID `json:"userId" bson:"user_id"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Post is a community feed entry. Deletion is a soft status flip so comment
// threads survive in the database.
type Post struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID   `json:"userId" bson:"user_id"`
	Title     string               `json:"title" bson:"title"`
	Content   string               `json:"content" bson:"content"`
	Category  PostCategory         `json:"category" bson:"category"`
	Tags      []string             `json:"tags" bson:"tags"`
	Images    []string             `json:"images,omitempty" bson:"images,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	Views     int64                `json:"views" bson:"views"`
	Status    PostStatus           `json:"status" bson:"status"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}

// ToggleLike flips the user's membership in the like set and reports whether
// the post is liked after the call. Two calls by the same user restore the
// original state.
func (p *Post) ToggleLike(userID primitive.ObjectID) bool {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, userID)
	return true
}

// ValidCategory reports whether c is one of the known post categories.
func ValidCategory(c PostCategory) bool {
	switch c {
	case CategoryQuestion, CategoryDiscussion, CategoryTip, CategorySuccessStory, CategoryHelp:
		return true
	}
	return false
}
