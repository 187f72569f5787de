package community

import (
	"context"
	"testing"

	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakePostRepo keeps posts in memory, keyed by hex id.
type fakePostRepo struct {
	posts map[string]*Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *Post) error {
	post.ID = primitive.NewObjectID()
	copied := *post
	f.posts[post.ID.Hex()] = &copied
	return nil
}

func (f *fakePostRepo) FindActiveByID(ctx context.Context, id string) (*Post, error) {
	if p, ok := f.posts[id]; ok && p.Status != StatusDeleted {
		copied := *p
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*Post, error) {
	if p, ok := f.posts[id]; ok && p.UserID == userID && p.Status != StatusDeleted {
		copied := *p
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) List(ctx context.Context, filter bson.M, params utils.PaginationParams) ([]Post, int64, error) {
	out := []Post{}
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) Replace(ctx context.Context, post *Post) error {
	if _, ok := f.posts[post.ID.Hex()]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *post
	f.posts[post.ID.Hex()] = &copied
	return nil
}

func (f *fakePostRepo) IncrementViews(ctx context.Context, id string) (*Post, error) {
	p, ok := f.posts[id]
	if !ok || p.Status == StatusDeleted {
		return nil, mongo.ErrNoDocuments
	}
	p.Views++
	copied := *p
	return &copied, nil
}

func createTestPost(t *testing.T, svc PostService, author primitive.ObjectID) *Post {
	t.Helper()
	post := &Post{
		UserID:   author,
		Title:    "Best wheat variety for black soil?",
		Content:  "Looking for recommendations before the rabi season.",
		Category: CategoryQuestion,
	}
	if err := svc.Create(context.Background(), post); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return post
}

func TestToggleLikePersistsAcrossCalls(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := primitive.NewObjectID()
	reader := primitive.NewObjectID()

	post := createTestPost(t, svc, author)

	liked, count, err := svc.ToggleLike(context.Background(), post.ID.Hex(), reader)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("first toggle: liked=%v count=%d, want true 1", liked, count)
	}

	liked, count, err = svc.ToggleLike(context.Background(), post.ID.Hex(), reader)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if liked || count != 0 {
		t.Errorf("second toggle: liked=%v count=%d, want false 0", liked, count)
	}
}

func TestAddComment(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := primitive.NewObjectID()
	commenter := primitive.NewObjectID()

	post := createTestPost(t, svc, author)

	comment, err := svc.AddComment(context.Background(), post.ID.Hex(), commenter, "Try HD-2967, worked well for me.")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.UserID != commenter {
		t.Error("comment not attributed to the commenter")
	}
	if comment.CreatedAt.IsZero() {
		t.Error("comment timestamp not set")
	}

	stored := repo.posts[post.ID.Hex()]
	if len(stored.Comments) != 1 {
		t.Errorf("len(Comments) = %d, want 1", len(stored.Comments))
	}
}

func TestDeleteIsSoft(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := primitive.NewObjectID()

	post := createTestPost(t, svc, author)

	if err := svc.Delete(context.Background(), post.ID.Hex(), author); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	stored := repo.posts[post.ID.Hex()]
	if stored == nil {
		t.Fatal("post record removed, want soft delete")
	}
	if stored.Status != StatusDeleted {
		t.Errorf("Status = %q, want %q", stored.Status, StatusDeleted)
	}

	// A deleted post is gone from every read path.
	if _, err := svc.Get(context.Background(), post.ID.Hex()); err == nil {
		t.Error("Get() on deleted post succeeded, want error")
	}
	if _, _, err := svc.ToggleLike(context.Background(), post.ID.Hex(), author); err == nil {
		t.Error("ToggleLike() on deleted post succeeded, want error")
	}
}

func TestDeleteByNonOwner(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := primitive.NewObjectID()

	post := createTestPost(t, svc, author)

	if err := svc.Delete(context.Background(), post.ID.Hex(), primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("Delete() by non-owner error = %v, want mongo.ErrNoDocuments", err)
	}
	if repo.posts[post.ID.Hex()].Status == StatusDeleted {
		t.Error("non-owner delete flipped the status")
	}
}

func TestUpdateCannotSetDeletedStatus(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := primitive.NewObjectID()

	post := createTestPost(t, svc, author)

	deleted := StatusDeleted
	updated, err := svc.Update(context.Background(), post.ID.Hex(), author, UpdateInput{Status: &deleted})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status == StatusDeleted {
		t.Error("Update() allowed setting deleted status directly")
	}
}
