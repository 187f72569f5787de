package community

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleLike(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	post := &Post{Likes: []primitive.ObjectID{}}

	if liked := post.ToggleLike(alice); !liked {
		t.Error("first toggle returned false, want true")
	}
	if len(post.Likes) != 1 {
		t.Fatalf("len(Likes) = %d, want 1", len(post.Likes))
	}

	if liked := post.ToggleLike(bob); !liked {
		t.Error("toggle by second user returned false, want true")
	}
	if len(post.Likes) != 2 {
		t.Fatalf("len(Likes) = %d, want 2", len(post.Likes))
	}

	// Double toggle restores the original state for that user only.
	if liked := post.ToggleLike(alice); liked {
		t.Error("second toggle returned true, want false")
	}
	if len(post.Likes) != 1 {
		t.Fatalf("len(Likes) = %d, want 1", len(post.Likes))
	}
	if post.Likes[0] != bob {
		t.Error("remaining like does not belong to the other user")
	}
}

func TestToggleLikeOnNilSlice(t *testing.T) {
	post := &Post{}

	if liked := post.ToggleLike(primitive.NewObjectID()); !liked {
		t.Error("toggle on nil slice returned false, want true")
	}
	if len(post.Likes) != 1 {
		t.Errorf("len(Likes) = %d, want 1", len(post.Likes))
	}
}

func TestValidCategory(t *testing.T) {
	valid := []PostCategory{CategoryQuestion, CategoryDiscussion, CategoryTip, CategorySuccessStory, CategoryHelp}
	for _, c := range valid {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("rant") {
		t.Error(`ValidCategory("rant") = true, want false`)
	}
}
