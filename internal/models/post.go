package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like marks a user's like on a post.
type Like struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id"`
	Username  string             `json:"username"   bson:"username"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Comment is an embedded reply on a post, owned by its author.
type Comment struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id"`
	Username  string             `json:"username"   bson:"username"`
	Body      string             `json:"body"       bson:"body"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Post is a single post document. Likes and comments are embedded
// sub-collections, not separately owned entities.
type Post struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Username  string             `json:"username"   bson:"username"`
	Body      string             `json:"body"       bson:"body"`
	Likes     []Like             `json:"likes"      bson:"likes"`
	Comments  []Comment          `json:"comments"   bson:"comments"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// MarshalJSON adds the derived like/comment counts to the serialized post.
func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		alias
		LikeCount    int `json:"like_count"`
		CommentCount int `json:"comment_count"`
	}{
		alias:        alias(p),
		LikeCount:    len(p.Likes),
		CommentCount: len(p.Comments),
	})
}

// CreatePostRequest is the JSON body for POST /api/posts.
type CreatePostRequest struct {
	Body string `json:"body"`
}

// CreateCommentRequest is the JSON body for POST /api/posts/{id}/comments.
type CreateCommentRequest struct {
	Body string `json:"body"`
}
