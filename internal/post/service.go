// Package post implements post CRUD, the like toggle, embedded comments,
// and the 24h timeline query.
package post

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/models"
)

const timelineWindow = 24 * time.Hour

// PostStore defines the post persistence the service needs.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Replace(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByUsername(ctx context.Context, username string) ([]models.Post, error)
	ListTimeline(ctx context.Context, usernames []string, since time.Time) ([]models.Post, error)
}

// UserStore is the read side needed for the timeline query.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	posts PostStore
	users UserStore
}

func NewService(posts PostStore, users UserStore) *Service {
	return &Service{posts: posts, users: users}
}

// Create inserts a new post owned by the caller.
func (s *Service) Create(ctx context.Context, username, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.NewValidationError("body", "Post body must not be empty.")
	}

	return s.posts.Insert(ctx, &models.Post{
		Username:  username,
		Body:      body,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	})
}

// Get returns a single post by id.
func (s *Service) Get(ctx context.Context, postID string) (*models.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// ListAll returns every post, newest first.
func (s *Service) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListAll(ctx)
}

// ListByUser returns a user's posts, newest first.
func (s *Service) ListByUser(ctx context.Context, username string) ([]models.Post, error) {
	return s.posts.ListByUsername(ctx, username)
}

// Delete removes a post. Only the owning username may delete it.
func (s *Service) Delete(ctx context.Context, username, postID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Username != username {
		return common.ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

// ToggleLike likes the post if the caller has not liked it, unlikes it
// otherwise.
func (s *Service) ToggleLike(ctx context.Context, username, postID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, like := range post.Likes {
		if like.Username == username {
			liked = true
			break
		}
	}

	if liked {
		likes := make([]models.Like, 0, len(post.Likes))
		for _, like := range post.Likes {
			if like.Username != username {
				likes = append(likes, like)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, models.Like{
			ID:        primitive.NewObjectID(),
			Username:  username,
			CreatedAt: time.Now(),
		})
	}

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment appends a comment authored by the caller.
func (s *Service) AddComment(ctx context.Context, username, postID, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.NewValidationError("body", "Comment body must not be empty.")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, models.Comment{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Body:      body,
		CreatedAt: time.Now(),
	})

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteComment removes a comment. Only the comment's author may delete it.
func (s *Service) DeleteComment(ctx context.Context, username, postID, commentID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID.Hex() == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrNotFound
	}
	if post.Comments[idx].Username != username {
		return nil, common.ErrForbidden
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Timeline returns posts from the users the caller follows, created within
// the last 24 hours, newest first.
func (s *Service) Timeline(ctx context.Context, username string) ([]models.Post, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(user.Followings))
	for _, f := range user.Followings {
		usernames = append(usernames, f.Username)
	}
	if len(usernames) == 0 {
		return []models.Post{}, nil
	}

	return s.posts.ListTimeline(ctx, usernames, time.Now().Add(-timelineWindow))
}
