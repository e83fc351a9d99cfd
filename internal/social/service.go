// Package social implements the follow graph and the privacy gate over
// profile reads.
package social

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/models"
)

// UserStore defines the user persistence the service needs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Replace(ctx context.Context, user *models.User) error
}

// Locker serializes follow toggles per user pair.
type Locker interface {
	Acquire(ctx context.Context, idA, idB string) (string, error)
	Release(ctx context.Context, idA, idB, token string) error
}

// Service maintains the denormalized followings/followers lists and
// answers privacy checks.
type Service struct {
	users UserStore
	locks Locker
}

func NewService(users UserStore, locks Locker) *Service {
	return &Service{users: users, locks: locks}
}

// AuthorizeProfileRead reports whether the requester may read the target
// profile: public profiles always, private ones only for followers. It
// consults only the fetched target document, never the requester's claims.
func AuthorizeProfileRead(requesterUsername string, target *models.User) bool {
	if target.PrivacyStatus == models.PrivacyPublic {
		return true
	}
	return hasEntry(target.Followers, requesterUsername)
}

// Profile fetches a user by username, applying the privacy gate for the
// requester. Reading your own profile is always allowed.
func (s *Service) Profile(ctx context.Context, requesterUsername, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if requesterUsername != username && !AuthorizeProfileRead(requesterUsername, user) {
		return nil, common.ErrForbidden
	}
	return user, nil
}

// ToggleFollow flips the follow state between the current user and the
// target: following becomes not-following and vice versa, updating both
// documents. Returns the updated current user.
func (s *Service) ToggleFollow(ctx context.Context, currentUsername, targetID string) (*models.User, error) {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user to follow: %w", err)
	}
	current, err := s.users.GetByUsername(ctx, currentUsername)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if current.Username == target.Username {
		return nil, common.NewValidationError("user_to_follow_id", "You cannot follow yourself.")
	}

	lockToken, err := s.locks.Acquire(ctx, current.ID.Hex(), target.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("acquire follow lock: %w", err)
	}
	defer func() {
		if err := s.locks.Release(ctx, current.ID.Hex(), target.ID.Hex(), lockToken); err != nil {
			log.Printf("release follow lock: %v", err)
		}
	}()

	// Re-read both documents under the lock so concurrent toggles on the
	// same pair observe each other's writes.
	if target, err = s.users.GetByID(ctx, targetID); err != nil {
		return nil, fmt.Errorf("user to follow: %w", err)
	}
	if current, err = s.users.GetByUsername(ctx, currentUsername); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	prevFollowings := current.Followings
	prevFollowers := target.Followers

	if hasEntry(target.Followers, current.Username) {
		// Already following: unfollow on both sides.
		target.Followers = removeEntry(target.Followers, current.Username)
		current.Followings = removeEntry(current.Followings, target.Username)
	} else {
		now := time.Now()
		current.Followings = append(current.Followings, models.RelationEntry{
			Username:  target.Username,
			CreatedAt: now,
		})
		target.Followers = append(target.Followers, models.RelationEntry{
			Username:  current.Username,
			CreatedAt: now,
		})
	}

	if err := s.users.Replace(ctx, current); err != nil {
		return nil, fmt.Errorf("save current user: %w", err)
	}
	if err := s.users.Replace(ctx, target); err != nil {
		// Roll back the first write so the two documents do not diverge.
		current.Followings = prevFollowings
		target.Followers = prevFollowers
		if rbErr := s.users.Replace(ctx, current); rbErr != nil {
			log.Printf("follow rollback for %s failed: %v", current.Username, rbErr)
		}
		return nil, fmt.Errorf("save target user: %w", err)
	}

	return current, nil
}

// TogglePrivacy flips the user's profile between public and private.
func (s *Service) TogglePrivacy(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.PrivacyStatus == models.PrivacyPublic {
		user.PrivacyStatus = models.PrivacyPrivate
	} else {
		user.PrivacyStatus = models.PrivacyPublic
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Followings returns the caller's own followings list.
func (s *Service) Followings(ctx context.Context, username string) ([]models.RelationEntry, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Followings, nil
}

// Followers returns the caller's own followers list.
func (s *Service) Followers(ctx context.Context, username string) ([]models.RelationEntry, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Followers, nil
}

func hasEntry(entries []models.RelationEntry, username string) bool {
	for _, e := range entries {
		if e.Username == username {
			return true
		}
	}
	return false
}

func removeEntry(entries []models.RelationEntry, username string) []models.RelationEntry {
	out := make([]models.RelationEntry, 0, len(entries))
	for _, e := range entries {
		if e.Username != username {
			out = append(out, e)
		}
	}
	return out
}
