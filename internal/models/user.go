package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Privacy status values for a user profile.
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// RelationEntry pairs a username with the moment the relationship began.
// The same shape is used for both followings and followers.
type RelationEntry struct {
	Username  string    `json:"username"   bson:"username"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// User is a single account document stored in MongoDB. The followings and
// followers arrays are denormalized mirrors of each other across documents:
// an entry in A.Followings for B always has a counterpart in B.Followers
// for A.
type User struct {
	ID            primitive.ObjectID `json:"id"             bson:"_id,omitempty"`
	Username      string             `json:"username"       bson:"username"`
	Email         string             `json:"email"          bson:"email"`
	Password      string             `json:"-"              bson:"password"` // bcrypt hash, never serialized
	PrivacyStatus string             `json:"privacy_status" bson:"privacy_status"`
	Followings    []RelationEntry    `json:"followings"     bson:"followings"`
	Followers     []RelationEntry    `json:"followers"      bson:"followers"`
	CreatedAt     time.Time          `json:"created_at"     bson:"created_at"`
}

// MarshalJSON adds the derived relation counts to the serialized user.
func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return json.Marshal(struct {
		alias
		FollowingsCount int `json:"followings_count"`
		FollowersCount  int `json:"followers_count"`
	}{
		alias:           alias(u),
		FollowingsCount: len(u.Followings),
		FollowersCount:  len(u.Followers),
	})
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	PrivacyStatus   string `json:"privacy_status"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: the account plus a fresh
// bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
