package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/httpx"
	"github.com/estivensal7/Moment-API/internal/models"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users  UserStore
	tokens *TokenManager
}

func NewHandler(users UserStore, tokens *TokenManager) *Handler {
	return &Handler{users: users, tokens: tokens}
}

// Register creates a new account and returns it with a fresh token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, common.NewValidationError("body", "Invalid request body."))
		return
	}
	if verr := ValidateRegister(&req); verr != nil {
		httpx.Error(w, verr)
		return
	}

	// Username uniqueness is enforced at creation.
	if _, err := h.users.GetByUsername(r.Context(), req.Username); err == nil {
		httpx.Error(w, common.ErrConflict)
		return
	} else if !errors.Is(err, common.ErrNotFound) {
		httpx.Error(w, err)
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	user, err := h.users.Insert(r.Context(), &models.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      hashed,
		PrivacyStatus: req.PrivacyStatus,
		Followings:    []models.RelationEntry{},
		Followers:     []models.RelationEntry{},
		CreatedAt:     time.Now(),
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email, user.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, models.AuthResponse{User: user, Token: token})
}

// Login verifies credentials and returns the account with a fresh token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, common.NewValidationError("body", "Invalid request body."))
		return
	}
	if verr := ValidateLogin(&req); verr != nil {
		httpx.Error(w, verr)
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if err := CheckPassword(user.Password, req.Password); err != nil {
		httpx.Error(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email, user.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

// Me returns the currently authenticated user's own record.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}
