package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estivensal7/Moment-API/internal/auth"
	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/httpx"
	"github.com/estivensal7/Moment-API/internal/models"
)

// Handler holds post-related HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, common.NewValidationError("body", "Invalid request body."))
		return
	}

	post, err := h.svc.Create(r.Context(), claims.Username, req.Body)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, post)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, post)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListAll(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, posts)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, posts)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	if err := h.svc.Delete(r.Context(), claims.Username, chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully."})
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	post, err := h.svc.ToggleLike(r.Context(), claims.Username, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, post)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, common.NewValidationError("body", "Invalid request body."))
		return
	}

	post, err := h.svc.AddComment(r.Context(), claims.Username, chi.URLParam(r, "id"), req.Body)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, post)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	post, err := h.svc.DeleteComment(
		r.Context(), claims.Username,
		chi.URLParam(r, "id"), chi.URLParam(r, "commentID"),
	)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, post)
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	posts, err := h.svc.Timeline(r.Context(), claims.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, posts)
}
