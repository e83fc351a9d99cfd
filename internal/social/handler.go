package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estivensal7/Moment-API/internal/auth"
	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/httpx"
)

// Handler holds the follow-graph and profile HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Profile returns another user's details, privacy-gated.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	user, err := h.svc.Profile(r.Context(), claims.Username, chi.URLParam(r, "username"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// Follow toggles the follow state toward the target user and returns the
// caller's updated record.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	user, err := h.svc.ToggleFollow(r.Context(), claims.Username, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// Privacy toggles the caller's privacy status.
func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	user, err := h.svc.TogglePrivacy(r.Context(), claims.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// Followings lists who the caller follows.
func (h *Handler) Followings(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	entries, err := h.svc.Followings(r.Context(), claims.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}

// Followers lists who follows the caller.
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpx.Error(w, common.ErrUnauthenticated)
		return
	}

	entries, err := h.svc.Followers(r.Context(), claims.Username)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}
