package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/middleware"
)

type userResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type updateUserRequest struct {
	Name       *string `json:"name"`
	CoverImage *string `json:"coverImage"`
}

func (h *Handler) currentUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.userResponse(user))
}

func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == nil && req.CoverImage == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	userID := middleware.UserID(c)
	if err := h.users.UpdateProfile(c.Request.Context(), userID, req.Name, req.CoverImage); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.userResponse(user))
}

func (h *Handler) clearCoverImage(c *gin.Context) {
	if err := h.users.ClearCoverImage(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) avatarUploadURL(c *gin.Context) {
	key, url, err := h.documents.AvatarUploadURL(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "uploadUrl": url})
}

func (h *Handler) ownItems(c *gin.Context) {
	summaries, err := h.items.ListByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.itemSummaries(summaries)})
}

func (h *Handler) favoriteItems(c *gin.Context) {
	summaries, err := h.items.ListFavorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.itemSummaries(summaries)})
}

func (h *Handler) userResponse(user *domain.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.AvatarURL(h.cfg.CDNDomain),
		CreatedAt:   user.CreatedAt,
	}
}
