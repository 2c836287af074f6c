package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelle-app/aurelle/internal/middleware"
)

type createItemDocumentsRequest struct {
	ItemID int64 `json:"itemId" binding:"required"`
	Count  int   `json:"count" binding:"required,min=1,max=10"`
}

type markDocumentsRequest struct {
	ImageIDs []int64 `json:"imageIds" binding:"required,min=1"`
}

func (h *Handler) createItemDocuments(c *gin.Context) {
	var req createItemDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docs, err := h.documents.CreateItemDocuments(c.Request.Context(), middleware.UserID(c), req.ItemID, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		out = append(out, gin.H{
			"id":        d.ID,
			"key":       d.Key,
			"isCover":   d.IsCover,
			"uploadUrl": d.UploadURL,
		})
	}
	c.JSON(http.StatusCreated, gin.H{"documents": out})
}

func (h *Handler) markDocumentsUploaded(c *gin.Context) {
	var req markDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.documents.MarkUploaded(c.Request.Context(), middleware.UserID(c), req.ImageIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
