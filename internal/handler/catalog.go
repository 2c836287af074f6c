package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelle-app/aurelle/internal/domain"
)

type createCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

type createKaratRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), req.Name, req.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryResponse(category))
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse(cat))
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (h *Handler) getCategory(c *gin.Context) {
	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryResponse(category))
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) createKarat(c *gin.Context) {
	var req createKaratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	karat, err := h.catalog.CreateKarat(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": karat.ID, "name": karat.Name})
}

func (h *Handler) listKarats(c *gin.Context) {
	karats, err := h.catalog.ListKarats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(karats))
	for _, k := range karats {
		out = append(out, gin.H{"id": k.ID, "name": k.Name})
	}
	c.JSON(http.StatusOK, gin.H{"karats": out})
}

func (h *Handler) getKarat(c *gin.Context) {
	karat, err := h.catalog.GetKarat(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": karat.ID, "name": karat.Name})
}

func (h *Handler) deleteKarat(c *gin.Context) {
	if err := h.catalog.DeleteKarat(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listGeofences(c *gin.Context) {
	geofences, err := h.catalog.ListGeofences(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(geofences))
	for _, g := range geofences {
		out = append(out, gin.H{"id": g.ID, "region": g.Region})
	}
	c.JSON(http.StatusOK, gin.H{"geofences": out})
}

func categoryResponse(category *domain.Category) gin.H {
	return gin.H{
		"id":     category.ID,
		"name":   category.Name,
		"avatar": category.Avatar,
	}
}
