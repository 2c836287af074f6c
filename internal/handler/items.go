package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/middleware"
	"github.com/aurelle-app/aurelle/internal/service"
)

type createItemRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Negotiable  bool            `json:"negotiable"`
	Size        string          `json:"size"`
	Weight      string          `json:"weight"`
	KaratID     *int64          `json:"karatId"`
	CategoryID  *int64          `json:"categoryId"`
	GeofenceID  *int64          `json:"geofenceId"`
}

type setItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type hideItemRequest struct {
	Hidden bool `json:"hidden"`
}

type purchaseItemRequest struct {
	BuyerID int64 `json:"buyerId" binding:"required"`
}

type itemResponse struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Negotiable    bool            `json:"negotiable"`
	OwnerID       int64           `json:"ownerId"`
	Status        string          `json:"status"`
	IsHidden      bool            `json:"isHidden"`
	FavoriteCount int32           `json:"favoriteCount"`
	MessageCount  int32           `json:"messageCount"`
	SeenCount     int32           `json:"seenCount"`
	Size          string          `json:"size,omitempty"`
	Weight        string          `json:"weight,omitempty"`
	KaratID       *int64          `json:"karatId,omitempty"`
	CategoryID    *int64          `json:"categoryId,omitempty"`
	GeofenceID    *int64          `json:"geofenceId,omitempty"`
	Cover         string          `json:"cover,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Create(c.Request.Context(), service.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Negotiable:  req.Negotiable,
		OwnerID:     middleware.UserID(c),
		Size:        req.Size,
		Weight:      req.Weight,
		KaratID:     req.KaratID,
		CategoryID:  req.CategoryID,
		GeofenceID:  req.GeofenceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.itemResponse(item, ""))
}

func (h *Handler) listItems(c *gin.Context) {
	summaries, err := h.items.ListVisible(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.itemSummaries(summaries)})
}

func (h *Handler) getItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.items.Get(c.Request.Context(), itemID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	images := make([]gin.H, 0, len(detail.Images))
	var cover string
	for _, img := range detail.Images {
		if img.IsCover && img.UploadedToCloud {
			cover = img.URL(h.cfg.CDNDomain)
		}
		images = append(images, gin.H{
			"id":       img.ID,
			"url":      img.URL(h.cfg.CDNDomain),
			"isCover":  img.IsCover,
			"uploaded": img.UploadedToCloud,
		})
	}

	resp := gin.H{
		"item":       h.itemResponse(detail.Item, cover),
		"owner":      h.userResponse(detail.Owner),
		"images":     images,
		"isFavorite": detail.IsFavorite,
	}
	if detail.Purchase != nil {
		resp["purchase"] = gin.H{
			"buyerId":   detail.Purchase.BuyerID,
			"sellerId":  detail.Purchase.SellerID,
			"createdAt": detail.Purchase.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) setItemStatus(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req setItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.ParseItemStatus(req.Status)
	if err := h.items.SetStatus(c.Request.Context(), itemID, middleware.UserID(c), status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

func (h *Handler) hideItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req hideItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.items.SetHidden(c.Request.Context(), itemID, middleware.UserID(c), req.Hidden); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": req.Hidden})
}

func (h *Handler) favoriteItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	favorite, err := h.items.ToggleFavorite(c.Request.Context(), middleware.UserID(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": favorite})
}

func (h *Handler) itemBuyers(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	buyers, err := h.items.Buyers(c.Request.Context(), itemID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(buyers))
	for _, b := range buyers {
		buyer := domain.User{ID: b.ID, Name: b.Name, CoverImage: b.CoverImage}
		out = append(out, gin.H{
			"id":           b.ID,
			"name":         b.Name,
			"avatar":       buyer.AvatarURL(h.cfg.CDNDomain),
			"lastJoinedAt": b.LastJoinedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"buyers": out})
}

func (h *Handler) purchaseItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req purchaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.items.Purchase(c.Request.Context(), itemID, middleware.UserID(c), req.BuyerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        purchase.ID,
		"itemId":    purchase.ItemID,
		"buyerId":   purchase.BuyerID,
		"sellerId":  purchase.SellerID,
		"createdAt": purchase.CreatedAt,
	})
}

func (h *Handler) itemResponse(item *domain.Item, coverKey string) itemResponse {
	resp := itemResponse{
		ID:            item.ID,
		Title:         item.Title,
		Description:   item.Description,
		Price:         item.Price,
		Negotiable:    item.Negotiable,
		OwnerID:       item.OwnerID,
		Status:        string(item.Status),
		IsHidden:      item.IsHidden,
		FavoriteCount: item.FavoriteCount,
		MessageCount:  item.MessageCount,
		SeenCount:     item.SeenCount,
		Size:          item.Size,
		Weight:        item.Weight,
		KaratID:       item.KaratID,
		CategoryID:    item.CategoryID,
		GeofenceID:    item.GeofenceID,
		CreatedAt:     item.CreatedAt,
	}
	if coverKey != "" {
		img := domain.ItemImage{Key: coverKey}
		resp.Cover = img.URL(h.cfg.CDNDomain)
	}
	return resp
}

func (h *Handler) itemSummaries(summaries []service.ItemSummary) []itemResponse {
	out := make([]itemResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, h.itemResponse(s.Item, s.CoverKey))
	}
	return out
}

// pathID parses a numeric path parameter, responding 400 itself on junk.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
