package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/middleware"
	"github.com/aurelle-app/aurelle/internal/ws"
)

type createRoomRequest struct {
	ItemID int64 `json:"itemId" binding:"required"`
	// The other participant: the seller when the buyer opens the chat,
	// the buyer when the seller does.
	SecondaryUserID int64 `json:"secondaryUserId" binding:"required"`
}

func (h *Handler) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.rooms.FindOrCreate(c.Request.Context(), req.ItemID, middleware.UserID(c), req.SecondaryUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomId":    room.ID,
		"itemId":    room.ItemID,
		"createdBy": room.CreatedBy,
	})
}

func (h *Handler) userRooms(c *gin.Context) {
	summaries, err := h.rooms.UserRooms(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		room := gin.H{
			"roomId":    s.RoomID,
			"itemId":    s.ItemID,
			"itemTitle": s.ItemTitle,
			"unread":    s.Unread,
		}
		if s.CoverKey != "" {
			img := domain.ItemImage{Key: s.CoverKey}
			room["cover"] = img.URL(h.cfg.CDNDomain)
		}
		if s.LastMessage != nil {
			room["lastMessage"] = gin.H{
				"message":    s.LastMessage.Body,
				"senderId":   s.LastMessage.SenderID,
				"senderName": s.LastMessage.SenderName,
				"createdAt":  s.LastMessage.CreatedAt,
			}
		}
		out = append(out, room)
	}
	c.JSON(http.StatusOK, gin.H{"rooms": out})
}

// joinRoom authorizes the caller for the room and upgrades the connection
// into a chat session. The handler blocks for the life of the socket.
func (h *Handler) joinRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	userID := middleware.UserID(c)

	if err := h.rooms.Authorize(c.Request.Context(), roomID, userID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.rooms.MarkJoined(c.Request.Context(), roomID, userID); err != nil {
		respondError(c, err)
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		slog.Warn("websocket upgrade failed", "room_id", roomID, "user_id", userID, "error", err)
		return
	}

	session := ws.NewSession(conn, h.lobby, userID, user.Name, roomID)
	session.Run(c.Request.Context())
}

// parseRoomID reads the room id path segment. Clients append a `#` plus a
// discriminator to the id; everything from the `#` on is dropped.
func parseRoomID(c *gin.Context) (int64, bool) {
	raw := c.Param("roomID")
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		raw = raw[:idx]
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return 0, false
	}
	return id, true
}
