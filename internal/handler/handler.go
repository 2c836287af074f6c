package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aurelle-app/aurelle/internal/auth"
	"github.com/aurelle-app/aurelle/internal/config"
	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/middleware"
	"github.com/aurelle-app/aurelle/internal/service"
	"github.com/aurelle-app/aurelle/internal/ws"
)

type Deps struct {
	Config    *config.Config
	Tokens    *auth.Manager
	Users     *service.UserService
	Items     *service.ItemService
	Catalog   *service.CatalogService
	Rooms     *service.RoomService
	Documents *service.DocumentService
	Lobby     *ws.Lobby
}

type Handler struct {
	cfg       *config.Config
	tokens    *auth.Manager
	users     *service.UserService
	items     *service.ItemService
	catalog   *service.CatalogService
	rooms     *service.RoomService
	documents *service.DocumentService
	lobby     *ws.Lobby
	upgrader  websocket.Upgrader
}

func New(deps Deps) *Handler {
	return &Handler{
		cfg:       deps.Config,
		tokens:    deps.Tokens,
		users:     deps.Users,
		items:     deps.Items,
		catalog:   deps.Catalog,
		rooms:     deps.Rooms,
		documents: deps.Documents,
		lobby:     deps.Lobby,
		upgrader: websocket.Upgrader{
			// Membership is enforced with the bearer token before the
			// upgrade; the Origin header proves nothing beyond that.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.Use(middleware.Recover(), middleware.Logging())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/heartbeat", h.heartbeat)
	r.POST("/users/signup", h.signup)
	r.POST("/users/signin", h.signin)
	r.POST("/auth/refreshAccessAuthToken", h.refreshToken)

	authed := r.Group("", middleware.Auth(h.tokens))
	{
		authed.POST("/auth/logout", h.logout)

		authed.GET("/users", h.currentUser)
		authed.POST("/users/update", h.updateUser)
		authed.DELETE("/users/coverImage", h.clearCoverImage)
		authed.GET("/users/coverImage/presignedUrl", h.avatarUploadURL)
		authed.GET("/users/items", h.ownItems)
		authed.GET("/users/items/favorite", h.favoriteItems)

		authed.POST("/items/create", h.createItem)
		authed.GET("/items", h.listItems)
		authed.GET("/items/:id", h.getItem)
		authed.POST("/items/:id/status", h.setItemStatus)
		authed.POST("/items/:id/hide", h.hideItem)
		authed.POST("/items/:id/favorite", h.favoriteItem)
		authed.GET("/items/:id/buyers", h.itemBuyers)
		authed.POST("/items/:id/purchase", h.purchaseItem)

		authed.POST("/categories/create", h.createCategory)
		authed.GET("/categories", h.listCategories)
		authed.GET("/categories/:name", h.getCategory)
		authed.DELETE("/categories/:name", h.deleteCategory)

		authed.POST("/karats/create", h.createKarat)
		authed.GET("/karats", h.listKarats)
		authed.GET("/karats/:name", h.getKarat)
		authed.DELETE("/karats/:name", h.deleteKarat)

		authed.GET("/geofences", h.listGeofences)

		authed.POST("/document/item/create", h.createItemDocuments)
		authed.POST("/document/status", h.markDocumentsUploaded)

		authed.POST("/room/createRoom", h.createRoom)
		authed.GET("/room/getUserRooms", h.userRooms)
		authed.GET("/room/join/:roomID", h.joinRoom)
	}
}

func (h *Handler) heartbeat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with its cause.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrKaratNotFound),
		errors.Is(err, domain.ErrNoCoverImage):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrNotRoomMember),
		errors.Is(err, domain.ErrItemHidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPhoneNumberTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSelfPurchase):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
