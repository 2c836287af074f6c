package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "Active"
	ItemStatusReserved ItemStatus = "Reserved"
	ItemStatusSold     ItemStatus = "Sold"
)

// ParseItemStatus maps a stored status string to an ItemStatus,
// defaulting to Active for unknown values, matching the column default.
func ParseItemStatus(s string) ItemStatus {
	switch s {
	case "Reserved":
		return ItemStatusReserved
	case "Sold":
		return ItemStatusSold
	default:
		return ItemStatusActive
	}
}

type Item struct {
	ID            int64
	Title         string
	Description   string
	Price         decimal.Decimal
	Negotiable    bool
	OwnerID       int64
	Status        ItemStatus
	IsHidden      bool
	FavoriteCount int32
	MessageCount  int32
	SeenCount     int32
	Size          string
	Weight        string
	KaratID       *int64
	CategoryID    *int64
	GeofenceID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ItemImage struct {
	ID              int64
	Key             string
	ItemID          int64
	UserID          int64
	IsCover         bool
	UploadedToCloud bool
	CreatedAt       time.Time
}

// URL resolves the image key against the CDN domain.
func (i *ItemImage) URL(cdnDomain string) string {
	return "https://" + cdnDomain + "/" + i.Key
}

type UserFavorite struct {
	ID         int64
	UserID     int64
	ItemID     int64
	IsFavorite bool
}

type Purchase struct {
	ID        int64
	ItemID    int64
	BuyerID   int64
	SellerID  int64
	CreatedAt time.Time
}
