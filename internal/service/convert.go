package service

import (
	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

// rowToUser converts a sqlc-generated row to a domain.User. The password
// hash never leaves the service layer.
func rowToUser(row sqlc.User) *domain.User {
	return &domain.User{
		ID:          row.ID,
		Name:        row.Name,
		PhoneNumber: row.PhoneNumber,
		CoverImage:  row.CoverImage,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func rowToItem(row sqlc.Item) *domain.Item {
	return &domain.Item{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Price:         row.Price,
		Negotiable:    row.Negotiable,
		OwnerID:       row.OwnerID,
		Status:        domain.ParseItemStatus(row.ItemStatus),
		IsHidden:      row.IsHidden,
		FavoriteCount: row.FavoriteCount,
		MessageCount:  row.MessageCount,
		SeenCount:     row.SeenCount,
		Size:          row.ItemSize,
		Weight:        row.Weight,
		KaratID:       row.KaratID,
		CategoryID:    row.CategoryID,
		GeofenceID:    row.GeofenceID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func rowToItemImage(row sqlc.ItemImage) *domain.ItemImage {
	return &domain.ItemImage{
		ID:              row.ID,
		Key:             row.Key,
		ItemID:          row.ItemID,
		UserID:          row.UserID,
		IsCover:         row.IsCover,
		UploadedToCloud: row.UploadedToCloud,
		CreatedAt:       row.CreatedAt,
	}
}

func rowToRoom(row sqlc.Room) *domain.Room {
	return &domain.Room{
		ID:        row.ID,
		ItemID:    row.ItemID,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
	}
}

func rowToMessage(row sqlc.Message) domain.Message {
	return domain.Message{
		ID:         row.ID,
		RoomID:     row.RoomID,
		SenderID:   row.SenderID,
		SenderName: row.SenderName,
		Body:       row.Msg,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func rowToCategory(row sqlc.Category) *domain.Category {
	return &domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		Avatar:    row.Avatar,
		CreatedAt: row.CreatedAt,
	}
}

func rowToKarat(row sqlc.Karat) *domain.Karat {
	return &domain.Karat{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func rowToGeofence(row sqlc.Geofence) *domain.Geofence {
	return &domain.Geofence{
		ID:     row.ID,
		Region: row.Region,
	}
}

func rowToPurchase(row sqlc.Purchase) *domain.Purchase {
	return &domain.Purchase{
		ID:        row.ID,
		ItemID:    row.ItemID,
		BuyerID:   row.BuyerID,
		SellerID:  row.SellerID,
		CreatedAt: row.CreatedAt,
	}
}
