package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

type ItemService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewItemService(db *pgxpool.Pool, queries *sqlc.Queries) *ItemService {
	return &ItemService{db: db, queries: queries}
}

type CreateItemInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Negotiable  bool
	OwnerID     int64
	Size        string
	Weight      string
	KaratID     *int64
	CategoryID  *int64
	GeofenceID  *int64
}

// ItemSummary is a listing row: the item plus its cover image key, if one
// has been uploaded.
type ItemSummary struct {
	Item     *domain.Item
	CoverKey string
}

// ItemDetail is everything the item page needs in one fetch.
type ItemDetail struct {
	Item       *domain.Item
	Owner      *domain.User
	Images     []*domain.ItemImage
	IsFavorite bool
	Purchase   *domain.Purchase
}

// Buyer is a user who opened a chat room on the item.
type Buyer struct {
	ID           int64
	Name         string
	CoverImage   *string
	LastJoinedAt time.Time
}

func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*domain.Item, error) {
	row, err := s.queries.CreateItem(ctx, sqlc.CreateItemParams{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Negotiable:  in.Negotiable,
		OwnerID:     in.OwnerID,
		ItemSize:    in.Size,
		Weight:      in.Weight,
		KaratID:     in.KaratID,
		CategoryID:  in.CategoryID,
		GeofenceID:  in.GeofenceID,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return rowToItem(row), nil
}

// ListVisible returns the feed for a viewer: every visible item that is
// not theirs and has an uploaded cover image.
func (s *ItemService) ListVisible(ctx context.Context, viewerID int64) ([]ItemSummary, error) {
	rows, err := s.queries.ListVisibleItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible items: %w", err)
	}

	summaries := make([]ItemSummary, 0, len(rows))
	for _, row := range rows {
		if row.OwnerID == viewerID {
			continue
		}
		cover, err := s.queries.GetCoverImageForItem(ctx, row.ID)
		if err != nil {
			if err == pgx.ErrNoRows {
				// Not ready for the feed until the cover upload lands.
				continue
			}
			return nil, fmt.Errorf("get cover image: %w", err)
		}
		summaries = append(summaries, ItemSummary{Item: rowToItem(row), CoverKey: cover.Key})
	}
	return summaries, nil
}

// ListByOwner returns the caller's own items, hidden ones included.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64) ([]ItemSummary, error) {
	rows, err := s.queries.ListItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	return s.withCovers(ctx, rows)
}

func (s *ItemService) ListFavorites(ctx context.Context, userID int64) ([]ItemSummary, error) {
	rows, err := s.queries.ListFavoriteItemsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite items: %w", err)
	}
	return s.withCovers(ctx, rows)
}

// Get assembles the detail view and counts the visit. Hidden items stay
// reachable by their owner only.
func (s *ItemService) Get(ctx context.Context, itemID, viewerID int64) (*ItemDetail, error) {
	row, err := s.queries.GetItemByID(ctx, itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if row.IsHidden && row.OwnerID != viewerID {
		return nil, domain.ErrItemHidden
	}

	if row.OwnerID != viewerID {
		if _, err := s.queries.IncrementItemSeenCount(ctx, itemID); err != nil {
			slog.Error("increment seen count", "item_id", itemID, "error", err)
		}
	}

	ownerRow, err := s.queries.GetUserByID(ctx, row.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get item owner: %w", err)
	}

	imageRows, err := s.queries.ListImagesForItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	images := make([]*domain.ItemImage, 0, len(imageRows))
	for _, img := range imageRows {
		images = append(images, rowToItemImage(img))
	}

	detail := &ItemDetail{
		Item:   rowToItem(row),
		Owner:  rowToUser(ownerRow),
		Images: images,
	}

	fav, err := s.queries.GetUserFavorite(ctx, sqlc.GetUserFavoriteParams{UserID: viewerID, ItemID: itemID})
	if err == nil {
		detail.IsFavorite = fav.IsFavorite
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("get favorite: %w", err)
	}

	purchase, err := s.queries.GetPurchaseForItem(ctx, itemID)
	if err == nil {
		detail.Purchase = rowToPurchase(purchase)
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	return detail, nil
}

func (s *ItemService) SetStatus(ctx context.Context, itemID, ownerID int64, status domain.ItemStatus) error {
	if err := s.requireOwner(ctx, itemID, ownerID); err != nil {
		return err
	}
	if _, err := s.queries.UpdateItemStatus(ctx, sqlc.UpdateItemStatusParams{
		ID:         itemID,
		OwnerID:    ownerID,
		ItemStatus: string(status),
	}); err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	return nil
}

func (s *ItemService) SetHidden(ctx context.Context, itemID, ownerID int64, hidden bool) error {
	if err := s.requireOwner(ctx, itemID, ownerID); err != nil {
		return err
	}
	if _, err := s.queries.SetItemHidden(ctx, sqlc.SetItemHiddenParams{ID: itemID, IsHidden: hidden}); err != nil {
		return fmt.Errorf("set item hidden: %w", err)
	}
	return nil
}

// ToggleFavorite flips the caller's favorite flag and keeps the item's
// favorite_count in step. Returns the new state.
func (s *ItemService) ToggleFavorite(ctx context.Context, userID, itemID int64) (bool, error) {
	if _, err := s.queries.GetItemByID(ctx, itemID); err != nil {
		if err == pgx.ErrNoRows {
			return false, domain.ErrItemNotFound
		}
		return false, fmt.Errorf("get item: %w", err)
	}

	fav, err := s.queries.GetUserFavorite(ctx, sqlc.GetUserFavoriteParams{UserID: userID, ItemID: itemID})
	if err != nil {
		if err != pgx.ErrNoRows {
			return false, fmt.Errorf("get favorite: %w", err)
		}
		if _, err := s.queries.CreateUserFavorite(ctx, sqlc.CreateUserFavoriteParams{
			UserID:     userID,
			ItemID:     itemID,
			IsFavorite: true,
		}); err != nil {
			return false, fmt.Errorf("create favorite: %w", err)
		}
		s.bumpFavoriteCount(ctx, itemID, 1)
		return true, nil
	}

	next := !fav.IsFavorite
	if _, err := s.queries.UpdateUserFavorite(ctx, sqlc.UpdateUserFavoriteParams{
		UserID:     userID,
		ItemID:     itemID,
		IsFavorite: next,
	}); err != nil {
		return false, fmt.Errorf("update favorite: %w", err)
	}
	if next {
		s.bumpFavoriteCount(ctx, itemID, 1)
	} else {
		s.bumpFavoriteCount(ctx, itemID, -1)
	}
	return next, nil
}

// Buyers lists the users who opened chat rooms on the item. Owner only.
func (s *ItemService) Buyers(ctx context.Context, itemID, ownerID int64) ([]Buyer, error) {
	if err := s.requireOwner(ctx, itemID, ownerID); err != nil {
		return nil, err
	}
	rows, err := s.queries.ListBuyersForItem(ctx, sqlc.ListBuyersForItemParams{
		ItemID:  &itemID,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	buyers := make([]Buyer, 0, len(rows))
	for _, row := range rows {
		buyers = append(buyers, Buyer{
			ID:           row.ID,
			Name:         row.Name,
			CoverImage:   row.CoverImage,
			LastJoinedAt: row.LastJoinedAt,
		})
	}
	return buyers, nil
}

// Purchase records the sale to the given buyer and marks the item Sold.
// Owner only; the buyer must be someone else.
func (s *ItemService) Purchase(ctx context.Context, itemID, ownerID, buyerID int64) (*domain.Purchase, error) {
	if err := s.requireOwner(ctx, itemID, ownerID); err != nil {
		return nil, err
	}
	if buyerID == ownerID {
		return nil, domain.ErrSelfPurchase
	}

	row, err := s.queries.CreatePurchase(ctx, sqlc.CreatePurchaseParams{
		ItemID:   itemID,
		BuyerID:  buyerID,
		SellerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	if _, err := s.queries.UpdateItemStatus(ctx, sqlc.UpdateItemStatusParams{
		ID:         itemID,
		OwnerID:    ownerID,
		ItemStatus: string(domain.ItemStatusSold),
	}); err != nil {
		slog.Error("mark item sold", "item_id", itemID, "error", err)
	}

	return rowToPurchase(row), nil
}

func (s *ItemService) requireOwner(ctx context.Context, itemID, callerID int64) error {
	row, err := s.queries.GetItemByID(ctx, itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("get item: %w", err)
	}
	if row.OwnerID != callerID {
		return domain.ErrNotOwner
	}
	return nil
}

func (s *ItemService) withCovers(ctx context.Context, rows []sqlc.Item) ([]ItemSummary, error) {
	summaries := make([]ItemSummary, 0, len(rows))
	for _, row := range rows {
		summary := ItemSummary{Item: rowToItem(row)}
		cover, err := s.queries.GetCoverImageForItem(ctx, row.ID)
		if err == nil {
			summary.CoverKey = cover.Key
		} else if err != pgx.ErrNoRows {
			return nil, fmt.Errorf("get cover image: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// favorite_count is display data; a failed bump is logged, not surfaced.
func (s *ItemService) bumpFavoriteCount(ctx context.Context, itemID int64, delta int32) {
	if _, err := s.queries.AddItemFavoriteCount(ctx, sqlc.AddItemFavoriteCountParams{
		ID:    itemID,
		Delta: delta,
	}); err != nil {
		slog.Error("adjust favorite count", "item_id", itemID, "delta", delta, "error", err)
	}
}
