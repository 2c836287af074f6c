package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

// ObjectPresigner hands out short-lived object storage URLs.
type ObjectPresigner interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// DocumentService tracks image uploads. Clients PUT the bytes straight to
// object storage against a presigned URL; the database only ever holds keys.
type DocumentService struct {
	db        *pgxpool.Pool
	queries   *sqlc.Queries
	presigner ObjectPresigner
}

func NewDocumentService(db *pgxpool.Pool, queries *sqlc.Queries, presigner ObjectPresigner) *DocumentService {
	return &DocumentService{db: db, queries: queries, presigner: presigner}
}

// ItemDocument pairs a pending image row with the URL its bytes go to.
type ItemDocument struct {
	ID        int64
	Key       string
	IsCover   bool
	UploadURL string
}

// CreateItemDocuments registers count pending images on the item and
// returns a presigned upload URL for each. The first image becomes the
// cover when the item has none yet. Owner only.
func (s *DocumentService) CreateItemDocuments(ctx context.Context, userID, itemID int64, count int) ([]ItemDocument, error) {
	itemRow, err := s.queries.GetItemByID(ctx, itemID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if itemRow.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}

	hasCover := true
	if _, err := s.queries.GetCoverImageForItem(ctx, itemID); err != nil {
		if err != pgx.ErrNoRows {
			return nil, fmt.Errorf("get cover image: %w", err)
		}
		hasCover = false
	}

	docs := make([]ItemDocument, 0, count)
	for i := 0; i < count; i++ {
		key := fmt.Sprintf("item/%d/%s", itemID, uuid.NewString())
		isCover := !hasCover && i == 0

		row, err := s.queries.CreateItemImage(ctx, sqlc.CreateItemImageParams{
			Key:     key,
			ItemID:  itemID,
			UserID:  userID,
			IsCover: isCover,
		})
		if err != nil {
			return nil, fmt.Errorf("create item image: %w", err)
		}

		url, err := s.presigner.PresignUpload(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("presign upload: %w", err)
		}

		docs = append(docs, ItemDocument{ID: row.ID, Key: key, IsCover: isCover, UploadURL: url})
	}
	return docs, nil
}

// MarkUploaded flips the given images to uploaded once the client reports
// the PUTs finished. The update is scoped to the caller's own rows, so ids
// belonging to someone else are silently skipped.
func (s *DocumentService) MarkUploaded(ctx context.Context, userID int64, imageIDs []int64) error {
	rows, err := s.queries.MarkItemImagesUploaded(ctx, sqlc.MarkItemImagesUploadedParams{
		Ids:    imageIDs,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("mark images uploaded: %w", err)
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// AvatarUploadURL mints a fresh object key for the user's avatar and a
// presigned PUT for it. The client reports the key back via profile update.
func (s *DocumentService) AvatarUploadURL(ctx context.Context, userID int64) (string, string, error) {
	key := fmt.Sprintf("avatar/%d/%s", userID, uuid.NewString())
	url, err := s.presigner.PresignUpload(ctx, key)
	if err != nil {
		return "", "", fmt.Errorf("presign avatar upload: %w", err)
	}
	return key, url, nil
}
