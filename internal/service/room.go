package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

type RoomService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewRoomService(db *pgxpool.Pool, queries *sqlc.Queries) *RoomService {
	return &RoomService{db: db, queries: queries}
}

// RoomSummary is one row of a user's room list.
type RoomSummary struct {
	RoomID      int64
	ItemID      *int64
	ItemTitle   string
	CoverKey    string
	LastMessage *domain.Message
	Unread      bool
}

// FindOrCreate returns the room between the caller and the other
// participant, creating it on first contact. Either side may make the
// call: the buyer names the seller and vice versa, so the lookup matches
// rooms created by whichever of the two opened the conversation. Member
// rows are written idempotently, so a re-tap on the chat button never
// duplicates them.
func (s *RoomService) FindOrCreate(ctx context.Context, itemID, callerID, secondaryUserID int64) (*domain.Room, error) {
	if _, err := s.queries.GetItemByID(ctx, itemID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	row, err := s.queries.GetRoomByItemAndCreator(ctx, sqlc.GetRoomByItemAndCreatorParams{
		ItemID:          &itemID,
		CreatedBy:       callerID,
		SecondaryUserID: secondaryUserID,
	})
	if err == nil {
		if err := s.ensureMembers(ctx, row.ID, callerID, secondaryUserID); err != nil {
			return nil, err
		}
		return rowToRoom(row), nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("get room: %w", err)
	}

	row, err = s.queries.CreateRoom(ctx, sqlc.CreateRoomParams{ItemID: &itemID, CreatedBy: callerID})
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	if err := s.ensureMembers(ctx, row.ID, callerID, secondaryUserID); err != nil {
		return nil, err
	}

	// A new conversation on the listing; the count is display data.
	if _, err := s.queries.IncrementItemMessageCount(ctx, itemID); err != nil {
		slog.Error("increment message count", "item_id", itemID, "error", err)
	}

	return rowToRoom(row), nil
}

// UserRooms lists the caller's rooms, most recently visited first, each
// with its last message and an unread flag. A message is read once it is
// the caller's own or predates their last visit to the room.
func (s *RoomService) UserRooms(ctx context.Context, userID int64) ([]RoomSummary, error) {
	memberships, err := s.queries.ListRoomMembershipsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list room memberships: %w", err)
	}

	summaries := make([]RoomSummary, 0, len(memberships))
	for _, m := range memberships {
		summary := RoomSummary{RoomID: m.RoomID, ItemID: m.ItemID}

		if m.ItemID != nil {
			itemRow, err := s.queries.GetItemByID(ctx, *m.ItemID)
			if err == nil {
				summary.ItemTitle = itemRow.Title
			} else if err != pgx.ErrNoRows {
				return nil, fmt.Errorf("get room item: %w", err)
			}
			cover, err := s.queries.GetCoverImageForItem(ctx, *m.ItemID)
			if err == nil {
				summary.CoverKey = cover.Key
			} else if err != pgx.ErrNoRows {
				return nil, fmt.Errorf("get room item cover: %w", err)
			}
		}

		last, err := s.queries.GetLastMessageForRoom(ctx, m.RoomID)
		if err == nil {
			msg := rowToMessage(last)
			summary.LastMessage = &msg
			summary.Unread = msg.SenderID != userID && msg.CreatedAt.After(m.LastJoinedAt)
		} else if err != pgx.ErrNoRows {
			return nil, fmt.Errorf("get last message: %w", err)
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Authorize checks that the room exists and the user is a member of it.
func (s *RoomService) Authorize(ctx context.Context, roomID, userID int64) error {
	if _, err := s.queries.GetRoomByID(ctx, roomID); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("get room: %w", err)
	}
	if _, err := s.queries.GetRoomMember(ctx, sqlc.GetRoomMemberParams{RoomID: roomID, MemberID: userID}); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotRoomMember
		}
		return fmt.Errorf("get room member: %w", err)
	}
	return nil
}

// MarkJoined stamps the member's last visit, which drives the unread flag.
func (s *RoomService) MarkJoined(ctx context.Context, roomID, userID int64) error {
	if _, err := s.queries.SetLastJoinedAt(ctx, sqlc.SetLastJoinedAtParams{
		RoomID:       roomID,
		MemberID:     userID,
		LastJoinedAt: time.Now(),
	}); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotRoomMember
		}
		return fmt.Errorf("set last joined at: %w", err)
	}
	return nil
}

func (s *RoomService) ensureMembers(ctx context.Context, roomID int64, memberIDs ...int64) error {
	for _, id := range memberIDs {
		if _, err := s.queries.UpsertRoomMember(ctx, sqlc.UpsertRoomMemberParams{
			RoomID:   roomID,
			MemberID: id,
		}); err != nil {
			return fmt.Errorf("upsert room member %d: %w", id, err)
		}
	}
	return nil
}
