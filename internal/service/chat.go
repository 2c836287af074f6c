package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

// ChatStore is the persistence gateway the chat lobby calls. It satisfies
// ws.MessageStore.
type ChatStore struct {
	queries *sqlc.Queries
}

func NewChatStore(queries *sqlc.Queries) *ChatStore {
	return &ChatStore{queries: queries}
}

func (s *ChatStore) MessagesForRoom(ctx context.Context, roomID int64) ([]domain.Message, error) {
	rows, err := s.queries.ListMessagesForRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, rowToMessage(row))
	}
	return messages, nil
}

func (s *ChatStore) InsertMessage(ctx context.Context, roomID, senderID int64, senderName, body string, at time.Time) (domain.Message, error) {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		RoomID:     roomID,
		SenderID:   senderID,
		SenderName: senderName,
		Msg:        body,
		CreatedAt:  at,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("create message: %w", err)
	}
	return rowToMessage(row), nil
}

func (s *ChatStore) SetLastJoinedAt(ctx context.Context, roomID, userID int64, at time.Time) error {
	if _, err := s.queries.SetLastJoinedAt(ctx, sqlc.SetLastJoinedAtParams{
		RoomID:       roomID,
		MemberID:     userID,
		LastJoinedAt: at,
	}); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotRoomMember
		}
		return fmt.Errorf("set last joined at: %w", err)
	}
	return nil
}
