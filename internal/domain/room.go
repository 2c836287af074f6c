package domain

import "time"

type Room struct {
	ID        int64
	ItemID    *int64
	CreatedBy int64
	CreatedAt time.Time
}

type RoomMember struct {
	ID           int64
	RoomID       int64
	MemberID     int64
	CreatedAt    time.Time
	LastJoinedAt time.Time
}

// RoomMembership is one row of a user's room list joined with the room.
type RoomMembership struct {
	RoomID       int64
	ItemID       *int64
	MemberID     int64
	LastJoinedAt time.Time
}

type Message struct {
	ID         int64
	RoomID     int64
	SenderID   int64
	SenderName string
	Body       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
