package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aurelle-app/aurelle/internal/config"
	"github.com/aurelle-app/aurelle/internal/domain"
)

// ErrLobbyClosed is returned by Connect when the lobby is not running.
var ErrLobbyClosed = errors.New("lobby closed")

// createdAtLayout matches the timestamp format the clients already parse.
const createdAtLayout = "2006-01-02 15:04:05.000"

// MessageStore is the persistence gateway the lobby calls. All calls are
// synchronous; the lobby treats every failure as non-fatal.
type MessageStore interface {
	MessagesForRoom(ctx context.Context, roomID int64) ([]domain.Message, error)
	InsertMessage(ctx context.Context, roomID, senderID int64, senderName, body string, at time.Time) (domain.Message, error)
	SetLastJoinedAt(ctx context.Context, roomID, userID int64, at time.Time) error
}

// sessionEntry is the registered address of a user's live session and the
// room it joined through.
type sessionEntry struct {
	sink   Sink
	roomID int64
}

// Lobby is the room registry: the single owner of the session and room
// maps. All mutations happen on the goroutine running Run, which drains
// the event channel in arrival order. Other goroutines only ever enqueue.
type Lobby struct {
	store  MessageStore
	events chan interface{}
	done   chan struct{}

	// Owned by the Run goroutine. Never touched from outside.
	sessions map[int64]sessionEntry
	rooms    map[int64]map[int64]struct{}

	now func() time.Time
}

func NewLobby(store MessageStore) *Lobby {
	return &Lobby{
		store:    store,
		events:   make(chan interface{}, config.LobbyQueueSize),
		done:     make(chan struct{}),
		sessions: make(map[int64]sessionEntry),
		rooms:    make(map[int64]map[int64]struct{}),
		now:      time.Now,
	}
}

// Run drains the event queue until ctx is canceled. It must be called
// exactly once.
func (l *Lobby) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-l.events:
			switch e := ev.(type) {
			case connectEvent:
				l.handleConnect(ctx, e)
				close(e.done)
			case disconnectEvent:
				l.handleDisconnect(e)
			case clientMessageEvent:
				l.handleClientMessage(ctx, e)
			}
		}
	}
}

// Connect registers a sink for the user in the room and blocks until the
// lobby has processed the registration (the only acknowledged call).
func (l *Lobby) Connect(ctx context.Context, userID, roomID int64, sink Sink) error {
	ev := connectEvent{userID: userID, roomID: roomID, sink: sink, done: make(chan struct{})}
	select {
	case l.events <- ev:
	case <-l.done:
		return ErrLobbyClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ev.done:
		return nil
	case <-l.done:
		return ErrLobbyClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Disconnect removes the user from the room. The sink identifies the
// session making the call so a stale disconnect from an evicted session
// cannot unregister its replacement. Fire-and-forget.
func (l *Lobby) Disconnect(userID, roomID int64, sink Sink) {
	select {
	case l.events <- disconnectEvent{userID: userID, roomID: roomID, sink: sink}:
	case <-l.done:
	}
}

// ClientMessage forwards a parsed client frame into the lobby.
// Fire-and-forget.
func (l *Lobby) ClientMessage(userID int64, userName string, roomID int64, frame ClientFrame) {
	select {
	case l.events <- clientMessageEvent{userID: userID, userName: userName, roomID: roomID, frame: frame}:
	case <-l.done:
	}
}

func (l *Lobby) handleConnect(ctx context.Context, ev connectEvent) {
	members, ok := l.rooms[ev.roomID]
	if !ok {
		members = make(map[int64]struct{})
		l.rooms[ev.roomID] = members
	}
	members[ev.userID] = struct{}{}

	// Plain text frame, not JSON. Kept for client compatibility.
	l.sendToRoom(ev.roomID, fmt.Sprintf("new user is connected: %d", ev.userID), &ev.userID)

	// Last writer wins; the superseded session is closed so it cannot
	// linger with an unregistered address. When it sat in another room,
	// the user leaves that room here rather than when the evicted
	// session's own Disconnect trickles in.
	if old, ok := l.sessions[ev.userID]; ok && old.sink != ev.sink {
		old.sink.Close()
		if old.roomID != ev.roomID {
			l.removeFromRoom(ev.userID, old.roomID)
		}
	}
	l.sessions[ev.userID] = sessionEntry{sink: ev.sink, roomID: ev.roomID}

	msgs, err := l.store.MessagesForRoom(ctx, ev.roomID)
	if err != nil {
		slog.Error("fetch room history", "room_id", ev.roomID, "user_id", ev.userID, "error", err)
		return
	}
	envelope := ServerEnvelope{Messages: make([]ServerMessage, 0, len(msgs))}
	for _, m := range msgs {
		envelope.Messages = append(envelope.Messages, ServerMessage{
			Message:    m.Body,
			SenderName: m.SenderName,
			SenderID:   m.SenderID,
			CreatedAt:  m.CreatedAt.UTC().Format(createdAtLayout),
		})
	}
	l.sendTo(ev.userID, mustMarshal(envelope))
}

func (l *Lobby) handleDisconnect(ev disconnectEvent) {
	// A session evicted by a newer connection still fires Disconnect on
	// its way out; its room departure was already handled at eviction, so
	// ignore it and keep the replacement registered.
	if current, ok := l.sessions[ev.userID]; ok && ev.sink != nil && current.sink != ev.sink {
		return
	}
	delete(l.sessions, ev.userID)
	l.removeFromRoom(ev.userID, ev.roomID)
}

// removeFromRoom announces the departure to the remaining members and
// drops the membership, collecting the room when it empties.
func (l *Lobby) removeFromRoom(userID, roomID int64) {
	l.sendToRoom(roomID, fmt.Sprintf("user is disconnected: %d", userID), &userID)

	if members, ok := l.rooms[roomID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(l.rooms, roomID)
		}
	}
}

func (l *Lobby) handleClientMessage(ctx context.Context, ev clientMessageEvent) {
	switch ev.frame.MessageType {
	case ClientMessageTypeClosed:
		if err := l.store.SetLastJoinedAt(ctx, ev.roomID, ev.userID, l.now()); err != nil {
			slog.Error("set last joined at", "room_id", ev.roomID, "user_id", ev.userID, "error", err)
		}
	case ClientMessageTypeEditing, ClientMessageTypeMessageDelete:
		// Accepted but unhandled.
	case ClientMessageTypeMessage:
		l.broadcastText(ctx, ev)
	default:
		slog.Warn("unknown client message type", "type", ev.frame.MessageType, "user_id", ev.userID)
	}
}

func (l *Lobby) broadcastText(ctx context.Context, ev clientMessageEvent) {
	// One timestamp for both the broadcast and the insert, so what clients
	// see live matches what history returns after a reconnect.
	at := l.now()
	envelope := ServerEnvelope{Messages: []ServerMessage{{
		Message:    ev.frame.Message,
		SenderName: ev.userName,
		SenderID:   ev.userID,
		CreatedAt:  at.UTC().Format(createdAtLayout),
	}}}
	l.sendToRoom(ev.roomID, mustMarshal(envelope), nil)

	if _, err := l.store.InsertMessage(ctx, ev.roomID, ev.userID, ev.userName, ev.frame.Message, at); err != nil {
		slog.Error("persist message", "room_id", ev.roomID, "sender_id", ev.userID, "error", err)
	}
}

// sendToRoom delivers a frame to every connected member of the room,
// skipping skipID when non-nil. Members without a registered sink are
// silently skipped.
func (l *Lobby) sendToRoom(roomID int64, frame string, skipID *int64) {
	for id := range l.rooms[roomID] {
		if skipID != nil && *skipID == id {
			continue
		}
		if entry, ok := l.sessions[id]; ok {
			entry.sink.Send(frame)
		}
	}
}

func (l *Lobby) sendTo(userID int64, frame string) {
	if entry, ok := l.sessions[userID]; ok {
		entry.sink.Send(frame)
	}
}

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Envelope types contain nothing unmarshalable.
		panic(err)
	}
	return string(b)
}
