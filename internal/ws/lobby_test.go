package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aurelle-app/aurelle/internal/domain"
)

type fakeStore struct {
	history    map[int64][]domain.Message
	historyErr error

	inserted []domain.Message
	visits   map[string]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		history: make(map[int64][]domain.Message),
		visits:  make(map[string]time.Time),
	}
}

func (s *fakeStore) MessagesForRoom(_ context.Context, roomID int64) ([]domain.Message, error) {
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return s.history[roomID], nil
}

func (s *fakeStore) InsertMessage(_ context.Context, roomID, senderID int64, senderName, body string, at time.Time) (domain.Message, error) {
	m := domain.Message{
		ID:         int64(len(s.inserted) + 1),
		RoomID:     roomID,
		SenderID:   senderID,
		SenderName: senderName,
		Body:       body,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	s.inserted = append(s.inserted, m)
	return m, nil
}

func (s *fakeStore) SetLastJoinedAt(_ context.Context, roomID, userID int64, at time.Time) error {
	s.visits[fmt.Sprintf("%d/%d", roomID, userID)] = at
	return nil
}

// recorderSink collects every frame the lobby pushes at it.
type recorderSink struct {
	frames []string
	closed bool
}

func (r *recorderSink) Send(frame string) bool {
	r.frames = append(r.frames, frame)
	return true
}

func (r *recorderSink) Close() { r.closed = true }

func connect(t *testing.T, l *Lobby, userID, roomID int64, sink Sink) {
	t.Helper()
	l.handleConnect(context.Background(), connectEvent{userID: userID, roomID: roomID, sink: sink, done: make(chan struct{})})
}

func TestConnectDeliversHistoryToJoinerOnly(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.history[7] = []domain.Message{
		{RoomID: 7, SenderID: 1, SenderName: "ann", Body: "first", CreatedAt: base},
		{RoomID: 7, SenderID: 2, SenderName: "bob", Body: "second", CreatedAt: base.Add(time.Minute)},
	}

	l := NewLobby(store)
	ann := &recorderSink{}
	bob := &recorderSink{}
	connect(t, l, 1, 7, ann)
	connect(t, l, 2, 7, bob)

	// Ann got nothing on her own connect (empty room, no one to notify her
	// join) except the history envelope.
	var env ServerEnvelope
	if err := json.Unmarshal([]byte(ann.frames[0]), &env); err != nil {
		t.Fatalf("ann frame 0 not an envelope: %v", err)
	}
	if len(env.Messages) != 2 {
		t.Fatalf("history length = %d, want 2", len(env.Messages))
	}
	if env.Messages[0].Message != "first" || env.Messages[1].Message != "second" {
		t.Fatalf("history out of order: %+v", env.Messages)
	}
	if got, want := env.Messages[0].CreatedAt, "2024-03-01 12:00:00.000"; got != want {
		t.Fatalf("createdAt = %q, want %q", got, want)
	}

	// Bob's connect notified ann in plain text, then sent bob the history.
	if got, want := ann.frames[1], "new user is connected: 2"; got != want {
		t.Fatalf("join notice = %q, want %q", got, want)
	}
	if err := json.Unmarshal([]byte(bob.frames[0]), &env); err != nil {
		t.Fatalf("bob frame 0 not an envelope: %v", err)
	}
	if len(bob.frames) != 1 {
		t.Fatalf("bob received %d frames, want 1", len(bob.frames))
	}
}

func TestConnectHistoryErrorSkipsReplay(t *testing.T) {
	store := newFakeStore()
	store.historyErr = errors.New("db down")
	l := NewLobby(store)

	sink := &recorderSink{}
	connect(t, l, 1, 5, sink)

	if len(sink.frames) != 0 {
		t.Fatalf("frames = %v, want none", sink.frames)
	}
	// The member is still registered; broadcasts keep working.
	other := &recorderSink{}
	store.historyErr = nil
	connect(t, l, 2, 5, other)
	if got, want := sink.frames[0], "new user is connected: 2"; got != want {
		t.Fatalf("join notice = %q, want %q", got, want)
	}
}

func TestBroadcastStaysInsideRoom(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	ann := &recorderSink{}
	bob := &recorderSink{}
	eve := &recorderSink{}
	connect(t, l, 1, 7, ann)
	connect(t, l, 2, 7, bob)
	connect(t, l, 3, 8, eve)

	l.handleClientMessage(context.Background(), clientMessageEvent{
		userID: 1, userName: "ann", roomID: 7,
		frame: ClientFrame{MessageType: ClientMessageTypeMessage, Message: "hello"},
	})

	// Both room members receive the broadcast, the sender included.
	var env ServerEnvelope
	if err := json.Unmarshal([]byte(ann.frames[len(ann.frames)-1]), &env); err != nil {
		t.Fatalf("ann did not get the broadcast: %v", err)
	}
	if env.Messages[0].Message != "hello" || env.Messages[0].SenderID != 1 || env.Messages[0].SenderName != "ann" {
		t.Fatalf("broadcast = %+v", env.Messages[0])
	}
	if err := json.Unmarshal([]byte(bob.frames[len(bob.frames)-1]), &env); err != nil {
		t.Fatalf("bob did not get the broadcast: %v", err)
	}

	// Room 8 never sees room 7 traffic.
	for _, f := range eve.frames {
		if f != "" && f[0] == '{' {
			var got ServerEnvelope
			if json.Unmarshal([]byte(f), &got) == nil && len(got.Messages) > 0 && got.Messages[0].Message == "hello" {
				t.Fatalf("room 8 received room 7 broadcast")
			}
		}
	}

	// Persisted with the same timestamp the broadcast carried.
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d messages, want 1", len(store.inserted))
	}
	if !store.inserted[0].CreatedAt.Equal(fixed) {
		t.Fatalf("insert timestamp %v, want %v", store.inserted[0].CreatedAt, fixed)
	}
	if got, want := env.Messages[0].CreatedAt, "2024-03-01 09:30:00.000"; got != want {
		t.Fatalf("broadcast createdAt = %q, want %q", got, want)
	}
}

func TestReconnectEvictsOldSession(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)

	old := &recorderSink{}
	connect(t, l, 1, 7, old)
	replacement := &recorderSink{}
	connect(t, l, 1, 7, replacement)

	if !old.closed {
		t.Fatal("superseded session was not closed")
	}

	// The evicted session's disconnect must not unregister the new one.
	l.handleDisconnect(disconnectEvent{userID: 1, roomID: 7, sink: old})
	if got := l.sessions[1].sink; got != replacement {
		t.Fatalf("session registry holds %v, want replacement", got)
	}

	l.handleClientMessage(context.Background(), clientMessageEvent{
		userID: 1, userName: "ann", roomID: 7,
		frame: ClientFrame{MessageType: ClientMessageTypeMessage, Message: "still here"},
	})
	last := replacement.frames[len(replacement.frames)-1]
	var env ServerEnvelope
	if err := json.Unmarshal([]byte(last), &env); err != nil || env.Messages[0].Message != "still here" {
		t.Fatalf("replacement did not receive broadcast, last frame %q", last)
	}
}

func TestReconnectToOtherRoomLeavesOldRoom(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)

	ann := &recorderSink{}
	old := &recorderSink{}
	connect(t, l, 2, 7, ann)
	connect(t, l, 1, 7, old)

	// User 1 moves to room 8; the room-7 session is evicted and its
	// Disconnect arrives late, as it does when the old socket winds down.
	current := &recorderSink{}
	connect(t, l, 1, 8, current)
	l.handleDisconnect(disconnectEvent{userID: 1, roomID: 7, sink: old})

	if _, ok := l.rooms[7][1]; ok {
		t.Fatal("user 1 still a member of room 7 after moving to room 8")
	}
	if got, want := ann.frames[len(ann.frames)-1], "user is disconnected: 1"; got != want {
		t.Fatalf("leave notice = %q, want %q", got, want)
	}
	if got := l.sessions[1].sink; got != current {
		t.Fatalf("session registry holds %v, want the room-8 session", got)
	}

	// Room 7 traffic must not reach the room-8 session.
	currentFrames := len(current.frames)
	l.handleClientMessage(context.Background(), clientMessageEvent{
		userID: 2, userName: "ann", roomID: 7,
		frame: ClientFrame{MessageType: ClientMessageTypeMessage, Message: "room7 secret"},
	})
	if len(current.frames) != currentFrames {
		t.Fatalf("room 7 broadcast delivered to the room-8 session: %q", current.frames[len(current.frames)-1])
	}
}

func TestDisconnectNotifiesAndCollectsEmptyRoom(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)

	ann := &recorderSink{}
	bob := &recorderSink{}
	connect(t, l, 1, 7, ann)
	connect(t, l, 2, 7, bob)

	l.handleDisconnect(disconnectEvent{userID: 2, roomID: 7, sink: bob})
	if got, want := ann.frames[len(ann.frames)-1], "user is disconnected: 2"; got != want {
		t.Fatalf("leave notice = %q, want %q", got, want)
	}
	if _, ok := l.rooms[7]; !ok {
		t.Fatal("room dropped while a member remains")
	}

	l.handleDisconnect(disconnectEvent{userID: 1, roomID: 7, sink: ann})
	if _, ok := l.rooms[7]; ok {
		t.Fatal("empty room was not collected")
	}
	if len(l.sessions) != 0 {
		t.Fatalf("sessions left registered: %v", l.sessions)
	}
}

func TestClosedFrameRecordsVisit(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)
	fixed := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	sink := &recorderSink{}
	connect(t, l, 1, 7, sink)
	l.handleClientMessage(context.Background(), clientMessageEvent{
		userID: 1, roomID: 7,
		frame: ClientFrame{MessageType: ClientMessageTypeClosed},
	})

	got, ok := store.visits["7/1"]
	if !ok {
		t.Fatal("visit was not recorded")
	}
	if !got.Equal(fixed) {
		t.Fatalf("visit time %v, want %v", got, fixed)
	}
}

func TestEditingAndDeleteAreAccepted(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)

	ann := &recorderSink{}
	bob := &recorderSink{}
	connect(t, l, 1, 7, ann)
	connect(t, l, 2, 7, bob)
	annFrames, bobFrames := len(ann.frames), len(bob.frames)

	for _, mt := range []ClientMessageType{ClientMessageTypeEditing, ClientMessageTypeMessageDelete} {
		l.handleClientMessage(context.Background(), clientMessageEvent{
			userID: 1, userName: "ann", roomID: 7,
			frame: ClientFrame{MessageType: mt, Message: "x"},
		})
	}

	if len(ann.frames) != annFrames || len(bob.frames) != bobFrames {
		t.Fatal("no-op frame types produced output")
	}
	if len(store.inserted) != 0 {
		t.Fatal("no-op frame types were persisted")
	}
}

func TestConnectAfterShutdownFails(t *testing.T) {
	l := NewLobby(newFakeStore())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	if err := l.Connect(context.Background(), 1, 7, &recorderSink{}); !errors.Is(err, ErrLobbyClosed) {
		t.Fatalf("Connect after shutdown = %v, want ErrLobbyClosed", err)
	}
}

func TestLobbyEndToEnd(t *testing.T) {
	store := newFakeStore()
	l := NewLobby(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	sink := &chanSink{frames: make(chan string, 8)}
	if err := l.Connect(context.Background(), 1, 7, sink); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	// Drain the (empty) history envelope sent on connect.
	select {
	case <-sink.frames:
	case <-time.After(2 * time.Second):
		t.Fatal("history envelope never arrived")
	}

	l.ClientMessage(1, "ann", 7, ClientFrame{MessageType: ClientMessageTypeMessage, Message: "hi"})

	select {
	case f := <-sink.frames:
		var env ServerEnvelope
		if err := json.Unmarshal([]byte(f), &env); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if env.Messages[0].Message != "hi" {
			t.Fatalf("broadcast = %+v", env.Messages[0])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast never arrived")
	}
}

type chanSink struct {
	frames chan string
}

func (c *chanSink) Send(frame string) bool {
	select {
	case c.frames <- frame:
		return true
	default:
		return false
	}
}

func (c *chanSink) Close() {}
