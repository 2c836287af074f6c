package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aurelle-app/aurelle/internal/config"
)

// Registry is the subset of the lobby a session talks to.
type Registry interface {
	Connect(ctx context.Context, userID, roomID int64, sink Sink) error
	Disconnect(userID, roomID int64, sink Sink)
	ClientMessage(userID int64, userName string, roomID int64, frame ClientFrame)
}

// Session owns one websocket connection: its read loop, write loop and
// heartbeat. It implements Sink so the lobby can address it directly.
type Session struct {
	conn     *websocket.Conn
	registry Registry
	userID   int64
	userName string
	roomID   int64

	send      chan string
	done      chan struct{}
	closeOnce sync.Once

	// Heartbeat cadence. Fixed in production, shortened in tests.
	heartbeatInterval time.Duration
	clientTimeout     time.Duration
}

func NewSession(conn *websocket.Conn, registry Registry, userID int64, userName string, roomID int64) *Session {
	return &Session{
		conn:              conn,
		registry:          registry,
		userID:            userID,
		userName:          userName,
		roomID:            roomID,
		send:              make(chan string, config.SessionSendBuffer),
		done:              make(chan struct{}),
		heartbeatInterval: config.HeartbeatInterval,
		clientTimeout:     config.ClientTimeout,
	}
}

// Send queues an outbound frame. Best-effort: frames are dropped when the
// session is stopping or its buffer is full.
func (s *Session) Send(frame string) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

// Close asks the session to stop. Safe to call from any goroutine.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Run registers with the lobby, then pumps the connection until it closes.
// Whatever path ends the session, the lobby is told exactly once.
func (s *Session) Run(ctx context.Context) {
	defer s.conn.Close()
	defer s.registry.Disconnect(s.userID, s.roomID, s)

	if err := s.registry.Connect(ctx, s.userID, s.roomID, s); err != nil {
		slog.Warn("lobby connect failed", "user_id", s.userID, "room_id", s.roomID, "error", err)
		return
	}

	go s.writePump(ctx)
	s.readPump()
	s.Close()
}

// readPump drains inbound frames. The read deadline doubles as the
// heartbeat timeout and is pushed forward only when the peer answers the
// ping cycle: a client that keeps sending data but never pongs is still
// timed out after clientTimeout.
func (s *Session) readPump() {
	s.conn.SetReadLimit(config.MaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.clientTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.clientTimeout))
	})
	s.conn.SetPingHandler(func(appData string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.clientTimeout))
		return s.conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(config.WriteWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				// Orderly close: let the lobby record the visit so unread
				// state is computed from this moment.
				s.registry.ClientMessage(s.userID, s.userName, s.roomID, ClientFrame{MessageType: ClientMessageTypeClosed})
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.MessageType == "" {
			// Fail closed on anything that does not parse.
			slog.Warn("malformed client frame", "user_id", s.userID, "room_id", s.roomID)
			return
		}
		s.registry.ClientMessage(s.userID, s.userName, s.roomID, frame)
	}
}

// writePump writes queued frames and pings the peer on a fixed interval.
// Frames arrive already serialized; they are written verbatim.
func (s *Session) writePump(ctx context.Context) {
	ticker := time.NewTicker(s.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				s.Close()
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(config.WriteWait)); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(config.WriteWait))
			s.conn.Close()
			return
		case <-ctx.Done():
			s.Close()
			return
		}
	}
}
