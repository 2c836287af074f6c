package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// recorderRegistry stands in for the lobby so session behavior can be
// observed without running one.
type recorderRegistry struct {
	mu          sync.Mutex
	connected   bool
	disconnects int
	frames      []ClientFrame
	frameCh     chan ClientFrame
	connectErr  error
}

func newRecorderRegistry() *recorderRegistry {
	return &recorderRegistry{frameCh: make(chan ClientFrame, 8)}
}

func (r *recorderRegistry) Connect(_ context.Context, _, _ int64, _ Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.connectErr != nil {
		return r.connectErr
	}
	r.connected = true
	return nil
}

func (r *recorderRegistry) Disconnect(_, _ int64, _ Sink) {
	r.mu.Lock()
	r.disconnects++
	r.mu.Unlock()
}

func (r *recorderRegistry) ClientMessage(_ int64, _ string, _ int64, frame ClientFrame) {
	r.mu.Lock()
	r.frames = append(r.frames, frame)
	r.mu.Unlock()
	select {
	case r.frameCh <- frame:
	default:
	}
}

func (r *recorderRegistry) disconnectCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disconnects
}

var upgrader = websocket.Upgrader{}

// startSession upgrades one connection and runs a session over it.
func startSession(t *testing.T, registry Registry) (*websocket.Conn, chan struct{}) {
	t.Helper()
	sessionDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		sess := NewSession(conn, registry, 1, "ann", 7)
		sess.Run(req.Context())
		close(sessionDone)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, sessionDone
}

func TestSessionForwardsFrames(t *testing.T) {
	registry := newRecorderRegistry()
	client, _ := startSession(t, registry)

	err := client.WriteMessage(websocket.TextMessage, []byte(`{"messageType":"Message","message":"hello"}`))
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case frame := <-registry.frameCh:
		if frame.MessageType != ClientMessageTypeMessage || frame.Message != "hello" {
			t.Fatalf("forwarded frame = %+v", frame)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame never reached the registry")
	}
}

func TestSessionStopsOnMalformedFrame(t *testing.T) {
	registry := newRecorderRegistry()
	client, sessionDone := startSession(t, registry)

	if err := client.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop on malformed input")
	}
	if got := registry.disconnectCount(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
}

func TestSessionReportsOrderlyClose(t *testing.T) {
	registry := newRecorderRegistry()
	client, sessionDone := startSession(t, registry)

	deadline := time.Now().Add(time.Second)
	err := client.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	if err != nil {
		t.Fatalf("write close: %v", err)
	}

	select {
	case frame := <-registry.frameCh:
		if frame.MessageType != ClientMessageTypeClosed {
			t.Fatalf("frame on close = %+v, want Closed", frame)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("close was not reported to the registry")
	}
	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after close frame")
	}
}

func TestSessionDeliversQueuedFrames(t *testing.T) {
	registry := newRecorderRegistry()
	sinkCh := make(chan Sink, 1)
	sessionDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		sess := NewSession(conn, registry, 1, "ann", 7)
		sinkCh <- sess
		sess.Run(req.Context())
		close(sessionDone)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	sink := <-sinkCh
	if !sink.Send("queued frame") {
		t.Fatal("Send refused a frame on a live session")
	}

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "queued frame" {
		t.Fatalf("received %q", data)
	}

	// Closing the sink ends the session with a close frame.
	sink.Close()
	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after Close")
	}
}

// startTimedSession is startSession with a compressed heartbeat so the
// timeout path finishes inside a test run.
func startTimedSession(t *testing.T, registry Registry, interval, timeout time.Duration) (*websocket.Conn, chan struct{}) {
	t.Helper()
	sessionDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		sess := NewSession(conn, registry, 1, "ann", 7)
		sess.heartbeatInterval = interval
		sess.clientTimeout = timeout
		sess.Run(req.Context())
		close(sessionDone)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, sessionDone
}

func TestSessionTimesOutSilentPeer(t *testing.T) {
	registry := newRecorderRegistry()
	// The client never reads, so its transport never answers the pings.
	_, sessionDone := startTimedSession(t, registry, 20*time.Millisecond, 120*time.Millisecond)

	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("session outlived the heartbeat timeout")
	}
	if got := registry.disconnectCount(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
}

func TestSessionTimesOutWithoutPongsDespiteTraffic(t *testing.T) {
	registry := newRecorderRegistry()
	client, sessionDone := startTimedSession(t, registry, 20*time.Millisecond, 120*time.Millisecond)

	// Keep valid frames flowing without ever reading, so pongs are never
	// sent. Data alone must not keep the session alive.
	go func() {
		for {
			select {
			case <-sessionDone:
				return
			case <-time.After(25 * time.Millisecond):
				if err := client.WriteMessage(websocket.TextMessage, []byte(`{"messageType":"Editing","message":""}`)); err != nil {
					return
				}
			}
		}
	}()

	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("inbound data frames kept the session alive past the timeout")
	}
	if got := registry.disconnectCount(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
}

func TestSessionStopsWhenConnectFails(t *testing.T) {
	registry := newRecorderRegistry()
	registry.connectErr = ErrLobbyClosed
	_, sessionDone := startSession(t, registry)

	select {
	case <-sessionDone:
	case <-time.After(2 * time.Second):
		t.Fatal("session kept running after a failed connect")
	}
	if got := registry.disconnectCount(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
}
