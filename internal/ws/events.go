package ws

// ClientMessageType tags an inbound client frame.
type ClientMessageType string

const (
	ClientMessageTypeMessage       ClientMessageType = "Message"
	ClientMessageTypeClosed        ClientMessageType = "Closed"
	ClientMessageTypeEditing       ClientMessageType = "Editing"
	ClientMessageTypeMessageDelete ClientMessageType = "MessageDelete"
)

// ClientFrame is the JSON payload clients write on the socket.
type ClientFrame struct {
	MessageType ClientMessageType `json:"messageType"`
	Message     string            `json:"message"`
}

// ServerMessage is one chat message as delivered to clients. CreatedAt is
// pre-formatted so history and live broadcasts serialize identically.
type ServerMessage struct {
	Message    string `json:"message"`
	SenderName string `json:"senderName"`
	SenderID   int64  `json:"senderId"`
	CreatedAt  string `json:"createdAt"`
}

// ServerEnvelope wraps one or more messages. The history batch sent on
// connect and every live broadcast share this shape.
type ServerEnvelope struct {
	Messages []ServerMessage `json:"messages"`
}

// Sink is an addressable handle used to push a serialized frame to one
// connected client. Send is best-effort: it reports false when the frame
// was dropped because the receiver is gone or its buffer is full.
type Sink interface {
	Send(frame string) bool
	Close()
}

type connectEvent struct {
	userID int64
	roomID int64
	sink   Sink
	done   chan struct{}
}

type disconnectEvent struct {
	userID int64
	roomID int64
	sink   Sink
}

type clientMessageEvent struct {
	userID   int64
	userName string
	roomID   int64
	frame    ClientFrame
}
