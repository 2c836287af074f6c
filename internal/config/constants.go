package config

import "time"

const (
	// Chat heartbeat
	HeartbeatInterval = 5 * time.Second
	ClientTimeout     = 10 * time.Second

	// Lobby event queue depth
	LobbyQueueSize = 256

	// Per-session outbound buffer
	SessionSendBuffer = 64

	// Websocket write deadline
	WriteWait = 10 * time.Second

	// Maximum inbound frame size (bytes)
	MaxMessageSize = 8192

	// Token lifetimes
	AccessTokenTTL = 24 * time.Hour

	// Presigned URL lifetimes
	UploadURLExpiry   = 4000 * time.Second
	DownloadURLExpiry = 200 * time.Second
)

// ItemStatuses are the valid listing states.
var ItemStatuses = []string{"Active", "Reserved", "Sold"}
