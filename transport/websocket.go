package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader is shared across connections; CheckOrigin is permissive
// because this channel is opaque framing for a host process, not a
// browser-facing API surface with CSRF concerns of its own.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  64 * 1024,
	WriteBufferSize: 64 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wireChunk is the JSON wire shape of a Chunk frame.
type wireChunk struct {
	SessionID string         `json:"session_id"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Bytes     []byte         `json:"bytes"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// WebSocketTransport is a concrete duplex binding for the chunked
// channel when the host environment is a standalone process rather
// than a browser extension message port: one gorilla/websocket
// connection carries chunk frames as JSON text messages, handed to a
// Reassembler exactly as any other transport would.
type WebSocketTransport struct {
	conn *websocket.Conn
}

// UpgradeWebSocketTransport upgrades an HTTP request to a WebSocket
// connection and wraps it as a WebSocketTransport.
func UpgradeWebSocketTransport(w http.ResponseWriter, r *http.Request) (*WebSocketTransport, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: websocket upgrade: %w", err)
	}
	return &WebSocketTransport{conn: conn}, nil
}

// DialWebSocketTransport connects to a WebSocketTransport endpoint as
// a client.
func DialWebSocketTransport(url string) (*WebSocketTransport, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: websocket dial: %w", err)
	}
	return &WebSocketTransport{conn: conn}, nil
}

// ReadChunk blocks for the next chunk frame on the connection.
func (t *WebSocketTransport) ReadChunk() (Chunk, error) {
	var wc wireChunk
	if err := t.conn.ReadJSON(&wc); err != nil {
		return Chunk{}, fmt.Errorf("transport: read chunk: %w", err)
	}
	return Chunk{
		SessionID: wc.SessionID,
		Index:     wc.Index,
		Total:     wc.Total,
		Bytes:     wc.Bytes,
		Metadata:  wc.Metadata,
	}, nil
}

// WriteChunk sends a chunk frame on the connection.
func (t *WebSocketTransport) WriteChunk(c Chunk) error {
	wc := wireChunk{
		SessionID: c.SessionID,
		Index:     c.Index,
		Total:     c.Total,
		Bytes:     c.Bytes,
		Metadata:  c.Metadata,
	}
	data, err := json.Marshal(wc)
	if err != nil {
		return fmt.Errorf("transport: marshal chunk: %w", err)
	}
	if err := t.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("transport: write chunk: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (t *WebSocketTransport) Close() error {
	return t.conn.Close()
}
