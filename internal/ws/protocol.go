package ws

import (
	"encoding/json"
	"fmt"
)

// Supported WebSocket subprotocols.
const (
	ProtocolJSON     = "json.relay.v1"
	ProtocolProtobuf = "protobuf.relay.v1"
)

// Notification is the message pushed to subscribers: both the route-access
// broadcast and the echo of inbound messages use this shape. An empty ID
// means no route has been accessed yet and goes on the wire as null.
type Notification struct {
	ID      string
	Message string
}

// wireNotification is the JSON form of Notification.
type wireNotification struct {
	ID      *string `json:"id"`
	Message string  `json:"message"`
}

// RouteAccessed builds the broadcast sent when an HTTP route is accessed.
func RouteAccessed(id, path string) Notification {
	return Notification{
		ID:      id,
		Message: "Notification from server: Route accessed: " + path,
	}
}

// Echo builds the reply to an inbound subscriber message.
func Echo(id, text string) Notification {
	return Notification{
		ID:      id,
		Message: "Route accessed: " + text,
	}
}

// negotiateProtocol picks the first supported subprotocol the client asked
// for. JSON is the default when none match.
func negotiateProtocol(requested []string) (protocol string, matched bool) {
	for _, proto := range requested {
		switch proto {
		case ProtocolJSON, ProtocolProtobuf:
			return proto, true
		}
	}
	return ProtocolJSON, false
}

func encodeJSON(n Notification) ([]byte, error) {
	wire := wireNotification{Message: n.Message}
	if n.ID != "" {
		wire.ID = &n.ID
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	return data, nil
}

func decodeJSON(frame []byte) (Notification, error) {
	var wire wireNotification
	if err := json.Unmarshal(frame, &wire); err != nil {
		return Notification{}, fmt.Errorf("unmarshal notification: %w", err)
	}
	n := Notification{Message: wire.Message}
	if wire.ID != nil {
		n.ID = *wire.ID
	}
	return n, nil
}
