package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/ws"
)

func watchCmd() *cobra.Command {
	var protocol string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream route-access notifications from the server",
		Long: `Subscribe to the server's WebSocket endpoint and print every
notification as "<id> <message>" until interrupted.

Examples:
  relayctl watch
  relayctl watch --protocol protobuf.relay.v1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if protocol != ws.ProtocolJSON && protocol != ws.ProtocolProtobuf {
				return fmt.Errorf("unsupported protocol %q", protocol)
			}

			wsURL, err := websocketURL(cfg.Server.BaseURL)
			if err != nil {
				return err
			}

			codec, err := ws.NewCodec()
			if err != nil {
				return err
			}
			defer codec.Close()

			dialer := websocket.Dialer{Subprotocols: []string{protocol}}
			conn, _, err := dialer.DialContext(cmd.Context(), wsURL, nil)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", wsURL, err)
			}
			defer conn.Close()

			logger.Info("watching", zap.String("url", wsURL), zap.String("protocol", conn.Subprotocol()))

			// Unblock ReadMessage on interrupt.
			go func() {
				<-cmd.Context().Done()
				conn.Close()
			}()

			negotiated := conn.Subprotocol()
			if negotiated == "" {
				negotiated = ws.ProtocolJSON
			}

			for {
				_, frame, err := conn.ReadMessage()
				if err != nil {
					if cmd.Context().Err() != nil {
						return nil
					}
					return fmt.Errorf("reading notification: %w", err)
				}

				n, err := codec.Decode(negotiated, frame)
				if err != nil {
					logger.Warn("undecodable frame", zap.Error(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", n.ID, n.Message)
			}
		},
	}

	cmd.Flags().StringVar(&protocol, "protocol", ws.ProtocolJSON, "WebSocket subprotocol (json.relay.v1 or protobuf.relay.v1)")

	return cmd
}

// websocketURL maps the configured HTTP base URL to the /ws endpoint.
func websocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String(), nil
}
