package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/gocord/gocord/config"
)

var upgrader = websocket.Upgrader{}

func gatewayConfigs(url string) config.GatewayConfigs {
	return config.GatewayConfigs{
		URL:              strings.Replace(url, "http", "ws", 1),
		Version:          6,
		Encoding:         "json",
		LargeThreshold:   250,
		ShardCount:       1,
		HandshakeTimeout: 5 * time.Second,
		MaxBackoff:       time.Second,
	}
}

func serveSession(t *testing.T, handler func(*websocket.Conn)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		handler(ws)
	}))

	t.Cleanup(server.Close)
	return server
}

func writeHello(t *testing.T, ws *websocket.Conn, interval int64) {
	t.Helper()
	err := ws.WriteJSON(map[string]any{
		"op": OpHello,
		"d":  map[string]any{"heartbeat_interval": interval},
	})
	require.NoError(t, err)
}

func readPayload(t *testing.T, ws *websocket.Conn) Payload {
	t.Helper()

	var p Payload
	require.NoError(t, ws.ReadJSON(&p))
	return p
}

type event struct {
	name string
	data map[string]any
}

func TestGatewayIdentifyAndDispatch(t *testing.T) {
	done := make(chan struct{})
	server := serveSession(t, func(ws *websocket.Conn) {
		writeHello(t, ws, 60000)

		identify := readPayload(t, ws)
		require.Equal(t, OpIdentify, identify.Op)

		var d identifyData
		require.NoError(t, json.Unmarshal(identify.Data, &d))
		require.Equal(t, "Bot token", d.Token)
		require.Equal(t, [2]int{0, 1}, d.Shard)

		err := ws.WriteJSON(map[string]any{
			"op": OpDispatch,
			"s":  1,
			"t":  "READY",
			"d": map[string]any{
				"v":          6,
				"session_id": "abc123",
				"user": map[string]any{
					"id": "80351110224678912", "username": "bot", "discriminator": "0007",
				},
			},
		})
		require.NoError(t, err)

		// A compressed frame must decode the same as a text frame.
		raw, err := json.Marshal(map[string]any{
			"op": OpDispatch,
			"s":  2,
			"t":  "MESSAGE_CREATE",
			"d":  map[string]any{"content": "hello"},
		})
		require.NoError(t, err)
		deflated, err := compress(raw)
		require.NoError(t, err)
		require.NoError(t, ws.WriteMessage(websocket.BinaryMessage, deflated))

		<-done
	})

	events := make(chan event, 8)
	g := New(gatewayConfigs(server.URL), "Bot token", func(ctx context.Context, name string, data map[string]any) {
		events <- event{name: name, data: data}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- g.Run(ctx) }()

	ready := requireEvent(t, events)
	require.Equal(t, "READY", ready.name)
	require.Equal(t, "abc123", ready.data["session_id"])

	created := requireEvent(t, events)
	require.Equal(t, "MESSAGE_CREATE", created.name)
	require.Equal(t, "hello", created.data["content"])

	require.Equal(t, "abc123", g.SessionID())
	require.EqualValues(t, 2, g.Seq())

	cancel()
	close(done)
	require.NoError(t, <-runDone)
}

func TestGatewayHeartbeat(t *testing.T) {
	beats := make(chan Payload, 8)

	server := serveSession(t, func(ws *websocket.Conn) {
		writeHello(t, ws, 50)
		readPayload(t, ws) // identify

		// Keep acknowledging until the client hangs up.
		for {
			var p Payload
			if err := ws.ReadJSON(&p); err != nil {
				return
			}

			if p.Op != OpHeartbeat {
				continue
			}

			select {
			case beats <- p:
			default:
			}

			if err := ws.WriteJSON(map[string]any{"op": OpHeartbeatACK}); err != nil {
				return
			}
		}
	})

	g := New(gatewayConfigs(server.URL), "Bot token", nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- g.Run(ctx) }()

	// Two beats prove the ACK was seen, a zombie connection is dropped
	// after the first missed one.
	for i := 0; i < 2; i++ {
		select {
		case <-beats:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a heartbeat")
		}
	}

	cancel()
	require.NoError(t, <-runDone)
}

func TestGatewayAuthenticationFailed(t *testing.T) {
	server := serveSession(t, func(ws *websocket.Conn) {
		writeHello(t, ws, 60000)
		readPayload(t, ws) // identify

		msg := websocket.FormatCloseMessage(CloseAuthenticationFailed, "Authentication failed.")
		_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	})

	g := New(gatewayConfigs(server.URL), "Bot badtoken", nil)

	err := g.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "rejected the token")
}

func requireEvent(t *testing.T, events chan event) event {
	t.Helper()

	select {
	case e := <-events:
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an event")
		return event{}
	}
}
