package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/math"

	"github.com/gocord/gocord/config"
	"github.com/gocord/gocord/pkg/errorx"
	"github.com/gocord/gocord/pkg/xcontext"
)

// DispatchFunc receives every gateway event, including READY. The data map
// is the raw inner payload of the Dispatch frame.
type DispatchFunc func(ctx context.Context, event string, data map[string]any)

// Gateway holds one shard's connection to Discord's event stream. It
// identifies, heartbeats and reconnects on its own; consumers only see the
// dispatch callback.
type Gateway struct {
	cfg      config.GatewayConfigs
	token    string
	dispatch DispatchFunc

	sessionMutex sync.Mutex
	sessionID    string

	seq   int64
	acked atomic.Bool
}

func New(cfg config.GatewayConfigs, token string, dispatch DispatchFunc) *Gateway {
	return &Gateway{
		cfg:      cfg,
		token:    token,
		dispatch: dispatch,
	}
}

// SessionID returns the session established by the last READY, empty
// before the first successful identify.
func (g *Gateway) SessionID() string {
	g.sessionMutex.Lock()
	defer g.sessionMutex.Unlock()

	return g.sessionID
}

// Seq returns the last dispatch sequence number received.
func (g *Gateway) Seq() int64 {
	return atomic.LoadInt64(&g.seq)
}

// Run connects to the gateway and blocks, reconnecting with a capped
// exponential backoff, until the context is cancelled or the server
// refuses the connection with a close code retrying cannot fix.
func (g *Gateway) Run(ctx context.Context) error {
	backoff := time.Second

	for {
		identified, err := g.runSession(ctx)
		if ctx.Err() != nil {
			return nil
		}

		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) && fatalCloseCodes[closeErr.Code] {
			if closeErr.Code == CloseAuthenticationFailed {
				return errorx.New(errorx.AuthenticationFailed, "gateway rejected the token")
			}

			return errorx.New(errorx.GatewayClosed, "gateway closed the connection: %v", closeErr)
		}

		if identified {
			backoff = time.Second
		}

		xcontext.Logger(ctx).Warnf("Gateway session ended, reconnecting in %s: %v", backoff, err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff = time.Duration(math.MinInt64(int64(backoff*2), int64(g.cfg.MaxBackoff)))
	}
}

// runSession runs one connection from dial to disconnect. It reports
// whether the hello handshake completed, so the caller can reset its
// backoff after a healthy session.
func (g *Gateway) runSession(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/?v=%d&encoding=%s", g.cfg.URL, g.cfg.Version, g.cfg.Encoding)

	dialer := websocket.Dialer{HandshakeTimeout: g.cfg.HandshakeTimeout}
	ws, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return false, err
	}

	c := newConn(ws)
	defer c.Close()

	hello, ok := <-c.R
	if !ok {
		return false, c.Err()
	}

	if hello.Op != OpHello {
		return false, errorx.New(errorx.UnexpectedPayload,
			"expected hello as the first payload, got op %d", hello.Op)
	}

	var h helloData
	if err := json.Unmarshal(hello.Data, &h); err != nil {
		return false, errorx.New(errorx.UnexpectedPayload, "cannot decode hello: %v", err)
	}

	if g.SessionID() != "" {
		err = g.sendResume(c)
	} else {
		err = g.sendIdentify(c)
	}
	if err != nil {
		return true, err
	}

	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()

	g.acked.Store(true)
	go g.runHeartbeat(heartbeatCtx, c, time.Duration(h.HeartbeatInterval)*time.Millisecond)

	return true, g.readLoop(ctx, c)
}

func (g *Gateway) readLoop(ctx context.Context, c *conn) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case p, ok := <-c.R:
			if !ok {
				return c.Err()
			}

			if err := g.handlePayload(ctx, c, p); err != nil {
				return err
			}
		}
	}
}

func (g *Gateway) handlePayload(ctx context.Context, c *conn, p Payload) error {
	switch p.Op {
	case OpDispatch:
		if p.Seq != nil {
			atomic.StoreInt64(&g.seq, *p.Seq)
		}

		g.handleDispatch(ctx, p)
		return nil

	case OpHeartbeat:
		return g.sendHeartbeat(c)

	case OpHeartbeatACK:
		g.acked.Store(true)
		return nil

	case OpReconnect:
		return errorx.New(errorx.GatewayClosed, "server requested a reconnect")

	case OpInvalidSession:
		var resumable bool
		_ = json.Unmarshal(p.Data, &resumable)

		if !resumable {
			g.clearSession()
		}

		// Discord wants a short random wait before identifying again.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second + time.Duration(rand.Int63n(int64(4*time.Second)))):
		}

		return g.sendIdentify(c)

	default:
		xcontext.Logger(ctx).Debugf("Ignore payload with op %d", p.Op)
		return nil
	}
}

func (g *Gateway) handleDispatch(ctx context.Context, p Payload) {
	var data map[string]any
	if len(p.Data) > 0 {
		if err := json.Unmarshal(p.Data, &data); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decode %s payload: %v", p.Type, err)
			return
		}
	}

	if p.Type == "READY" {
		if id, ok := data["session_id"].(string); ok {
			g.sessionMutex.Lock()
			g.sessionID = id
			g.sessionMutex.Unlock()
		}
	}

	if g.dispatch != nil {
		g.dispatch(ctx, p.Type, data)
	}
}

func (g *Gateway) runHeartbeat(ctx context.Context, c *conn, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if !g.acked.Swap(false) {
				// The previous heartbeat was never acknowledged, the
				// connection is a zombie. Closing it kicks off a resume.
				xcontext.Logger(ctx).Warnf("Heartbeat was not acknowledged, dropping the connection")
				c.Close()
				return
			}

			if err := g.sendHeartbeat(c); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) sendHeartbeat(c *conn) error {
	seq := atomic.LoadInt64(&g.seq)

	var data any
	if seq > 0 {
		data = seq
	}

	p, err := newPayload(OpHeartbeat, data)
	if err != nil {
		return err
	}

	return c.Write(p)
}

func (g *Gateway) sendIdentify(c *conn) error {
	p, err := newPayload(OpIdentify, identifyData{
		Token: g.token,
		Properties: identifyProperties{
			OS:      "linux",
			Browser: "gocord",
			Device:  "gocord",
		},
		Compress:       g.cfg.Compress,
		LargeThreshold: g.cfg.LargeThreshold,
		Shard:          [2]int{g.cfg.ShardID, g.cfg.ShardCount},
	})
	if err != nil {
		return err
	}

	return c.Write(p)
}

func (g *Gateway) sendResume(c *conn) error {
	p, err := newPayload(OpResume, resumeData{
		Token:     g.token,
		SessionID: g.SessionID(),
		Seq:       atomic.LoadInt64(&g.seq),
	})
	if err != nil {
		return err
	}

	return c.Write(p)
}

func (g *Gateway) clearSession() {
	g.sessionMutex.Lock()
	defer g.sessionMutex.Unlock()

	g.sessionID = ""
	atomic.StoreInt64(&g.seq, 0)
}
