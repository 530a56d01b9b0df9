package gateway

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// conn wraps a websocket connection with a reader pump. Binary frames are
// zlib-compressed payloads and are inflated before decoding.
type conn struct {
	ws *websocket.Conn
	R  chan Payload

	writeMutex sync.Mutex
	readErr    error
}

func newConn(ws *websocket.Conn) *conn {
	c := &conn{
		ws: ws,
		R:  make(chan Payload, 128),
	}

	go c.runReader()
	return c
}

func (c *conn) runReader() {
	defer close(c.R)

	for {
		t, msg, err := c.ws.ReadMessage()
		if err != nil {
			c.readErr = err
			return
		}

		if t == websocket.BinaryMessage {
			msg, err = decompress(msg)
			if err != nil {
				c.readErr = err
				return
			}
		}

		var p Payload
		if err := json.Unmarshal(msg, &p); err != nil {
			continue
		}

		c.R <- p
	}
}

// Err reports why the reader stopped. Only meaningful after R is closed.
func (c *conn) Err() error {
	return c.readErr
}

func (c *conn) Write(p Payload) error {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	return c.ws.WriteJSON(p)
}

func (c *conn) Close() error {
	return c.ws.Close()
}
