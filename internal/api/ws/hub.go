package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

// Hub pushes every new render model to connected status pages so they do not
// have to re-fetch on their own timer.
type Hub interface {
	Handle() gin.HandlerFunc
	Publish(v any)
	Close()
}

// client wraps a connection with its own write lock, gorilla/websocket
// allows at most one concurrent writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

type hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool
}

func (h *hub) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		cl := &client{conn: conn}
		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			conn.Close()
			return
		}
		h.clients[cl] = struct{}{}
		last := h.last
		h.mu.Unlock()
		if last != nil {
			if err := cl.write(last); err != nil {
				h.drop(cl)
				return
			}
		}
		// the page never sends anything, read only to notice the close
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					h.drop(cl)
					return
				}
			}
		}()
	}
}

func (h *hub) Publish(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to marshal snapshot for broadcast", zap.Error(err))
		return
	}
	h.mu.Lock()
	h.last = b
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.Unlock()
	for _, cl := range clients {
		if err := cl.write(b); err != nil {
			h.drop(cl)
		}
	}
}

func (h *hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.clients = map[*client]struct{}{}
	h.mu.Unlock()
	for _, cl := range clients {
		cl.conn.Close()
	}
}

func (h *hub) drop(cl *client) {
	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()
	cl.conn.Close()
}

func NewHub(logger *zap.Logger) Hub {
	return &hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: map[*client]struct{}{},
	}
}
