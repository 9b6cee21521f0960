package tracking

import (
	"net/http"
	"sync"
	"time"

	"arheb/internal/domain"
	"arheb/internal/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient adapts one gorilla connection to the Conn interface. Writes
// go through a buffered channel drained by a single write pump, so
// Send is safe from any goroutine.
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan any
	done chan struct{}
	once sync.Once
}

func newWSClient(conn *websocket.Conn) *wsClient {
	return &wsClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan any, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *wsClient) ID() string { return c.id }

func (c *wsClient) Send(msg any) {
	select {
	case <-c.done:
	case c.send <- msg:
	default:
		// slow consumer, drop it
		c.Close()
	}
}

func (c *wsClient) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

// Server ties gate and bridge to the websocket endpoint.
type Server struct {
	Gate   Gate
	Bridge Bridge
}

// HandleWS admits and serves one tracking connection. The gate runs
// before the upgrade: a rejected handshake never becomes a session.
// Handshake metadata comes from the query string, with the
// Authorization header accepted for the credential.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	credential := utils.FirstNonEmpty(r.URL.Query().Get("token"), r.Header.Get("Authorization"))
	orderID := r.URL.Query().Get("orderId")

	adm, err := s.Gate.Admit(credential, orderID)
	if err != nil {
		status := http.StatusUnauthorized
		if domain.IsNotFound(err) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := newWSClient(conn)
	role := adm.ResolveRole()

	go client.writePump()
	s.Bridge.Join(adm, role, client)

	s.readPump(adm.OrderID, role, client)
}

// readPump runs on the handler goroutine until the connection dies,
// then fires the disconnect path. A silently dead peer is caught by
// the pong deadline.
func (s *Server) readPump(orderID int64, role Role, client *wsClient) {
	defer func() {
		client.Close()
		_ = client.conn.Close()
		s.Bridge.Leave(orderID, role, client)
	}()

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		s.Bridge.HandleFrame(orderID, role, client, raw)
	}
}
