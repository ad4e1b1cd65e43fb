package relay

import (
	"sync"

	"github.com/gorilla/websocket"

	"CollabProject/tools/ids"
)

// Conn is the per-connection record: one per live websocket session.
// Identity fields are empty until the first successful join.
type Conn struct {
	ID string

	ws   *websocket.Conn
	Send chan []byte // outbound queue, drained by a single writer goroutine

	closeOnce sync.Once
	closed    chan struct{}

	mu       sync.Mutex
	userID   string
	userName string
	roomKey  string
	color    string
}

// SetPresence records the identity assigned by a join.
func (c *Conn) SetPresence(userID, userName, roomKey, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.userName = userName
	c.roomKey = roomKey
	c.color = color
}

// Presence returns the current identity and room. Read at send time so the
// stamped attribution always reflects the latest state.
func (c *Conn) Presence() (Sender, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Sender{UserID: c.userID, UserName: c.userName, Color: c.color}, c.roomKey
}

// RoomKey returns the joined room, or "" while unjoined.
func (c *Conn) RoomKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomKey
}

// takeRoom atomically clears the room membership state and returns what was
// held. ok is false when the connection was not joined, which makes the leave
// path naturally idempotent.
func (c *Conn) takeRoom() (room string, snd Sender, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.roomKey == "" {
		return "", Sender{}, false
	}
	room = c.roomKey
	snd = Sender{UserID: c.userID, UserName: c.userName, Color: c.color}
	c.roomKey = ""
	c.color = ""
	return room, snd, true
}

// Enqueue pushes a payload onto the connection's send queue without blocking.
// Returns false when the connection is shutting down or the queue is full; a
// slow reader costs itself frames, never the rest of the room.
func (c *Conn) Enqueue(payload []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// shutdown marks the connection as closing. Safe to call more than once.
func (c *Conn) shutdown() {
	c.closeOnce.Do(func() { close(c.closed) })
}

// Registry tracks every live connection on this gateway, keyed by its
// snowflake connection id.
type Registry struct {
	mu     sync.RWMutex
	byConn map[string]*Conn
}

func NewRegistry() *Registry {
	return &Registry{
		byConn: make(map[string]*Conn),
	}
}

// Register creates an unjoined record for a freshly opened transport.
func (r *Registry) Register(ws *websocket.Conn, sendQueueSize int) *Conn {
	c := &Conn{
		ID:     ids.GenerateString(),
		ws:     ws,
		Send:   make(chan []byte, sendQueueSize),
		closed: make(chan struct{}),
	}
	r.mu.Lock()
	r.byConn[c.ID] = c
	r.mu.Unlock()
	return c
}

func (r *Registry) Get(connID string) (*Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byConn[connID]
	return c, ok
}

// Remove deletes the record. Removing an unknown id is a no-op; disconnect
// races are expected and harmless.
func (r *Registry) Remove(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byConn, connID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConn)
}
