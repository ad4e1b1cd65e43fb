package relay

import (
	"sync"
)

// RoomDirectory maps a room key (project id) to the set of connections
// currently joined. A room exists only while it has members: the last leave
// deletes it, the next join recreates it.
type RoomDirectory struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*Conn // roomKey -> connID -> conn
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{
		rooms: make(map[string]map[string]*Conn),
	}
}

// Join adds the connection to the room, creating the room if absent.
// Idempotent if the connection is already a member.
func (d *RoomDirectory) Join(roomKey string, c *Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := d.rooms[roomKey]
	if m == nil {
		m = make(map[string]*Conn)
		d.rooms[roomKey] = m
	}
	m[c.ID] = c
}

// Leave removes the connection from the room. When the room empties it is
// removed immediately; emptied reports that. Unknown room or member is a no-op.
func (d *RoomDirectory) Leave(roomKey, connID string) (emptied bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := d.rooms[roomKey]
	if m == nil {
		return false
	}
	delete(m, connID)
	if len(m) == 0 {
		delete(d.rooms, roomKey)
		return true
	}
	return false
}

// Members returns the current member connections. Absent room yields an empty
// slice, not an error.
func (d *RoomDirectory) Members(roomKey string) []*Conn {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m := d.rooms[roomKey]
	if len(m) == 0 {
		return nil
	}
	out := make([]*Conn, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	return out
}

// PresenceExcept lists the identity of every member except exceptID, in no
// particular order. Used to answer a joiner with the pre-join roster.
func (d *RoomDirectory) PresenceExcept(roomKey, exceptID string) []Sender {
	members := d.Members(roomKey)
	out := make([]Sender, 0, len(members))
	for _, c := range members {
		if c.ID == exceptID {
			continue
		}
		snd, _ := c.Presence()
		out = append(out, snd)
	}
	return out
}

// Counts reports room and member totals for the stats endpoint.
func (d *RoomDirectory) Counts() (rooms, members int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rooms = len(d.rooms)
	for _, m := range d.rooms {
		members += len(m)
	}
	return rooms, members
}
