package relay

import (
	"testing"
)

func newTestConn(id string) *Conn {
	return &Conn{ID: id, Send: make(chan []byte, 16), closed: make(chan struct{})}
}

func TestRoomJoinLeaveMembership(t *testing.T) {
	d := NewRoomDirectory()
	a := newTestConn("a")
	b := newTestConn("b")

	d.Join("p1", a)
	d.Join("p1", b)
	d.Join("p1", b) // idempotent

	if got := len(d.Members("p1")); got != 2 {
		t.Fatalf("members = %d, want 2", got)
	}

	if emptied := d.Leave("p1", a.ID); emptied {
		t.Fatalf("room should not be empty yet")
	}
	if got := len(d.Members("p1")); got != 1 {
		t.Fatalf("members after leave = %d, want 1", got)
	}

	if emptied := d.Leave("p1", b.ID); !emptied {
		t.Fatalf("last leave must report the room emptied")
	}
	rooms, _ := d.Counts()
	if rooms != 0 {
		t.Fatalf("empty room must be removed immediately, rooms = %d", rooms)
	}

	// recreated transparently on the next join
	d.Join("p1", a)
	if got := len(d.Members("p1")); got != 1 {
		t.Fatalf("members after re-join = %d, want 1", got)
	}
}

func TestRoomLeaveUnknownIsNoop(t *testing.T) {
	d := NewRoomDirectory()
	if emptied := d.Leave("missing", "nobody"); emptied {
		t.Fatalf("leave on a missing room must be a no-op")
	}
	if got := d.Members("missing"); len(got) != 0 {
		t.Fatalf("missing room must yield an empty member set")
	}
}

func TestRoomsAreIndependent(t *testing.T) {
	d := NewRoomDirectory()
	a := newTestConn("a")
	b := newTestConn("b")
	d.Join("p1", a)
	d.Join("p2", b)

	d.Leave("p1", a.ID)
	if got := len(d.Members("p2")); got != 1 {
		t.Fatalf("p2 affected by p1 leave, members = %d", got)
	}
}

func TestPresenceExcept(t *testing.T) {
	d := NewRoomDirectory()
	a := newTestConn("a")
	a.SetPresence("1", "alice", "p1", "#FF6B6B")
	b := newTestConn("b")
	b.SetPresence("2", "bob", "p1", "#4ECDC4")
	d.Join("p1", a)
	d.Join("p1", b)

	roster := d.PresenceExcept("p1", b.ID)
	if len(roster) != 1 {
		t.Fatalf("roster = %+v, want just alice", roster)
	}
	if roster[0].UserID != "1" || roster[0].UserName != "alice" || roster[0].Color != "#FF6B6B" {
		t.Fatalf("unexpected roster entry %+v", roster[0])
	}

	full := d.PresenceExcept("p1", "nobody")
	if len(full) != 2 {
		t.Fatalf("full roster = %d entries, want 2", len(full))
	}
}
