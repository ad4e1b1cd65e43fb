package relay

import (
	"fmt"
	"testing"
	"time"
)

func TestFanoutPerRecipientOrder(t *testing.T) {
	f := NewFanout(64)
	defer f.Close()
	c := newTestConn("c1")

	const n = 50
	for i := 0; i < n; i++ {
		f.Broadcast([]*Conn{c}, []byte(fmt.Sprintf("m%d", i)))
	}

	for i := 0; i < n; i++ {
		select {
		case got := <-c.Send:
			want := fmt.Sprintf("m%d", i)
			if string(got) != want {
				t.Fatalf("frame %d = %q, want %q (reordered)", i, got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out at frame %d", i)
		}
	}
}

func TestFanoutSlowRecipientDoesNotBlockOthers(t *testing.T) {
	f := NewFanout(64)
	defer f.Close()

	slow := &Conn{ID: "slow", Send: make(chan []byte, 1), closed: make(chan struct{})}
	fast := newTestConn("fast")

	// fill the slow client's queue
	slow.Send <- []byte("stuck")

	for i := 0; i < 10; i++ {
		f.Broadcast([]*Conn{slow, fast}, []byte("x"))
	}

	// fast client still gets everything
	for i := 0; i < 10; i++ {
		select {
		case <-fast.Send:
		case <-time.After(time.Second):
			t.Fatalf("fast client starved at frame %d", i)
		}
	}
}

func TestFanoutClosedRecipient(t *testing.T) {
	f := NewFanout(64)
	defer f.Close()

	gone := newTestConn("gone")
	gone.shutdown()
	alive := newTestConn("alive")

	f.Broadcast([]*Conn{gone, alive}, []byte("hello"))

	select {
	case <-alive.Send:
	case <-time.After(time.Second):
		t.Fatalf("delivery aborted by a closed recipient")
	}
	select {
	case got := <-gone.Send:
		t.Fatalf("closed recipient received %q", got)
	default:
	}
}

func TestFanoutEmptyInputs(t *testing.T) {
	f := NewFanout(4)
	defer f.Close()
	// must not enqueue work or panic
	f.Broadcast(nil, []byte("x"))
	f.Broadcast([]*Conn{newTestConn("c")}, nil)
}
