package relay

import (
	"testing"
)

type countingHandler struct {
	t     FrameType
	calls int
}

func (h *countingHandler) Type() FrameType { return h.t }
func (h *countingHandler) Handle(_ *RelayContext, _ *Frame, _ *Conn) error {
	h.calls++
	return nil
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	h := &countingHandler{t: FrameCursor}
	d.Register(h)

	if err := d.Dispatch(nil, &Frame{Type: FrameCursor}, nil); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if h.calls != 1 {
		t.Fatalf("handler called %d times, want 1", h.calls)
	}
}

func TestDispatcherUnknownType(t *testing.T) {
	d := NewDispatcher()
	if err := d.Dispatch(nil, &Frame{Type: "bogus"}, nil); err == nil {
		t.Fatalf("unknown type must return an error")
	}
	if h := d.GetHandler("bogus"); h != nil {
		t.Fatalf("GetHandler for unknown type must be nil")
	}
}

func TestServerRegistersAllInboundTypes(t *testing.T) {
	s := NewServer("gw-test")
	for _, ft := range []FrameType{
		FrameJoin, FrameLeave, FrameCursor,
		FrameElementAdd, FrameElementUpdate, FrameElementDelete, FrameSelection,
	} {
		if h := s.disp.GetHandler(ft); h == nil {
			t.Errorf("no handler registered for %q", ft)
		}
	}
	// server-only types must never be dispatchable
	for _, ft := range []FrameType{FrameUsers, FrameUserJoined, FrameUserLeft} {
		if h := s.disp.GetHandler(ft); h != nil {
			t.Errorf("handler registered for server-only type %q", ft)
		}
	}
}
