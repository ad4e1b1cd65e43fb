package relay

import (
	"fmt"

	"github.com/golang/glog"
)

// Handler processes one inbound frame type.
type Handler interface {
	Type() FrameType
	Handle(ctx *RelayContext, f *Frame, c *Conn) error
}

// RelayContext carries the server into handlers.
type RelayContext struct {
	S *Server
}

type Dispatcher struct {
	handlers map[FrameType]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[FrameType]Handler)}
}

func (d *Dispatcher) Register(h Handler) { d.handlers[h.Type()] = h }

// Dispatch routes the frame to its handler. Unknown types (including the
// server-only users/user-joined/user-left, which no client may send) come
// back as an error and the caller drops the frame.
func (d *Dispatcher) Dispatch(ctx *RelayContext, f *Frame, c *Conn) error {
	h, ok := d.handlers[f.Type]
	if !ok {
		return fmt.Errorf("no handler for type=%q", f.Type)
	}
	return h.Handle(ctx, f, c)
}

func (d *Dispatcher) GetHandler(t FrameType) Handler {
	h, ok := d.handlers[t]
	if !ok {
		glog.Infof("no handler for type=%q", t)
		return nil
	}
	return h
}
