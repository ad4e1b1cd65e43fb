package relay

import (
	"CollabProject/logger"
)

// ForwardHandler relays an opaque payload (cursor, element mutations,
// selection) to the sender's room. Payload contents are never interpreted;
// merge semantics belong to the clients.
type ForwardHandler struct {
	t FrameType
}

func NewForwardHandler(t FrameType) Handler { return &ForwardHandler{t: t} }

func (h *ForwardHandler) Type() FrameType { return h.t }

func (h *ForwardHandler) Handle(ctx *RelayContext, f *Frame, c *Conn) error {
	snd, room := c.Presence()
	if room == "" {
		// Unjoined connections have no room to relay into.
		logger.Debugf("[relay] dropped %s from unjoined conn=%s", f.Type, c.ID)
		return nil
	}
	out := &Frame{Type: f.Type, Payload: f.Payload, Sender: &snd}
	ctx.S.Broadcast(room, out, c.ID)
	return nil
}
