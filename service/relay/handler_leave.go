package relay

// LeaveHandler handles the explicit leave frame. The transport-close path in
// ws_server.go converges on the same Server.HandleLeave.
type LeaveHandler struct{}

func NewLeaveHandler() Handler { return &LeaveHandler{} }

func (h *LeaveHandler) Type() FrameType { return FrameLeave }

func (h *LeaveHandler) Handle(ctx *RelayContext, _ *Frame, c *Conn) error {
	ctx.S.HandleLeave(c)
	return nil
}
