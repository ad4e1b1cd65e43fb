package relay

import (
	"CollabProject/logger"
	storage "CollabProject/service/storage"
)

// JoinHandler admits a connection into a room. A join while already joined to
// a different room is a room switch: the old room's leave path runs first.
type JoinHandler struct{}

func NewJoinHandler() Handler { return &JoinHandler{} }

func (h *JoinHandler) Type() FrameType { return FrameJoin }

func (h *JoinHandler) Handle(ctx *RelayContext, f *Frame, c *Conn) error {
	p, err := ExtractJoinPayload(f)
	if err != nil {
		return err
	}

	if cur := c.RoomKey(); cur != "" && cur != p.ProjectID {
		ctx.S.HandleLeave(c)
	}

	color := AllocateColor()

	// Pre-join snapshot: the joiner gets the roster of everyone already
	// present, never its own entry.
	roster := ctx.S.rooms.PresenceExcept(p.ProjectID, c.ID)

	c.SetPresence(p.UserID, p.UserName, p.ProjectID, color)
	ctx.S.rooms.Join(p.ProjectID, c)

	ctx.S.SendTo(c, BuildUsersFrame(roster))

	snd := Sender{UserID: p.UserID, UserName: p.UserName, Color: color}
	ctx.S.Broadcast(p.ProjectID, BuildUserJoinedFrame(snd), c.ID)

	logger.Infof("[relay] conn=%s user=%s joined room=%s color=%s",
		c.ID, p.UserID, p.ProjectID, color)

	if storage.Enabled() {
		entry := storage.Entry{UserID: p.UserID, UserName: p.UserName, Color: color}
		if err := storage.PresenceJoin(p.ProjectID, c.ID, entry); err != nil {
			logger.Warnf("[relay] presence mirror join room=%s conn=%s: %v",
				p.ProjectID, c.ID, err)
		}
	}
	return nil
}
