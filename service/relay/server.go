package relay

import (
	"CollabProject/logger"
	storage "CollabProject/service/storage"
)

// Server is the composition root of the relay: it owns the connection
// registry and room directory, and routes every inbound frame through the
// dispatcher. One instance per process; nothing here is persisted, a restart
// starts from zero and clients re-join.
type Server struct {
	nodeID string
	reg    *Registry
	rooms  *RoomDirectory
	disp   *Dispatcher
	fanout *Fanout
}

func NewServer(nodeID string) *Server {
	s := &Server{
		nodeID: nodeID,
		reg:    NewRegistry(),
		rooms:  NewRoomDirectory(),
		disp:   NewDispatcher(),
		fanout: NewFanout(8192),
	}
	s.registerHandlers()
	return s
}

func (s *Server) NodeID() string { return s.nodeID }

func (s *Server) Registry() *Registry { return s.reg }

func (s *Server) Rooms() *RoomDirectory { return s.rooms }

func (s *Server) Disp() *Dispatcher { return s.disp }

func (s *Server) registerHandlers() {
	s.disp.Register(NewJoinHandler())
	s.disp.Register(NewLeaveHandler())
	for _, t := range []FrameType{
		FrameCursor,
		FrameElementAdd,
		FrameElementUpdate,
		FrameElementDelete,
		FrameSelection,
	} {
		s.disp.Register(NewForwardHandler(t))
	}
}

// DispatchFrame routes one inbound frame for the given connection.
func (s *Server) DispatchFrame(f *Frame, c *Conn) error {
	return s.disp.Dispatch(&RelayContext{S: s}, f, c)
}

// SendTo queues a frame for one connection, bypassing room fan-out. Used for
// direct replies such as the roster push to a new joiner.
func (s *Server) SendTo(c *Conn, f *Frame) {
	data, err := MarshalFrameJSON(f)
	if err != nil {
		logger.Errorf("[relay] marshal %s frame: %v", f.Type, err)
		return
	}
	if !c.Enqueue(data) {
		logger.Warnf("[relay] send queue full, dropped %s for conn=%s", f.Type, c.ID)
	}
}

// Broadcast delivers the frame to every member of the room except excludeID.
// The member set is resolved now; the payload is marshaled once.
func (s *Server) Broadcast(roomKey string, f *Frame, excludeID string) {
	members := s.rooms.Members(roomKey)
	targets := members[:0]
	for _, c := range members {
		if c.ID != excludeID {
			targets = append(targets, c)
		}
	}
	if len(targets) == 0 {
		return
	}
	data, err := MarshalFrameJSON(f)
	if err != nil {
		logger.Errorf("[relay] marshal %s frame: %v", f.Type, err)
		return
	}
	s.fanout.Broadcast(targets, data)
}

// HandleLeave is the single leave path, shared by the explicit leave frame
// and transport close. Calling it on an unjoined connection is a no-op, so
// both triggers may fire without a double user-left.
func (s *Server) HandleLeave(c *Conn) {
	room, snd, ok := c.takeRoom()
	if !ok {
		return
	}
	emptied := s.rooms.Leave(room, c.ID)
	s.Broadcast(room, BuildUserLeftFrame(snd), c.ID)
	logger.Infof("[relay] conn=%s user=%s left room=%s", c.ID, snd.UserID, room)

	if !storage.Enabled() {
		return
	}
	if emptied {
		if err := storage.PresenceClear(room); err != nil {
			logger.Warnf("[relay] presence mirror clear room=%s: %v", room, err)
		}
	} else if err := storage.PresenceLeave(room, c.ID); err != nil {
		logger.Warnf("[relay] presence mirror leave room=%s conn=%s: %v", room, c.ID, err)
	}
}

// Stats reports live room and connection counts.
func (s *Server) Stats() (rooms, conns int) {
	rooms, _ = s.rooms.Counts()
	return rooms, s.reg.Len()
}
