package relay

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"CollabProject/logger"
	"CollabProject/tools/safe"
)

const (
	pingInterval  = 25 * time.Second
	writeWait     = 10 * time.Second
	pongWait      = 60 * time.Second
	maxFrameSize  = 64 << 10
	sendQueueSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and runs the connection's read loop until the
// transport closes. Cleanup converges on the same leave path an explicit
// leave frame takes, exactly once.
func (s *Server) HandleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Infof("[ws] upgrade failed: %v", err)
		return
	}

	rec := s.reg.Register(ws, sendQueueSize)
	logger.Infof("[ws] connected conn=%s remote=%s", rec.ID, ws.RemoteAddr())

	done := make(chan struct{})
	safe.Go(func() { s.writePump(rec, done) })

	s.readLoop(rec)

	// ---- teardown: leave once, drop the record, stop the writer ----
	s.HandleLeave(rec)
	s.reg.Remove(rec.ID)
	rec.shutdown()
	<-done
	logger.Infof("[ws] closed conn=%s", rec.ID)
}

// readLoop reads frames to completion, one at a time. A malformed or unknown
// frame is logged and dropped; it never terminates an otherwise healthy
// session.
func (s *Server) readLoop(rec *Conn) {
	ws := rec.ws
	ws.SetReadLimit(maxFrameSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		mt, data, rerr := ws.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[ws] peer closed conn=%s err=%v", rec.ID, rerr)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[ws] read timeout conn=%s err=%v", rec.ID, rerr)
			} else {
				logger.Infof("[ws] read err conn=%s err=%v", rec.ID, rerr)
			}
			return
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		frame, perr := ParseFrameJSON(data)
		if perr != nil {
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Warnf("[ws] bad frame conn=%s err=%v sample=%q len=%d",
				rec.ID, perr, sample, len(data))
			continue
		}

		if err := s.DispatchFrame(frame, rec); err != nil {
			logger.Warnf("[ws] dropped frame conn=%s type=%s err=%v",
				rec.ID, frame.Type, err)
		}
	}
}

// writePump is the connection's single writer: it drains the send queue and
// keeps the transport alive with pings. gorilla websocket writes must not be
// concurrent, so everything outbound funnels through here.
func (s *Server) writePump(rec *Conn, done chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = rec.ws.Close()
		close(done)
	}()

	for {
		select {
		case <-rec.closed:
			_ = rec.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = rec.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case payload := <-rec.Send:
			_ = rec.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := rec.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Infof("[ws] write err conn=%s err=%v", rec.ID, err)
				return
			}

		case <-ticker.C:
			if err := rec.ws.WriteControl(websocket.PingMessage, []byte("ping"),
				time.Now().Add(writeWait)); err != nil {
				logger.Infof("[ws] ping err conn=%s err=%v", rec.ID, err)
				return
			}
		}
	}
}
