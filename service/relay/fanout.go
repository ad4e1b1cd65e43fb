package relay

import (
	"CollabProject/logger"
	"CollabProject/tools/safe"
)

type fanoutJob struct {
	conns   []*Conn
	payload []byte
}

// Fanout delivers one payload to a set of connections off the caller's
// goroutine. A single worker drains the queue so that two broadcasts enqueued
// in order reach every shared recipient in that same order; per-recipient
// ordering then holds end to end through the per-connection send queue.
type Fanout struct {
	jobs chan fanoutJob
}

func NewFanout(queue int) *Fanout {
	f := &Fanout{jobs: make(chan fanoutJob, queue)}
	safe.Go(func() {
		for job := range f.jobs {
			for _, c := range job.conns {
				if !c.Enqueue(job.payload) {
					// Slow or closing client: drop its copy, keep going.
					logger.Debugf("[fanout] dropped frame for conn=%s", c.ID)
				}
			}
		}
	})
	return f
}

// Broadcast queues a delivery. The recipient set is resolved by the caller at
// call time; membership changes after that don't affect this delivery.
func (f *Fanout) Broadcast(conns []*Conn, payload []byte) {
	if len(conns) == 0 || len(payload) == 0 {
		return
	}
	f.jobs <- fanoutJob{conns: conns, payload: payload}
}

func (f *Fanout) Close() {
	close(f.jobs)
}
