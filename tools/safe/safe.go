package safe

import (
	"CollabProject/logger"
)

// Go starts a new goroutine that recovers from panic,
// so that a panicking connection goroutine doesn't crash the whole gateway.
func Go(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("[safe.Go] panic recovered: %v", r)
			}
		}()
		f()
	}()
}
