package relay

import (
	"time"

	"promptlink-be/internal/pkg/logger"
	"promptlink-be/pkg/events"
)

// Runner drives relay sessions to completion. One goroutine per session; the
// runner itself holds no per-session state, so a single instance is shared by
// every worker.
type Runner struct {
	gateway   *Gateway
	logger    logger.ILogger
	events    events.Publisher
	stepPause time.Duration
}

// NewRunner creates a runner. stepPause is the fixed delay between steps,
// there to smooth load against the upstream API.
func NewRunner(gateway *Gateway, log logger.ILogger, publisher events.Publisher, stepPause time.Duration) *Runner {
	return &Runner{
		gateway:   gateway,
		logger:    log,
		events:    publisher,
		stepPause: stepPause,
	}
}

func (r *Runner) pause() {
	if r.stepPause > 0 {
		time.Sleep(r.stepPause)
	}
}
