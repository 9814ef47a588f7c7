package sim

import (
	"context"
	"sync"
	"time"
)

const DefaultTickRate = 30

// Runner drives a session at a fixed tick rate. Input collaborators set the
// held movement intent at any time; each tick applies whatever intent is
// current, the way a keyboard poll would.
type Runner struct {
	session  *Session
	interval time.Duration

	mu     sync.Mutex
	intent Input
}

func NewRunner(s *Session, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Runner{
		session:  s,
		interval: time.Second / time.Duration(tickRate),
	}
}

// SetIntent replaces the held movement intent.
func (r *Runner) SetIntent(in Input) {
	r.mu.Lock()
	r.intent = in
	r.mu.Unlock()
}

func (r *Runner) currentIntent() Input {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intent
}

// Run blocks until the context is cancelled, ticking with measured
// wall-clock deltas. Shutdown triggers a best-effort save; the session
// applies its own step cap, so a long scheduler stall does not fast-forward
// the world.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.session.Save(saveCtx); err != nil {
				return err
			}
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.session.Tick(dt, r.currentIntent())
		}
	}
}
