package scan

import (
	"sync"
	"time"
)

const (
	simulatorStep     = 2
	simulatorInterval = 100 * time.Millisecond
)

// Simulator fabricates a smoothly increasing progress percentage while the
// real run executes. The scraping API exposes no granular progress, so the
// percentage is cosmetic: it climbs by a fixed step per tick, caps at 100 and
// has no relation to the run's actual state.
type Simulator struct {
	Step     int
	Interval time.Duration

	mu      sync.Mutex
	pct     int
	started bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewSimulator returns a Simulator with the default step and interval.
func NewSimulator() *Simulator {
	return &Simulator{
		Step:     simulatorStep,
		Interval: simulatorInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins ticking in the background, invoking onTick with every new
// value. Ticking ends when the value reaches 100 or Stop is called. Calling
// Start twice is a no-op.
func (s *Simulator) Start(onTick func(pct int)) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				// Stop may have landed while a tick was already pending.
				select {
				case <-s.stop:
					return
				default:
				}

				s.mu.Lock()
				if s.pct >= 100 {
					s.mu.Unlock()
					return
				}
				s.pct += s.Step
				if s.pct > 100 {
					s.pct = 100
				}
				pct := s.pct
				s.mu.Unlock()

				if onTick != nil {
					onTick(pct)
				}
			}
		}
	}()
}

// Stop cancels the ticker and waits for the ticking goroutine to finish, so
// no onTick call can land after Stop returns. Safe to call more than once.
func (s *Simulator) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.done
	}
}

// Value returns the last simulated percentage.
func (s *Simulator) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pct
}
