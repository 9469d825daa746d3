package scan

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

const (
	defaultPollInterval    = 3 * time.Second
	defaultMaxPollAttempts = 90 // ~4.5 minutes at the default interval
)

// Poller repeatedly fetches a run's dataset on a fixed cadence until an item
// appears or the attempt ceiling is reached. The interval is constant, not a
// backoff. Any fetch failure aborts the loop immediately.
type Poller struct {
	Client      *Client
	Interval    time.Duration
	MaxAttempts int
}

// NewPoller constructs a Poller, falling back to the default cadence when
// interval or maxAttempts are zero.
func NewPoller(client *Client, interval time.Duration, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxPollAttempts
	}
	return &Poller{Client: client, Interval: interval, MaxAttempts: maxAttempts}
}

// Poll blocks until the run's dataset contains at least one item and returns
// the first one. Returns a TimeoutError after MaxAttempts empty fetches, or
// the fetch error itself when a request fails.
func (p *Poller) Poll(ctx context.Context, runID string) (json.RawMessage, error) {
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		items, err := p.Client.FetchDatasetItems(ctx, runID)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			log.Printf("Run %s returned data after %d poll attempts", runID, attempt)
			return items[0], nil
		}

		if attempt < p.MaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.Interval):
			}
		}
	}

	return nil, &TimeoutError{RunID: runID, Attempts: p.MaxAttempts}
}
