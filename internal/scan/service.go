package scan

import (
	"context"
	"encoding/json"
	"log"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// ProgressSink receives percentage updates while a scan runs. Tracker is the
// production implementation.
type ProgressSink interface {
	Update(leadID string, pct float64, currentFile string) error
}

// ResultPersister stores a completed scan. Persister is the production
// implementation.
type ResultPersister interface {
	Persist(ctx context.Context, leadID, userID string, platform models.Platform, raw json.RawMessage) error
}

// Service coordinates one scan end to end: launch the remote run, poll its
// dataset while a simulator drives the progress row, then persist the result.
// A scan cannot be cancelled once launched; it ends in success, timeout or a
// launch failure.
type Service struct {
	Client    *Client
	Poller    *Poller
	Progress  ProgressSink
	Persister ResultPersister
}

// Run executes the full scan workflow for a lead. Blocks until the scan
// finishes, up to the poller's ceiling.
func (s *Service) Run(ctx context.Context, leadID, userID, username string, platform models.Platform) error {
	profileURL, err := ProfileURL(platform, username)
	if err != nil {
		return err
	}

	s.progress(leadID, 0, "Launching scan for @"+username)

	runID, err := s.Client.LaunchRun(ctx, platform, profileURL)
	if err != nil {
		s.progress(leadID, 0, "Scan failed to start")
		return err
	}
	log.Printf("Launched scan run %s for lead %s (%s @%s)", runID, leadID, platform, username)

	sim := NewSimulator()
	sim.Start(func(pct int) {
		s.progress(leadID, float64(pct), "Scanning profile of @"+username)
	})
	defer sim.Stop()

	item, err := s.Poller.Poll(ctx, runID)
	sim.Stop()
	if err != nil {
		s.progress(leadID, float64(sim.Value()), "Scan failed")
		return err
	}

	s.progress(leadID, 100, "Saving scan results")
	if err := s.Persister.Persist(ctx, leadID, userID, platform, item); err != nil {
		return err
	}

	s.progress(leadID, 100, "Scan completed")
	return nil
}

// progress is a best-effort tracker update. A failed write must not abort the
// scan, so it is only logged.
func (s *Service) progress(leadID string, pct float64, currentFile string) {
	if s.Progress == nil {
		return
	}
	if err := s.Progress.Update(leadID, pct, currentFile); err != nil {
		log.Printf("Error updating scan progress for lead %s: %v", leadID, err)
	}
}
