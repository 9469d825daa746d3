package scan

import "fmt"

// LaunchError means the remote scraping run could not be started. Body holds
// the raw response for diagnostics.
type LaunchError struct {
	StatusCode int
	Body       string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch scan run (status %d): %s", e.StatusCode, e.Body)
}

// FetchError means a dataset poll request came back non-2xx. The poll loop
// treats it as fatal and aborts immediately.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch scan results (status %d): %s", e.StatusCode, e.Body)
}

// TimeoutError means the poll ceiling was reached without any data item.
// The caller should ask the user to retry.
type TimeoutError struct {
	RunID    string
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no scan data for run %s after %d attempts, please try again", e.RunID, e.Attempts)
}

// PersistenceError wraps a failed write step of the persister. Earlier steps
// of the sequence are not rolled back.
type PersistenceError struct {
	Step string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("scan persistence failed at %s: %v", e.Step, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
