// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the creativable backend.
type Config struct {
	Port            string
	SupabaseDSN     string
	ApifyToken      string
	MongoURI        string        // optional, raw-payload archive disabled when empty
	PollInterval    time.Duration // cadence of the scan result poller
	MaxPollAttempts int           // poll ceiling before the scan times out
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dsn := os.Getenv("SUPABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("SUPABASE_DSN is required")
	}

	apifyToken := os.Getenv("APIFY_TOKEN")
	if apifyToken == "" {
		return nil, fmt.Errorf("APIFY_TOKEN is required")
	}

	pollSec := 3
	if s := os.Getenv("SCAN_POLL_INTERVAL_SEC"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCAN_POLL_INTERVAL_SEC must be a positive integer, got %q", s)
		}
		pollSec = v
	}

	maxAttempts := 90
	if s := os.Getenv("SCAN_MAX_POLL_ATTEMPTS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCAN_MAX_POLL_ATTEMPTS must be a positive integer, got %q", s)
		}
		maxAttempts = v
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:            port,
		SupabaseDSN:     dsn,
		ApifyToken:      apifyToken,
		MongoURI:        os.Getenv("MONGO_URI"),
		PollInterval:    time.Duration(pollSec) * time.Second,
		MaxPollAttempts: maxAttempts,
	}, nil
}
