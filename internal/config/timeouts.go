package config

import "time"

// HTTP server timeouts.
//
// Discord enforces a 3 second budget on interaction responses, so the
// write timeout only needs headroom for the single synchronous catalog
// fetch on the command path.
const (
	WebhookHTTPRead  = 10 * time.Second
	WebhookHTTPWrite = 20 * time.Second
	WebhookHTTPIdle  = 120 * time.Second
)
