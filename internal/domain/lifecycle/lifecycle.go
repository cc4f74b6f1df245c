// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps like pinging the database
// or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
