// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background jobs.
const DefaultTimeout = 10 * time.Second
