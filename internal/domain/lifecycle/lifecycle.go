// Package lifecycle holds timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (db ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
