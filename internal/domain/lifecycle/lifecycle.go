// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
