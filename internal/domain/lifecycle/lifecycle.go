// Package lifecycle holds shared timing for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook.
const DefaultTimeout = 10 * time.Second
