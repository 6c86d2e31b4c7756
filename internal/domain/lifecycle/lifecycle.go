// Package lifecycle holds shared bounds for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (DB ping, migrations, HTTP shutdown).
const DefaultTimeout = 15 * time.Second
