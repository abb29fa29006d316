// Package lifecycle holds timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook: database ping, migrations
// and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
