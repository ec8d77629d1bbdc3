// Package ports defines the interfaces (driven and driving ports)
// between the reel-detox session logic and its infrastructure.
package ports

import "time"

// Scheduler arms repeating timers for the session controller.
// This is a driven port (implemented by adapters).
type Scheduler interface {
	// Every calls fn once per interval until the returned cancel func is called.
	// Cancel must not wait for an in-flight fn to return, and fn may still run
	// once after cancel; callers drop such stale calls themselves.
	Every(interval time.Duration, fn func()) (cancel func())
}
