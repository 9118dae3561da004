package projection

import (
	"sync"

	"github.com/edaniels/golog"
)

// The effective-rank cutoff used when no per-call tolerance is given. It is process-wide,
// intended to be set once during startup and left alone afterwards; nothing in the hot path
// takes a lock beyond the read here.

var (
	defaultRankMu  sync.RWMutex
	defaultRankSet bool
	defaultRankVal = -1.0 // negative means derive from matrix dimensions and machine epsilon
)

// DefaultRankTolerance returns the process-wide effective-rank rcond. A negative value tells
// the pseudo-inverse to derive the cutoff from the matrix dimensions and machine epsilon.
func DefaultRankTolerance() float64 {
	defaultRankMu.RLock()
	defer defaultRankMu.RUnlock()
	return defaultRankVal
}

// SetDefaultRankTolerance overrides the process-wide effective-rank rcond. Only the first call
// takes effect; later calls are ignored with a warning, keeping the configuration immutable
// once the process is running.
func SetDefaultRankTolerance(rcond float64, logger golog.Logger) {
	defaultRankMu.Lock()
	defer defaultRankMu.Unlock()
	if defaultRankSet {
		if logger != nil {
			logger.Warnw("default rank tolerance already set, ignoring", "rcond", rcond)
		}
		return
	}
	defaultRankSet = true
	defaultRankVal = rcond
}
