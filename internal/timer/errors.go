// Package timer provides the handoff timer that delays automation promotion.
package timer

import "errors"

var (
	ErrTimerStopped = errors.New("timer service is stopped")
)
