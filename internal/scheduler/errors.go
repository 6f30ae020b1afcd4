// Package scheduler provides the periodic reconciliation loop for the engine.
package scheduler

import "errors"

var (
	ErrSweeperAlreadyRunning = errors.New("sweeper is already running")
	ErrSweeperNotRunning     = errors.New("sweeper is not running")
)
