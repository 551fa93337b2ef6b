package service

import (
	"errors"

	"ems_backend/internals/constants"
)

// ErrSessionCompleted is returned when an advance is attempted on a session
// already at the end of the chain.
var ErrSessionCompleted = errors.New("session is already completed")

var statusChain = map[string]string{
	constants.SessionScheduled:        constants.SessionIdentifyingEntry,
	constants.SessionIdentifyingEntry: constants.SessionInProgress,
	constants.SessionInProgress:       constants.SessionIdentifyingExit,
	constants.SessionIdentifyingExit:  constants.SessionCompleted,
}

// NextSessionStatus returns the single next status in the fixed chain.
// COMPLETED is terminal; anything unrecognized is rejected.
func NextSessionStatus(current string) (string, error) {
	if current == constants.SessionCompleted {
		return "", ErrSessionCompleted
	}
	next, ok := statusChain[current]
	if !ok {
		return "", errors.New("unknown session status: " + current)
	}
	return next, nil
}
