package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCampaign rejects any operation on a campaign id that was
	// never created.
	ErrUnknownCampaign = errors.New("unknown campaign")
	// ErrOwnerContribution rejects a contribution from the campaign owner.
	ErrOwnerContribution = errors.New("campaign owner cannot contribute")
	// ErrInvalidAmount rejects a non-positive contribution amount.
	ErrInvalidAmount = errors.New("contribution amount must be positive")
	// ErrDeadlinePassed rejects a cancellation at or after the deadline.
	ErrDeadlinePassed = errors.New("campaign deadline has passed")
	// ErrDeadlineNotPassed rejects a withdrawal before the deadline.
	ErrDeadlineNotPassed = errors.New("campaign deadline has not passed")
	// ErrGoalNotReached rejects a withdrawal while the raised total is
	// below the goal.
	ErrGoalNotReached = errors.New("campaign goal not reached")
	// ErrNoContribution rejects cancellation or refund for a caller with
	// no deposited amount on record.
	ErrNoContribution = errors.New("no contribution on record")
	// ErrTransferFailed marks an operation aborted because the escrow
	// boundary refused the asset movement. The ledger is left untouched.
	ErrTransferFailed = errors.New("asset transfer failed")
)

// GoalExceededError rejects a contribution that would push the raised total
// past the campaign goal. The totals are included so callers can report how
// much room is left.
type GoalExceededError struct {
	Goal   int64
	Raised int64
	Amount int64
}

func (e *GoalExceededError) Error() string {
	return fmt.Sprintf("contribution of %d exceeds goal %d (raised %d)", e.Amount, e.Goal, e.Raised)
}

// NotOwnerError rejects a withdrawal attempt by anyone but the campaign
// owner.
type NotOwnerError struct {
	Caller string
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("caller %q is not the campaign owner", e.Caller)
}
