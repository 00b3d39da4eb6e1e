package domain

import "time"

// Campaign represents a single fundraising effort.
// Goal and AmountRaised are stored in integer base units of the asset.
type Campaign struct {
	ID           int64
	Owner        string
	Asset        string
	Goal         int64
	AmountRaised int64
	Deadline     time.Time
	CreatedAt    time.Time
}

// Status is the campaign state derived from stored totals and the clock.
// No status field is persisted.
type Status string

const (
	// StatusOpen: pre-deadline, goal not yet met.
	StatusOpen Status = "open"
	// StatusFunded: goal met while the deadline is still in the future.
	StatusFunded Status = "funded"
	// StatusWithdrawable: deadline passed with the goal met.
	StatusWithdrawable Status = "withdrawable"
	// StatusRefundable: deadline passed without meeting the goal.
	StatusRefundable Status = "refundable"
)

// StatusAt derives the campaign status at the given instant.
func (c Campaign) StatusAt(now time.Time) Status {
	funded := c.AmountRaised >= c.Goal
	if now.Before(c.Deadline) {
		if funded {
			return StatusFunded
		}
		return StatusOpen
	}
	if funded {
		return StatusWithdrawable
	}
	return StatusRefundable
}

// Remaining returns the time left until the deadline, saturating at zero
// once the deadline has passed.
func (c Campaign) Remaining(now time.Time) time.Duration {
	d := c.Deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Funded reports whether the raised total has reached the goal.
func (c Campaign) Funded() bool {
	return c.AmountRaised >= c.Goal
}
