package port

import (
	"context"
	"time"

	"crowdvault/internal/core/domain"
)

// CampaignUseCase defines the business operations of the fundraising
// ledger. This interface represents the primary port into the application
// domain. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// CreateCampaign opens a campaign owned by caller. The deadline is the
	// current time plus req.Duration. It returns the new campaign id.
	CreateCampaign(ctx context.Context, caller string, req CreateCampaignReq) (int64, error)

	// Contribute moves amount from caller into escrow and records it
	// against the campaign. Owners cannot contribute to their own
	// campaigns, amounts must be positive and the campaign total may not
	// exceed the goal. Contributions are accepted as long as the campaign
	// is under goal, even past the deadline.
	Contribute(ctx context.Context, caller string, campaignID int64, amount int64) error

	// CancelContribution pays the caller's entry back out of escrow and
	// zeroes it. Only possible before the deadline. The campaign total is
	// not reduced, so the freed room is not reopened to others. Returns the
	// amount paid back.
	CancelContribution(ctx context.Context, caller string, campaignID int64) (int64, error)

	// Withdraw pays the campaign goal out of escrow to the owner. Only the
	// owner may call it, only once the deadline has passed and the goal is
	// reached. The amount paid is the goal, regardless of the total raised.
	// Returns the amount paid.
	Withdraw(ctx context.Context, caller string, campaignID int64) (int64, error)

	// Refund pays the caller's entry back out of escrow once the deadline
	// has passed on a campaign that missed its goal. On a campaign that is
	// still open or reached its goal the call succeeds without moving
	// funds. Returns the amount paid, zero in the no-op case.
	Refund(ctx context.Context, caller string, campaignID int64) (int64, error)

	// Campaign returns a snapshot of the campaign, including remaining time
	// and derived status.
	Campaign(ctx context.Context, id int64) (CampaignInfo, error)

	// Campaigns lists snapshots of all campaigns, newest first.
	Campaigns(ctx context.Context) ([]CampaignInfo, error)

	// Contribution returns the contributor's recorded entry for the
	// campaign, with a zero amount when none exists.
	Contribution(ctx context.Context, campaignID int64, contributor string) (domain.Contribution, error)

	// Transfers lists the escrow journal for a campaign in append order.
	Transfers(ctx context.Context, campaignID int64) ([]domain.Transfer, error)
}

// CreateCampaignReq carries the caller-supplied campaign parameters.
type CreateCampaignReq struct {
	Asset    string
	Goal     int64
	Duration time.Duration
}

// CampaignInfo is the read model returned to clients. Remaining is the
// time left until the deadline, zero once it has passed.
type CampaignInfo struct {
	ID           int64
	Owner        string
	Asset        string
	Goal         int64
	AmountRaised int64
	Deadline     time.Time
	Remaining    time.Duration
	Status       domain.Status
}
