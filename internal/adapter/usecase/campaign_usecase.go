package usecase

import (
	"context"
	"fmt"
	"time"

	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"

	"github.com/google/uuid"
)

// CampaignUseCase provides the business logic of the fundraising ledger.
// It orchestrates the ledger and the escrow boundary to implement the
// CampaignUseCase interface. Money only moves inside a ledger confirm
// callback, so a failed transfer leaves the ledger untouched.
type CampaignUseCase struct {
	ledger port.Ledger
	escrow port.AssetTransfer
	clock  port.Clock
}

// NewCampaignUseCase creates a new usecase over the given ledger, escrow
// boundary and clock.
func NewCampaignUseCase(ledger port.Ledger, escrow port.AssetTransfer, clock port.Clock) *CampaignUseCase {
	return &CampaignUseCase{ledger: ledger, escrow: escrow, clock: clock}
}

// CreateCampaign opens a campaign owned by caller with a deadline of now
// plus the requested duration. The campaign parameters are stored as
// given; asset and goal are not screened here.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller string, req port.CreateCampaignReq) (int64, error) {
	now := u.clock.Now()
	return u.ledger.CreateCampaign(ctx, domain.Campaign{
		Owner:     caller,
		Asset:     req.Asset,
		Goal:      req.Goal,
		Deadline:  now.Add(req.Duration),
		CreatedAt: now,
	})
}

// Contribute pulls amount from the caller's account into escrow and
// records it against the campaign. The campaign must exist, the caller
// must not be the owner, the amount must be positive and the campaign
// total may not exceed the goal. The deadline is not consulted: a
// campaign still under goal keeps accepting contributions after it.
func (u *CampaignUseCase) Contribute(ctx context.Context, caller string, campaignID int64, amount int64) error {
	c, err := u.ledger.Campaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c.Owner == caller {
		return domain.ErrOwnerContribution
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	ref := uuid.New()
	return u.ledger.Contribute(ctx, campaignID, caller, amount, ref, u.pullFrom(c.Asset, caller, ref))
}

// CancelContribution pays the caller's recorded entry back out of escrow
// and zeroes it. Cancelling is only possible before the deadline. The
// campaign total is left as it was, so the cancelled room is not reopened
// to other contributors.
func (u *CampaignUseCase) CancelContribution(ctx context.Context, caller string, campaignID int64) (int64, error) {
	c, err := u.ledger.Campaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if !u.clock.Now().Before(c.Deadline) {
		return 0, domain.ErrDeadlinePassed
	}

	ref := uuid.New()
	return u.ledger.ClearContribution(ctx, campaignID, caller, ref, u.payTo(c.Asset, caller, ref))
}

// Withdraw pays the campaign goal out of escrow to the owner. Only the
// owner may withdraw, only once the deadline has passed and the goal is
// reached. The amount paid is the goal, regardless of the total raised,
// and no flag is kept: a repeated call pays again.
func (u *CampaignUseCase) Withdraw(ctx context.Context, caller string, campaignID int64) (int64, error) {
	c, err := u.ledger.Campaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if c.Owner != caller {
		return 0, &domain.NotOwnerError{Caller: caller}
	}
	if u.clock.Now().Before(c.Deadline) {
		return 0, domain.ErrDeadlineNotPassed
	}
	if !c.Funded() {
		return 0, domain.ErrGoalNotReached
	}

	ref := uuid.New()
	return u.ledger.RecordWithdrawal(ctx, campaignID, ref, u.payTo(c.Asset, c.Owner, ref))
}

// Refund pays the caller's recorded entry back out of escrow on a
// campaign that missed its goal after the deadline. The caller must have
// a non-zero entry. While the campaign is still open, or when it reached
// its goal, the call succeeds without moving funds. The entry is kept as
// recorded, so a repeated call on a missed campaign pays again.
func (u *CampaignUseCase) Refund(ctx context.Context, caller string, campaignID int64) (int64, error) {
	c, err := u.ledger.Campaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	entry, err := u.ledger.Contribution(ctx, campaignID, caller)
	if err != nil {
		return 0, err
	}
	if entry == 0 {
		return 0, domain.ErrNoContribution
	}
	if u.clock.Now().Before(c.Deadline) {
		return 0, nil
	}

	ref := uuid.New()
	return u.ledger.RecordRefund(ctx, campaignID, caller, ref, u.payTo(c.Asset, caller, ref))
}

// Campaign returns a snapshot of the campaign at the current time.
func (u *CampaignUseCase) Campaign(ctx context.Context, id int64) (port.CampaignInfo, error) {
	c, err := u.ledger.Campaign(ctx, id)
	if err != nil {
		return port.CampaignInfo{}, err
	}
	return snapshot(c, u.clock.Now()), nil
}

// Campaigns lists snapshots of all campaigns, newest first.
func (u *CampaignUseCase) Campaigns(ctx context.Context) ([]port.CampaignInfo, error) {
	list, err := u.ledger.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	out := make([]port.CampaignInfo, len(list))
	for i, c := range list {
		out[i] = snapshot(c, now)
	}
	return out, nil
}

// Contribution returns the contributor's recorded entry for the campaign,
// with a zero amount when none exists.
func (u *CampaignUseCase) Contribution(ctx context.Context, campaignID int64, contributor string) (domain.Contribution, error) {
	amount, err := u.ledger.Contribution(ctx, campaignID, contributor)
	if err != nil {
		return domain.Contribution{}, err
	}
	return domain.Contribution{CampaignID: campaignID, Contributor: contributor, Amount: amount}, nil
}

// Transfers lists the escrow journal for a campaign in append order.
func (u *CampaignUseCase) Transfers(ctx context.Context, campaignID int64) ([]domain.Transfer, error) {
	return u.ledger.Transfers(ctx, campaignID)
}

// pullFrom builds a confirm callback moving funds from the account into
// escrow under the given reference.
func (u *CampaignUseCase) pullFrom(asset, account string, ref uuid.UUID) port.ConfirmFunc {
	return func(ctx context.Context, amount int64) error {
		if err := u.escrow.TransferIn(ctx, asset, account, amount, ref); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	}
}

// payTo builds a confirm callback paying funds out of escrow to the
// account under the given reference.
func (u *CampaignUseCase) payTo(asset, account string, ref uuid.UUID) port.ConfirmFunc {
	return func(ctx context.Context, amount int64) error {
		if err := u.escrow.TransferOut(ctx, asset, account, amount, ref); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	}
}

func snapshot(c domain.Campaign, now time.Time) port.CampaignInfo {
	return port.CampaignInfo{
		ID:           c.ID,
		Owner:        c.Owner,
		Asset:        c.Asset,
		Goal:         c.Goal,
		AmountRaised: c.AmountRaised,
		Deadline:     c.Deadline,
		Remaining:    c.Remaining(now),
		Status:       c.StatusAt(now),
	}
}
