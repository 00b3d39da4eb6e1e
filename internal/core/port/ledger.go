package port

import (
	"context"

	"crowdvault/internal/core/domain"

	"github.com/google/uuid"
)

// ConfirmFunc is invoked by ledger operations after all writes for the
// operation have been staged but before they become visible. The amount is
// the value the operation settled on under the campaign lock. Returning an
// error aborts the operation and discards every staged write.
//
// Implementations use it to move funds at the escrow boundary: the money
// movement and the ledger writes then succeed or fail together.
type ConfirmFunc func(ctx context.Context, amount int64) error

// Ledger defines the persistence layer for campaigns, per-contributor
// entries and the transfer journal. It is an outbound port in hexagonal
// architecture. Each method is a single atomic operation: implementations
// must serialize operations touching the same campaign and guarantee that
// a failed confirm leaves no trace.
type Ledger interface {
	// CreateCampaign stores a new campaign and returns its assigned id.
	// Ids are assigned in increasing order.
	CreateCampaign(ctx context.Context, c domain.Campaign) (int64, error)

	// Campaign returns a campaign by id, or domain.ErrUnknownCampaign.
	Campaign(ctx context.Context, id int64) (domain.Campaign, error)

	// Campaigns lists all campaigns, newest first.
	Campaigns(ctx context.Context) ([]domain.Campaign, error)

	// Contribution returns the recorded entry for the contributor, or 0
	// when none exists. Unknown campaign ids yield domain.ErrUnknownCampaign.
	Contribution(ctx context.Context, id int64, contributor string) (int64, error)

	// Contribute adds amount to the contributor's entry and to the campaign
	// total, appending a journal row with the given reference. The goal
	// bound is re-checked under the campaign lock; exceeding it yields a
	// *domain.GoalExceededError.
	Contribute(ctx context.Context, id int64, contributor string, amount int64, ref uuid.UUID, confirm ConfirmFunc) error

	// ClearContribution zeroes the contributor's entry, leaving the campaign
	// total untouched, and appends a journal row. It returns the amount the
	// entry held; a zero entry yields domain.ErrNoContribution.
	ClearContribution(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm ConfirmFunc) (int64, error)

	// RecordWithdrawal appends a journal row paying the campaign goal out to
	// the owner and returns that amount. Campaign state is not modified, so
	// the operation remains repeatable.
	RecordWithdrawal(ctx context.Context, id int64, ref uuid.UUID, confirm ConfirmFunc) (int64, error)

	// RecordRefund re-reads the contributor's entry under the campaign lock,
	// appends a journal row paying it back and returns the amount. The entry
	// itself is kept, so the operation remains repeatable. A zero entry
	// yields domain.ErrNoContribution; on a campaign that reached its goal
	// nothing is recorded and zero is returned.
	RecordRefund(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm ConfirmFunc) (int64, error)

	// Transfers lists the journal rows for a campaign in append order.
	Transfers(ctx context.Context, id int64) ([]domain.Transfer, error)
}
