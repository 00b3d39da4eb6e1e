package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"

	"github.com/google/uuid"
)

type contribKey struct {
	campaignID  int64
	contributor string
}

// Ledger is an in-memory port.Ledger. A single mutex is held for the whole
// of every mutating operation, including the confirm callback, so
// operations execute strictly one at a time. It favors clarity over
// performance and doubles as the reference for the postgres adapter.
type Ledger struct {
	mu        sync.Mutex
	campaigns map[int64]domain.Campaign
	contribs  map[contribKey]int64
	journal   map[int64][]domain.Transfer
	nextID    int64
}

func NewLedger() *Ledger {
	return &Ledger{
		campaigns: make(map[int64]domain.Campaign),
		contribs:  make(map[contribKey]int64),
		journal:   make(map[int64][]domain.Transfer),
	}
}

func (l *Ledger) CreateCampaign(_ context.Context, c domain.Campaign) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	c.ID = l.nextID
	l.campaigns[c.ID] = c
	return c.ID, nil
}

func (l *Ledger) Campaign(_ context.Context, id int64) (domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrUnknownCampaign
	}
	return c, nil
}

func (l *Ledger) Campaigns(_ context.Context) ([]domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Campaign, 0, len(l.campaigns))
	for _, c := range l.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (l *Ledger) Contribution(_ context.Context, id int64, contributor string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.campaigns[id]; !ok {
		return 0, domain.ErrUnknownCampaign
	}
	return l.contribs[contribKey{id, contributor}], nil
}

func (l *Ledger) Contribute(ctx context.Context, id int64, contributor string, amount int64, ref uuid.UUID, confirm port.ConfirmFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return domain.ErrUnknownCampaign
	}
	if c.AmountRaised+amount > c.Goal {
		return &domain.GoalExceededError{Goal: c.Goal, Raised: c.AmountRaised, Amount: amount}
	}

	if err := confirm(ctx, amount); err != nil {
		return err
	}

	key := contribKey{id, contributor}
	l.contribs[key] += amount
	c.AmountRaised += amount
	l.campaigns[id] = c
	l.append(c, domain.TransferContribute, contributor, amount, ref)
	return nil
}

func (l *Ledger) ClearContribution(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm port.ConfirmFunc) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return 0, domain.ErrUnknownCampaign
	}
	key := contribKey{id, contributor}
	amount := l.contribs[key]
	if amount == 0 {
		return 0, domain.ErrNoContribution
	}

	if err := confirm(ctx, amount); err != nil {
		return 0, err
	}

	// the campaign total keeps counting the cancelled entry
	delete(l.contribs, key)
	l.append(c, domain.TransferCancel, contributor, amount, ref)
	return amount, nil
}

func (l *Ledger) RecordWithdrawal(ctx context.Context, id int64, ref uuid.UUID, confirm port.ConfirmFunc) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return 0, domain.ErrUnknownCampaign
	}
	amount := c.Goal

	if err := confirm(ctx, amount); err != nil {
		return 0, err
	}

	l.append(c, domain.TransferWithdraw, c.Owner, amount, ref)
	return amount, nil
}

func (l *Ledger) RecordRefund(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm port.ConfirmFunc) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.campaigns[id]
	if !ok {
		return 0, domain.ErrUnknownCampaign
	}
	amount := l.contribs[contribKey{id, contributor}]
	if amount == 0 {
		return 0, domain.ErrNoContribution
	}
	if c.AmountRaised >= c.Goal {
		return 0, nil
	}

	if err := confirm(ctx, amount); err != nil {
		return 0, err
	}

	// the entry is kept as recorded
	l.append(c, domain.TransferRefund, contributor, amount, ref)
	return amount, nil
}

func (l *Ledger) Transfers(_ context.Context, id int64) ([]domain.Transfer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.campaigns[id]; !ok {
		return nil, domain.ErrUnknownCampaign
	}
	return append([]domain.Transfer{}, l.journal[id]...), nil
}

func (l *Ledger) append(c domain.Campaign, kind domain.TransferKind, account string, amount int64, ref uuid.UUID) {
	l.journal[c.ID] = append(l.journal[c.ID], domain.Transfer{
		ID:         ref,
		CampaignID: c.ID,
		Kind:       kind,
		Account:    account,
		Asset:      c.Asset,
		Amount:     amount,
		CreatedAt:  time.Now(),
	})
}
