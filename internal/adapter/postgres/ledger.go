package postgres

import (
	"context"
	"errors"

	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const campaignColumns = `id, owner_account, asset, goal, amount_raised, deadline, created_at`

// Ledger implements port.Ledger using pgxpool for PostgreSQL. Every
// mutating operation runs in a serializable transaction that locks the
// campaign row first, so operations on one campaign execute one at a
// time. The confirm callback runs after the writes and before commit: a
// refused transfer rolls the whole operation back.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger returns a new ledger instance.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

func (l *Ledger) CreateCampaign(ctx context.Context, c domain.Campaign) (int64, error) {
	var id int64
	err := l.pool.QueryRow(ctx,
		`INSERT INTO campaigns (owner_account, asset, goal, amount_raised, deadline, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Owner, c.Asset, c.Goal, c.AmountRaised, c.Deadline, c.CreatedAt).Scan(&id)
	return id, err
}

func (l *Ledger) Campaign(ctx context.Context, id int64) (domain.Campaign, error) {
	row := l.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrUnknownCampaign
	}
	return c, err
}

func (l *Ledger) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := l.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		scanErr := row.Scan(&c.ID, &c.Owner, &c.Asset, &c.Goal, &c.AmountRaised, &c.Deadline, &c.CreatedAt)
		return c, scanErr
	})
}

func (l *Ledger) Contribution(ctx context.Context, id int64, contributor string) (int64, error) {
	var amount int64
	err := l.pool.QueryRow(ctx,
		`SELECT COALESCE(ct.amount, 0)
		 FROM campaigns c
		 LEFT JOIN contributions ct ON ct.campaign_id = c.id AND ct.contributor = $2
		 WHERE c.id = $1`,
		id, contributor).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUnknownCampaign
	}
	return amount, err
}

func (l *Ledger) Contribute(ctx context.Context, id int64, contributor string, amount int64, ref uuid.UUID, confirm port.ConfirmFunc) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, id)
	if err != nil {
		return err
	}
	// re-check the bound under the lock
	if c.AmountRaised+amount > c.Goal {
		err = &domain.GoalExceededError{Goal: c.Goal, Raised: c.AmountRaised, Amount: amount}
		return err
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO contributions (campaign_id, contributor, amount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (campaign_id, contributor)
		 DO UPDATE SET amount = contributions.amount + EXCLUDED.amount, updated_at = now()`,
		id, contributor, amount); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx,
		`UPDATE campaigns SET amount_raised = amount_raised + $1 WHERE id = $2`,
		amount, id); err != nil {
		return err
	}
	if err = insertTransfer(ctx, tx, c, domain.TransferContribute, contributor, amount, ref); err != nil {
		return err
	}

	err = confirm(ctx, amount)
	return err
}

func (l *Ledger) ClearContribution(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm port.ConfirmFunc) (amount int64, err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, id)
	if err != nil {
		return 0, err
	}
	err = tx.QueryRow(ctx,
		`SELECT amount FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		id, contributor).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && amount == 0) {
		err = domain.ErrNoContribution
		return 0, err
	}
	if err != nil {
		return 0, err
	}

	// the entry goes, the campaign total stays
	if _, err = tx.Exec(ctx,
		`DELETE FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		id, contributor); err != nil {
		return 0, err
	}
	if err = insertTransfer(ctx, tx, c, domain.TransferCancel, contributor, amount, ref); err != nil {
		return 0, err
	}

	if err = confirm(ctx, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (l *Ledger) RecordWithdrawal(ctx context.Context, id int64, ref uuid.UUID, confirm port.ConfirmFunc) (amount int64, err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, id)
	if err != nil {
		return 0, err
	}
	amount = c.Goal
	if err = insertTransfer(ctx, tx, c, domain.TransferWithdraw, c.Owner, amount, ref); err != nil {
		return 0, err
	}

	if err = confirm(ctx, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (l *Ledger) RecordRefund(ctx context.Context, id int64, contributor string, ref uuid.UUID, confirm port.ConfirmFunc) (amount int64, err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, id)
	if err != nil {
		return 0, err
	}
	err = tx.QueryRow(ctx,
		`SELECT amount FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		id, contributor).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && amount == 0) {
		err = domain.ErrNoContribution
		return 0, err
	}
	if err != nil {
		return 0, err
	}
	// a campaign that reached its goal pays the owner, not the contributors
	if c.AmountRaised >= c.Goal {
		return 0, nil
	}

	// the entry stays on record
	if err = insertTransfer(ctx, tx, c, domain.TransferRefund, contributor, amount, ref); err != nil {
		return 0, err
	}

	if err = confirm(ctx, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (l *Ledger) Transfers(ctx context.Context, id int64) ([]domain.Transfer, error) {
	if _, err := l.Campaign(ctx, id); err != nil {
		return nil, err
	}
	rows, err := l.pool.Query(ctx,
		`SELECT id, campaign_id, kind, account, asset, amount, created_at
		 FROM transfers WHERE campaign_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transfer, error) {
		var t domain.Transfer
		var kind string
		scanErr := row.Scan(&t.ID, &t.CampaignID, &kind, &t.Account, &t.Asset, &t.Amount, &t.CreatedAt)
		t.Kind = domain.TransferKind(kind)
		return t, scanErr
	})
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id int64) (domain.Campaign, error) {
	row := tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrUnknownCampaign
	}
	return c, err
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Owner, &c.Asset, &c.Goal, &c.AmountRaised, &c.Deadline, &c.CreatedAt)
	return c, err
}

func insertTransfer(ctx context.Context, tx pgx.Tx, c domain.Campaign, kind domain.TransferKind, account string, amount int64, ref uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO transfers (id, campaign_id, kind, account, asset, amount)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ref, c.ID, string(kind), account, c.Asset, amount)
	return err
}
