package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small set of demo campaigns into the crowdvault
// database: an open one, a funded one and one past its deadline under
// goal. Rows are keyed on fixed ids and skipped when already present, so
// reseeding an existing database is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now()

	campaigns := []struct {
		id       int64
		owner    string
		asset    string
		goal     int64
		raised   int64
		deadline time.Time
	}{
		{1, "alice", "USD", 50000, 12500, now.AddDate(0, 0, 21)},
		{2, "bob", "USD", 20000, 20000, now.AddDate(0, 0, 7)},
		{3, "carol", "EUR", 80000, 30000, now.AddDate(0, 0, -3)},
	}
	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_account, asset, goal, amount_raised, deadline, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
			c.id, c.owner, c.asset, c.goal, c.raised, c.deadline)
		if err != nil {
			return err
		}
	}

	contributions := []struct {
		campaignID  int64
		contributor string
		amount      int64
	}{
		{1, "dave", 10000},
		{1, "erin", 2500},
		{2, "dave", 20000},
		{3, "frank", 30000},
	}
	for _, ct := range contributions {
		_, err := db.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, ct.campaignID, ct.contributor, ct.amount)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO transfers (id, campaign_id, kind, account, asset, amount)
SELECT $1, c.id, 'contribute', $3, c.asset, $4 FROM campaigns c WHERE c.id = $2
AND NOT EXISTS (
    SELECT 1 FROM transfers t
    WHERE t.campaign_id = $2 AND t.account = $3 AND t.kind = 'contribute'
)`, uuid.New(), ct.campaignID, ct.contributor, ct.amount)
		if err != nil {
			return err
		}
	}

	// keep the id sequence ahead of the fixed ids
	_, err := db.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('campaigns', 'id'), (SELECT COALESCE(MAX(id), 1) FROM campaigns))`)
	return err
}
