package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssetTransfer moves funds between external accounts and the escrow pool
// backing the ledger. It is an outbound port; the reference identifies a
// movement so retried calls are applied at most once.
type AssetTransfer interface {
	// TransferIn pulls amount of asset from the account into escrow.
	TransferIn(ctx context.Context, asset, from string, amount int64, ref uuid.UUID) error
	// TransferOut pays amount of asset from escrow to the account.
	TransferOut(ctx context.Context, asset, to string, amount int64, ref uuid.UUID) error
}

// Clock supplies the current time to the application. Deadline checks go
// through it so tests can pin time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
