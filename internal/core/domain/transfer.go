package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferKind names the ledger operation that moved value through escrow.
type TransferKind string

const (
	TransferContribute TransferKind = "contribute"
	TransferCancel     TransferKind = "cancel"
	TransferWithdraw   TransferKind = "withdraw"
	TransferRefund     TransferKind = "refund"
)

// TransferDirection is the side of escrow the value moved toward.
type TransferDirection string

const (
	DirectionIn  TransferDirection = "in"
	DirectionOut TransferDirection = "out"
)

// Direction reports which way value moves for this kind of transfer:
// contributions flow into escrow, everything else flows out.
func (k TransferKind) Direction() TransferDirection {
	if k == TransferContribute {
		return DirectionIn
	}
	return DirectionOut
}

// Transfer is one journal record of an escrow movement. Records are appended
// in the same atomic scope as the operation that caused them and are never
// updated or deleted. ID doubles as the idempotency reference handed to the
// asset transfer port.
type Transfer struct {
	ID         uuid.UUID
	CampaignID int64
	Kind       TransferKind
	Account    string
	Asset      string
	Amount     int64
	CreatedAt  time.Time
}
