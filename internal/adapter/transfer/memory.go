package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrInsufficientFunds rejects a transfer that would take an account
// below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

type acctKey struct {
	asset   string
	account string
}

// Bank is an in-memory AssetTransfer. Every account, the escrow pool
// included, holds a non-negative balance per asset. Transfer references
// are remembered so a replayed reference is applied once.
type Bank struct {
	mu       sync.Mutex
	escrow   string
	balances map[acctKey]int64
	applied  map[uuid.UUID]struct{}
}

// NewBank creates a bank with the given escrow account name. Accounts
// start empty; seed them with Credit.
func NewBank(escrowAccount string) *Bank {
	return &Bank{
		escrow:   escrowAccount,
		balances: make(map[acctKey]int64),
		applied:  make(map[uuid.UUID]struct{}),
	}
}

// Credit adds amount of asset to the account.
func (b *Bank) Credit(asset, account string, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[acctKey{asset, account}] += amount
}

// Balance returns the account's balance for the asset.
func (b *Bank) Balance(asset, account string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[acctKey{asset, account}]
}

func (b *Bank) TransferIn(_ context.Context, asset, from string, amount int64, ref uuid.UUID) error {
	return b.move(acctKey{asset, from}, acctKey{asset, b.escrow}, amount, ref)
}

func (b *Bank) TransferOut(_ context.Context, asset, to string, amount int64, ref uuid.UUID) error {
	return b.move(acctKey{asset, b.escrow}, acctKey{asset, to}, amount, ref)
}

func (b *Bank) move(from, to acctKey, amount int64, ref uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.applied[ref]; ok {
		return nil
	}
	if b.balances[from] < amount {
		return fmt.Errorf("%w: account %q holds %d %s, need %d", ErrInsufficientFunds, from.account, b.balances[from], from.asset, amount)
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	b.applied[ref] = struct{}{}
	return nil
}
