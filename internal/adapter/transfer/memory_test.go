package transfer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankMovesFunds(t *testing.T) {
	b := NewBank("escrow")
	ctx := context.Background()
	b.Credit("USD", "bob", 100)

	require.NoError(t, b.TransferIn(ctx, "USD", "bob", 60, uuid.New()))
	assert.Equal(t, int64(40), b.Balance("USD", "bob"))
	assert.Equal(t, int64(60), b.Balance("USD", "escrow"))

	require.NoError(t, b.TransferOut(ctx, "USD", "carol", 25, uuid.New()))
	assert.Equal(t, int64(35), b.Balance("USD", "escrow"))
	assert.Equal(t, int64(25), b.Balance("USD", "carol"))
}

func TestBankInsufficientFunds(t *testing.T) {
	b := NewBank("escrow")
	ctx := context.Background()
	b.Credit("USD", "bob", 10)

	err := b.TransferIn(ctx, "USD", "bob", 11, uuid.New())
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(10), b.Balance("USD", "bob"))
	assert.Zero(t, b.Balance("USD", "escrow"))

	err = b.TransferOut(ctx, "USD", "bob", 1, uuid.New())
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestBankAppliesReferenceOnce(t *testing.T) {
	b := NewBank("escrow")
	ctx := context.Background()
	b.Credit("USD", "bob", 100)

	ref := uuid.New()
	require.NoError(t, b.TransferIn(ctx, "USD", "bob", 30, ref))
	require.NoError(t, b.TransferIn(ctx, "USD", "bob", 30, ref))

	assert.Equal(t, int64(70), b.Balance("USD", "bob"))
	assert.Equal(t, int64(30), b.Balance("USD", "escrow"))
}

func TestBankKeepsAssetsApart(t *testing.T) {
	b := NewBank("escrow")
	ctx := context.Background()
	b.Credit("USD", "bob", 50)
	b.Credit("EUR", "bob", 5)

	err := b.TransferIn(ctx, "EUR", "bob", 10, uuid.New())
	require.ErrorIs(t, err, ErrInsufficientFunds)

	require.NoError(t, b.TransferIn(ctx, "USD", "bob", 10, uuid.New()))
	assert.Equal(t, int64(5), b.Balance("EUR", "bob"))
	assert.Equal(t, int64(40), b.Balance("USD", "bob"))
}
