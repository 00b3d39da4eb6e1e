package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TreasuryClient is an AssetTransfer backed by an external treasury
// service. Movements are posted to {base}/transfers; the reference lets
// the treasury deduplicate retried requests.
type TreasuryClient struct {
	base   string
	client *http.Client
}

func NewTreasuryClient(baseURL string, timeout time.Duration) *TreasuryClient {
	return &TreasuryClient{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

type transferRequest struct {
	Reference string `json:"reference"`
	Direction string `json:"direction"`
	Asset     string `json:"asset"`
	Account   string `json:"account"`
	Amount    int64  `json:"amount"`
}

func (t *TreasuryClient) TransferIn(ctx context.Context, asset, from string, amount int64, ref uuid.UUID) error {
	return t.post(ctx, transferRequest{
		Reference: ref.String(),
		Direction: "in",
		Asset:     asset,
		Account:   from,
		Amount:    amount,
	})
}

func (t *TreasuryClient) TransferOut(ctx context.Context, asset, to string, amount int64, ref uuid.UUID) error {
	return t.post(ctx, transferRequest{
		Reference: ref.String(),
		Direction: "out",
		Asset:     asset,
		Account:   to,
		Amount:    amount,
	})
}

func (t *TreasuryClient) post(ctx context.Context, body transferRequest) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.base+"/transfers", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("transfer request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("treasury status %d: %s", res.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
