package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crowdvault/internal/adapter/memory"
	"crowdvault/internal/adapter/transfer"
	"crowdvault/internal/adapter/usecase"
	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler *Handler
	bank    *transfer.Bank
	now     time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	ts.bank = transfer.NewBank("escrow")
	svc := usecase.NewCampaignUseCase(
		memory.NewLedger(),
		ts.bank,
		port.ClockFunc(func() time.Time { return ts.now }),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts.handler = NewHandler(svc, domain.NewAllowlist([]string{"USD", "EUR"}), HeaderAuth("X-Caller"), nil, logger)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, rd)
	if caller != "" {
		req.Header.Set("X-Caller", caller)
	}
	rec := httptest.NewRecorder()
	ts.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	decodeBody(t, rec, &resp)
	return resp.Error.Code
}

func (ts *testServer) createCampaign(t *testing.T, owner, asset string, goal, durationSeconds int64) int64 {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns", owner, createCampaignRequest{
		Asset:           asset,
		Goal:            goal,
		DurationSeconds: durationSeconds,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	return resp["id"]
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestCreateCampaignEndpoint(t *testing.T) {
	ts := newTestServer(t)

	id := ts.createCampaign(t, "alice", "USD", 100, 3600)
	require.Equal(t, int64(1), id)

	rec := ts.do(t, http.MethodGet, "/api/v1/campaigns/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp campaignResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "alice", resp.Owner)
	assert.Equal(t, "USD", resp.Asset)
	assert.Equal(t, int64(100), resp.Goal)
	assert.Equal(t, int64(3600), resp.RemainingSeconds)
	assert.Equal(t, string(domain.StatusOpen), resp.Status)
	assert.True(t, resp.Deadline.Equal(ts.now.Add(time.Hour)))
}

func TestCreateCampaignRejectsNegativeParameters(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns", "alice", createCampaignRequest{Asset: "USD", Goal: -1, DurationSeconds: 3600})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns", "alice", createCampaignRequest{Asset: "USD", Goal: 100, DurationSeconds: -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCampaignIgnoresAllowlist(t *testing.T) {
	ts := newTestServer(t)

	// the allow-list is advertised on /assets but not enforced here
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns", "alice", createCampaignRequest{Asset: "DOGE", Goal: 100, DurationSeconds: 3600})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMutatingEndpointsRequireCaller(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns", "", createCampaignRequest{Asset: "USD", Goal: 100, DurationSeconds: 3600})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "", contributeRequest{Amount: 10})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContributionEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.bank.Credit("USD", "bob", 1000)
	ts.createCampaign(t, "alice", "USD", 100, 3600)

	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 60})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(60), resp["contributed"])

	rec = ts.do(t, http.MethodGet, "/api/v1/campaigns/1/contributions/bob", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entry map[string]any
	decodeBody(t, rec, &entry)
	assert.Equal(t, float64(60), entry["amount"])

	// rejections carry their error codes
	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/999/contributions", "bob", contributeRequest{Amount: 10})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_campaign", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "alice", contributeRequest{Amount: 10})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "owner_contribution", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_amount", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: -5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 50})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "goal_exceeded", errorCode(t, rec))

	// a failed escrow transfer surfaces as a bad gateway
	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "pauper", contributeRequest{Amount: 10})
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "transfer_failed", errorCode(t, rec))
}

func TestCancelContributionEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.bank.Credit("USD", "bob", 100)
	ts.createCampaign(t, "alice", "USD", 100, 3600)
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 60})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/campaigns/1/contributions", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(60), resp["refunded"])
	assert.Equal(t, int64(100), ts.bank.Balance("USD", "bob"))

	rec = ts.do(t, http.MethodDelete, "/api/v1/campaigns/1/contributions", "bob", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_contribution", errorCode(t, rec))
}

func TestWithdrawAndRefundEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.bank.Credit("USD", "bob", 1000)

	ts.createCampaign(t, "alice", "USD", 100, 3600)
	ts.createCampaign(t, "alice", "USD", 100, 3600)
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 100})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/2/contributions", "bob", contributeRequest{Amount: 30})
	require.Equal(t, http.StatusOK, rec.Code)

	// refunds before the deadline succeed without paying
	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/2/refund", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(0), resp["refunded"])

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/withdrawal", "alice", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "deadline_not_passed", errorCode(t, rec))

	ts.now = ts.now.Add(2 * time.Hour)

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/withdrawal", "bob", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "not_owner", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/1/withdrawal", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(100), resp["withdrawn"])

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/2/withdrawal", "alice", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "goal_not_reached", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/campaigns/2/refund", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(30), resp["refunded"])
}

func TestAssetsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/assets", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, []string{"USD", "EUR"}, resp["assets"])
}

func TestTransfersEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.bank.Credit("USD", "bob", 100)
	ts.createCampaign(t, "alice", "USD", 100, 3600)
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", contributeRequest{Amount: 60})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/campaigns/1/transfers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]transferResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp["transfers"], 1)
	row := resp["transfers"][0]
	assert.Equal(t, "contribute", row.Kind)
	assert.Equal(t, "in", row.Direction)
	assert.Equal(t, "bob", row.Account)
	assert.Equal(t, int64(60), row.Amount)
	assert.NotEmpty(t, row.ID)
}

func TestCampaignListingEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.createCampaign(t, "alice", "USD", 100, 3600)
	ts.createCampaign(t, "carol", "EUR", 200, 7200)

	rec := ts.do(t, http.MethodGet, "/api/v1/campaigns", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]campaignResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp["campaigns"], 2)
	// newest first
	assert.Equal(t, int64(2), resp["campaigns"][0].ID)
	assert.Equal(t, "carol", resp["campaigns"][0].Owner)
	assert.Equal(t, "alice", resp["campaigns"][1].Owner)
}

func TestInvalidCampaignID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/campaigns/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))

	rec = ts.do(t, http.MethodGet, "/api/v1/campaigns/999", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_campaign", errorCode(t, rec))
}
