package api

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halcyon-network/faucet-bot/internal/config"
	"github.com/halcyon-network/faucet-bot/internal/ethereum"
	"github.com/halcyon-network/faucet-bot/internal/faucet"
	"github.com/halcyon-network/faucet-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLedger struct {
	balance *big.Int
}

func (s *stubLedger) SendTokens(_ context.Context, _ string, _ *big.Int) (string, error) {
	return "0xdeadbeef", nil
}

func (s *stubLedger) Balance(_ context.Context, _ string) (*big.Int, error) {
	return s.balance, nil
}

func newTestApp() *fiber.App {
	cfg := &config.Config{
		Network:       "devnet",
		TokenCount:    10,
		CooldownHours: 1,
	}
	svc := faucet.NewService(
		faucet.NewRateLimiter(time.Hour),
		&stubLedger{balance: ethereum.TokensToWei(500)},
		zap.NewNop(),
		cfg.TokenCount,
	)
	handler := NewHandler(cfg, zap.NewNop(), svc, "0x"+strings.Repeat("f", 40))

	app := fiber.New()
	SetupRoutes(app, handler)
	return app
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.NotZero(t, body.Timestamp)
}

func TestGetInfo(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/info", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.InfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "devnet", body.Network)
	assert.Equal(t, "500", body.FaucetBalance)
	assert.Equal(t, 10, body.TokensPerSend)
	assert.Equal(t, 1, body.CooldownHours)
}

func TestGetBalance(t *testing.T) {
	app := newTestApp()
	addr := strings.Repeat("a", 40)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/balance/0x"+addr, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0x"+addr, body.Address)
	assert.Equal(t, "500", body.Balance)
}

func TestGetBalanceInvalidAddress(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/balance/nonsense", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid address", body.Error)
}
