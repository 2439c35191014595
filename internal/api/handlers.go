package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halcyon-network/faucet-bot/internal/config"
	"github.com/halcyon-network/faucet-bot/internal/faucet"
	"github.com/halcyon-network/faucet-bot/internal/models"
	"go.uber.org/zap"
)

// Handler contains dependencies for the ops API handlers
type Handler struct {
	config        *config.Config
	logger        *zap.Logger
	faucet        *faucet.Service
	faucetAddress string
}

// NewHandler creates a new ops API handler
func NewHandler(cfg *config.Config, logger *zap.Logger, svc *faucet.Service, faucetAddress string) *Handler {
	return &Handler{
		config:        cfg,
		logger:        logger,
		faucet:        svc,
		faucetAddress: faucetAddress,
	}
}

// Health returns the health status of the bot
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Unix(),
	})
}

// GetInfo returns information about the running faucet, including the
// faucet account's own balance
func (h *Handler) GetInfo(c *fiber.Ctx) error {
	ctx := context.Background()

	faucetBalance := "unknown"
	report, err := h.faucet.BalanceOf(ctx, h.faucetAddress)
	if err != nil {
		h.logger.Error("Failed to query faucet balance", zap.Error(err))
	} else {
		faucetBalance = report.Balance.String()
	}

	return c.JSON(models.InfoResponse{
		Network:       h.config.Network,
		FaucetAddress: h.faucetAddress,
		FaucetBalance: faucetBalance,
		TokensPerSend: h.faucet.TokensPerSend(),
		CooldownHours: h.config.CooldownHours,
	})
}

// GetBalance returns the whole-token balance of an address
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	ctx := context.Background()

	address := c.Params("address")

	report, err := h.faucet.BalanceOf(ctx, address)
	if err != nil {
		var rejection *models.Rejection
		if errors.As(err, &rejection) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: "Invalid address",
			})
		}
		h.logger.Error("Failed to query balance", zap.Error(err), zap.String("address", address))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to query balance",
		})
	}

	return c.JSON(models.BalanceResponse{
		Address: "0x" + report.Address,
		Balance: report.Balance.String(),
	})
}
