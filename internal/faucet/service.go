package faucet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/halcyon-network/faucet-bot/internal/ethereum"
	"github.com/halcyon-network/faucet-bot/internal/models"
	"github.com/halcyon-network/faucet-bot/pkg/utils"
	"go.uber.org/zap"
)

// Ledger is the narrow chain interface the faucet depends on
type Ledger interface {
	// SendTokens signs and broadcasts a transfer of amount smallest
	// units to the recipient, returning the transaction hash
	SendTokens(ctx context.Context, to string, amount *big.Int) (string, error)
	// Balance returns the recipient's balance in smallest units
	Balance(ctx context.Context, address string) (*big.Int, error)
}

// Service admits or rejects faucet requests and serves balance queries
type Service struct {
	limiter *RateLimiter
	ledger  Ledger
	logger  *zap.Logger
	tokens  int
}

// NewService creates a faucet service sending tokenCount whole tokens
// per grant
func NewService(limiter *RateLimiter, ledger Ledger, logger *zap.Logger, tokenCount int) *Service {
	return &Service{
		limiter: limiter,
		ledger:  ledger,
		logger:  logger,
		tokens:  tokenCount,
	}
}

// TokensPerSend returns the whole-token amount sent per grant
func (s *Service) TokensPerSend() int {
	return s.tokens
}

// Send admits or rejects a funding request for the requester and, if
// admitted, transfers the configured amount to the address.
//
// The grant is recorded as soon as the request is admitted, before the
// broadcast is awaited, so a slow or failing RPC call cannot be used
// to obtain two grants inside one cooldown window. The flip side is
// that a failed broadcast still consumes the requester's cooldown.
func (s *Service) Send(ctx context.Context, requesterID, address string) (*models.Grant, error) {
	now := time.Now()

	if !s.limiter.Eligible(requesterID, now) {
		wait := FormatWait(s.limiter.TimeUntilEligible(requesterID, now))
		s.logger.Info("Faucet request rejected, cooldown active",
			zap.String("requester", requesterID),
			zap.String("remaining", wait),
		)
		return nil, &models.Rejection{Kind: models.RejectionCooldownActive, Wait: wait}
	}

	if err := utils.ValidateAddress(address); err != nil {
		s.logger.Info("Faucet request rejected, invalid address",
			zap.String("requester", requesterID),
			zap.String("address", address),
		)
		return nil, &models.Rejection{Kind: models.RejectionInvalidAddress}
	}
	recipient := utils.NormalizeAddress(address)

	s.limiter.RecordGrant(requesterID, now)

	amount := ethereum.TokensToWei(s.tokens)

	s.logger.Info("Transferring tokens",
		zap.String("requester", requesterID),
		zap.String("recipient", recipient),
		zap.Int("tokens", s.tokens),
	)

	txHash, err := s.ledger.SendTokens(ctx, recipient, amount)
	if err != nil {
		s.logger.Error("Failed to send tokens",
			zap.Error(err),
			zap.String("recipient", recipient),
		)
		return nil, fmt.Errorf("failed to send tokens: %w", err)
	}

	balance, err := s.ledger.Balance(ctx, recipient)
	if err != nil {
		s.logger.Error("Failed to query recipient balance",
			zap.Error(err),
			zap.String("recipient", recipient),
		)
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}

	s.logger.Info("Tokens sent",
		zap.String("tx_hash", txHash),
		zap.String("recipient", recipient),
		zap.Int("tokens", s.tokens),
	)

	return &models.Grant{
		Address: recipient,
		TxHash:  txHash,
		Tokens:  s.tokens,
		Balance: ethereum.WeiToTokens(balance),
	}, nil
}

// BalanceOf reports the whole-token balance of an address. No rate
// limiting applies to balance queries.
func (s *Service) BalanceOf(ctx context.Context, address string) (*models.BalanceReport, error) {
	if err := utils.ValidateAddress(address); err != nil {
		return nil, &models.Rejection{Kind: models.RejectionInvalidAddress}
	}
	recipient := utils.NormalizeAddress(address)

	balance, err := s.ledger.Balance(ctx, recipient)
	if err != nil {
		s.logger.Error("Failed to query balance",
			zap.Error(err),
			zap.String("address", recipient),
		)
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}

	return &models.BalanceReport{
		Address: recipient,
		Balance: ethereum.WeiToTokens(balance),
	}, nil
}
