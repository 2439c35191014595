package models

import (
	"fmt"
	"math/big"
)

// RejectionKind classifies a user-visible faucet rejection
type RejectionKind string

const (
	// RejectionCooldownActive means the requester is still inside the
	// cooldown window of a previous grant
	RejectionCooldownActive RejectionKind = "cooldown_active"

	// RejectionInvalidAddress means the supplied address failed the
	// format check
	RejectionInvalidAddress RejectionKind = "invalid_address"
)

// Rejection is a user-visible refusal of a faucet or balance request.
// It implements error so handlers can return it through the normal
// error path and the dispatch loop can pick it apart for display.
type Rejection struct {
	Kind RejectionKind
	// Wait carries the formatted remaining cooldown, set only for
	// RejectionCooldownActive
	Wait string
}

func (r *Rejection) Error() string {
	switch r.Kind {
	case RejectionCooldownActive:
		return fmt.Sprintf("cooldown active, %s remaining", r.Wait)
	case RejectionInvalidAddress:
		return "invalid address"
	default:
		return string(r.Kind)
	}
}

// Grant is the result of a successful faucet send
type Grant struct {
	// Address is the canonical (unprefixed) recipient address
	Address string
	// TxHash is the hash of the broadcast transfer
	TxHash string
	// Tokens is the whole-token amount that was sent
	Tokens int
	// Balance is the recipient's whole-token balance after the send,
	// truncated from smallest units
	Balance *big.Int
}

// BalanceReport is the result of a balance query
type BalanceReport struct {
	Address string
	// Balance in whole tokens, truncated from smallest units
	Balance *big.Int
}

// API response types

// ErrorResponse represents an error response from the ops API
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health status of the ops API
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// InfoResponse represents information about the running faucet
type InfoResponse struct {
	Network       string `json:"network"`
	FaucetAddress string `json:"faucet_address"`
	FaucetBalance string `json:"faucet_balance"`
	TokensPerSend int    `json:"tokens_per_send"`
	CooldownHours int    `json:"cooldown_hours"`
}

// BalanceResponse represents a balance query response
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}
