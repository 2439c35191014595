package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Fixed parameters for every faucet transfer. Plain value transfers on
// the devnet, so a flat gas price of 1 wei and a fixed gas allowance.
const transferGasLimit = uint64(0x21000)

var transferGasPrice = big.NewInt(0x01)

// weiPerToken is the smallest-unit scale of the native token (10^18)
var weiPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Client handles chain interactions for the faucet account
type Client struct {
	eth     *ethclient.Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

// NewClient creates a chain client bound to the faucet signing key.
// The chain ID is fetched once at construction, which doubles as a
// connectivity check against the RPC endpoint.
func NewClient(ctx context.Context, rpcURL, privateKey string) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID: %w", err)
	}

	return &Client{
		eth:     eth,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// FaucetAddress returns the hex address of the faucet account
func (c *Client) FaucetAddress() string {
	return c.from.Hex()
}

// SendTokens signs and broadcasts a transfer of amount smallest units
// to the recipient and returns the transaction hash. It does not wait
// for the transaction to be mined.
func (c *Client) SendTokens(ctx context.Context, to string, amount *big.Int) (string, error) {
	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("failed to fetch nonce: %w", err)
	}

	tx := types.NewTransaction(nonce, common.HexToAddress(to), amount, transferGasLimit, transferGasPrice, nil)

	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}

// Balance returns the balance of an address in smallest units at the
// latest block
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// Close releases the underlying RPC connection
func (c *Client) Close() {
	c.eth.Close()
}

// TokensToWei converts a whole-token count to smallest units
func TokensToWei(tokens int) *big.Int {
	return new(big.Int).Mul(big.NewInt(int64(tokens)), weiPerToken)
}

// WeiToTokens converts smallest units to whole tokens, truncating.
// Display-only precision, not exact arithmetic.
func WeiToTokens(wei *big.Int) *big.Int {
	return new(big.Int).Quo(wei, weiPerToken)
}
