package commands

import (
	"encoding/json"
	"fmt"

	"github.com/halcyon-network/faucet-bot/pkg/cli"
	"github.com/halcyon-network/faucet-bot/pkg/cli/ui"
	"github.com/halcyon-network/faucet-bot/pkg/utils"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <ADDRESS>",
	Short: "Check the balance of an address",
	Long: `Check the whole-token balance of an H160 address.

Example:
  faucetctl balance 0x6Be02d1d3665660d22FF9624b7BE0551ee1Ac91b`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	address := args[0]

	// Validate address
	if err := utils.ValidateAddress(address); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	// Create API client
	client := cli.NewAPIClient(apiURL)

	// Fetch balance
	s := ui.NewSpinner("Querying balance...")
	s.Start()
	resp, err := client.GetBalance(address)
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	// Print response
	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintBalanceResponse(resp)
	}

	return nil
}
