package commands

import (
	"encoding/json"
	"fmt"

	"github.com/halcyon-network/faucet-bot/pkg/cli"
	"github.com/halcyon-network/faucet-bot/pkg/cli/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get faucet information",
	Long: `Get information about the running faucet: network, faucet account
balance, drip amount, and cooldown.

Example:
  faucetctl info`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	// Create API client
	client := cli.NewAPIClient(apiURL)

	// Get info
	resp, err := client.GetInfo()
	if err != nil {
		return fmt.Errorf("failed to get info: %w", err)
	}

	// Print response
	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintInfoResponse(resp)
	}

	return nil
}
