package commands

import (
	"encoding/json"
	"fmt"

	"github.com/halcyon-network/faucet-bot/pkg/cli"
	"github.com/halcyon-network/faucet-bot/pkg/cli/ui"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the bot is up",
	Long: `Check the health of the bot's ops API.

Example:
  faucetctl health`,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	// Create API client
	client := cli.NewAPIClient(apiURL)

	// Get health
	resp, err := client.GetHealth()
	if err != nil {
		return fmt.Errorf("failed to get health: %w", err)
	}

	// Print response
	if jsonOut {
		jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(jsonBytes))
	} else {
		ui.PrintHealthResponse(resp)
	}

	return nil
}
