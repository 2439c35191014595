package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	jsonOut bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "faucetctl",
	Short: "Ops CLI for the devnet faucet bot",
	Long: `A CLI tool to inspect the devnet faucet bot through its ops API.

Examples:
  faucetctl info                        # View faucet configuration and balance
  faucetctl balance 0xYOUR_ADDRESS      # Check an account balance
  faucetctl health                      # Check that the bot is up

Token requests themselves go through the Discord channel:
  !faucet send <address>`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:3000", "Ops API URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(healthCmd)
}
