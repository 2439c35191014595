package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/halcyon-network/faucet-bot/internal/models"
)

var (
	// Colors
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()

	// Symbols
	checkMark = green("✓")
	xMark     = red("✗")
	arrow     = cyan("→")
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", checkMark, message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("%s %s\n", xMark, red(message))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", arrow, message)
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Color("cyan")
	return s
}

// PrintInfoResponse prints a faucet info response
func PrintInfoResponse(resp *models.InfoResponse) {
	fmt.Println()
	fmt.Println(bold("Faucet Information"))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()

	fmt.Printf("%s %s\n", bold("Network:"), resp.Network)
	fmt.Println()

	fmt.Println(bold("Faucet Account:"))
	fmt.Printf("  Address: %s\n", shortenAddress(resp.FaucetAddress))
	fmt.Printf("  Balance: %s tokens\n", resp.FaucetBalance)
	fmt.Println()

	fmt.Println(bold("Limits:"))
	fmt.Printf("  Tokens per request: %d\n", resp.TokensPerSend)
	fmt.Printf("  Cooldown period:    %d hour(s)\n", resp.CooldownHours)
	fmt.Println()
}

// PrintBalanceResponse prints a balance response
func PrintBalanceResponse(resp *models.BalanceResponse) {
	fmt.Println()
	fmt.Printf("%s %s\n", bold("Account:"), shortenAddress(resp.Address))
	fmt.Printf("%s %s tokens\n", bold("Balance:"), resp.Balance)
	fmt.Println()
}

// PrintHealthResponse prints a health response
func PrintHealthResponse(resp *models.HealthResponse) {
	fmt.Println()
	if resp.Status == "ok" {
		PrintSuccess("Bot is healthy")
	} else {
		PrintError(fmt.Sprintf("Bot status: %s", resp.Status))
	}
	fmt.Printf("  Checked at: %s\n", time.Unix(resp.Timestamp, 0).Format("January 02, 2006 at 3:04 PM"))
	fmt.Println()
}

// Helper functions

func shortenAddress(address string) string {
	if len(address) <= 20 {
		return address
	}
	return address[:10] + "..." + address[len(address)-8:]
}
