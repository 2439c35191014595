package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// H160 address body: exactly 40 alphanumeric characters. Deliberately
	// permissive — no checksum, no hex-only restriction.
	addressBodyRegex = regexp.MustCompile(`^[a-zA-Z0-9]{40}$`)
)

// NormalizeAddress strips a leading "0x" prefix if present. The prefix
// check is case-sensitive; "0X" is left untouched.
func NormalizeAddress(address string) string {
	return strings.TrimPrefix(address, "0x")
}

// ValidateAddress validates an H160 account address. The address may
// carry a "0x" prefix; the remainder must be exactly 40 alphanumeric
// characters.
func ValidateAddress(address string) error {
	body := NormalizeAddress(address)

	if body == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !addressBodyRegex.MatchString(body) {
		return fmt.Errorf("invalid H160 address format")
	}

	return nil
}
