package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{
			name:    "valid address with prefix",
			address: "0x" + strings.Repeat("a", 40),
			wantErr: false,
		},
		{
			name:    "valid address without prefix",
			address: strings.Repeat("a", 40),
			wantErr: false,
		},
		{
			name:    "valid mixed case hex",
			address: "0x6Be02d1d3665660d22FF9624b7BE0551ee1Ac91b",
			wantErr: false,
		},
		{
			name:    "non-hex letters still accepted",
			address: "g" + strings.Repeat("a", 39),
			wantErr: false,
		},
		{
			name:    "too short",
			address: strings.Repeat("a", 39),
			wantErr: true,
		},
		{
			name:    "too long",
			address: "0x" + strings.Repeat("a", 41),
			wantErr: true,
		},
		{
			name:    "non-alphanumeric character",
			address: "!" + strings.Repeat("a", 39),
			wantErr: true,
		},
		{
			name:    "empty address",
			address: "",
			wantErr: true,
		},
		{
			name:    "just the prefix",
			address: "0x",
			wantErr: true,
		},
		{
			name:    "uppercase prefix is not stripped",
			address: "0X" + strings.Repeat("a", 40),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "strips prefix",
			address:  "0x" + strings.Repeat("a", 40),
			expected: strings.Repeat("a", 40),
		},
		{
			name:     "no prefix untouched",
			address:  strings.Repeat("b", 40),
			expected: strings.Repeat("b", 40),
		},
		{
			name:     "uppercase prefix untouched",
			address:  "0X" + strings.Repeat("a", 40),
			expected: "0X" + strings.Repeat("a", 40),
		},
		{
			name:     "empty string",
			address:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.address))
		})
	}
}
