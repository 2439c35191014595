package cli

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/halcyon-network/faucet-bot/internal/models"
)

// APIClient handles communication with the bot's ops API
type APIClient struct {
	baseURL string
	client  *resty.Client
}

// NewAPIClient creates a new ops API client
func NewAPIClient(baseURL string) *APIClient {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("Content-Type", "application/json")

	return &APIClient{
		baseURL: baseURL,
		client:  client,
	}
}

// GetHealth checks the health of the bot
func (c *APIClient) GetHealth() (*models.HealthResponse, error) {
	var response models.HealthResponse
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(fmt.Sprintf("%s/health", c.baseURL))

	if err != nil {
		return nil, fmt.Errorf("failed to get health: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}

// GetInfo gets information about the running faucet
func (c *APIClient) GetInfo() (*models.InfoResponse, error) {
	var response models.InfoResponse
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(fmt.Sprintf("%s/api/v1/info", c.baseURL))

	if err != nil {
		return nil, fmt.Errorf("failed to get info: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}

// GetBalance fetches the balance of an address
func (c *APIClient) GetBalance(address string) (*models.BalanceResponse, error) {
	var response models.BalanceResponse
	var errResponse models.ErrorResponse

	resp, err := c.client.R().
		SetResult(&response).
		SetError(&errResponse).
		Get(fmt.Sprintf("%s/api/v1/balance/%s", c.baseURL, address))

	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	if resp.IsError() {
		if errResponse.Error != "" {
			return nil, fmt.Errorf("API error: %s", errResponse.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode())
	}

	return &response, nil
}
