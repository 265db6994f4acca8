package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"team-calendar/internal/domain/models"
)

// Client talks to the Nager.Date v3 public-holiday API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PublicHolidays fetches the holiday list for one country and year. The
// year is passed through as-is; the upstream rejects anything malformed.
func (c *Client) PublicHolidays(ctx context.Context, year, countryCode string) ([]models.Holiday, error) {
	const op = "clients.nager.PublicHolidays"

	url := fmt.Sprintf("%s/PublicHolidays/%s/%s", c.baseURL, year, countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request for %s failed: %w", op, countryCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d for %s", op, resp.StatusCode, countryCode)
	}

	var holidays []models.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response for %s: %w", op, countryCode, err)
	}

	return holidays, nil
}
