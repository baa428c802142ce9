package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
)

// LivePricingClient calls the external flight metasearch live pricing API
type LivePricingClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	market     string
	currency   string
	locale     string
	logger     logger.Logger
}

// NewLivePricingClient creates a new live pricing API client
func NewLivePricingClient(httpClient *http.Client, baseURL, apiKey, market, currency, locale string, logger logger.Logger) repository.LivePricingRepository {
	return &LivePricingClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		market:     market,
		currency:   currency,
		locale:     locale,
		logger:     logger,
	}
}

// Search performs one synchronous live pricing call. A non-200 upstream
// status aborts with *entity.SearchError before anything is persisted.
func (c *LivePricingClient) Search(ctx context.Context, origin, destination string, outbound, inbound time.Time, passengers int) (*entity.LivePricingResponse, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("country", c.market)
	params.Set("currency", c.currency)
	params.Set("locale", c.locale)
	params.Set("originplace", origin)
	params.Set("destinationplace", destination)
	params.Set("outbounddate", outbound.Format("2006-01-02"))
	params.Set("inbounddate", inbound.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(passengers))

	endpoint := fmt.Sprintf("%s/pricing/v1.0?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to build live pricing request", "error", err)
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("live pricing call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Live pricing returned non-success status", "status", resp.StatusCode, "origin", origin, "destination", destination)
		return nil, &entity.SearchError{StatusCode: resp.StatusCode}
	}

	var parsed entity.LivePricingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode live pricing response: %w", err)
	}

	return &parsed, nil
}
