package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/betbot/polydash/pkg/cache"
)

const (
	defaultGammaBaseURL = "https://gamma-api.polymarket.com"
	defaultDataBaseURL  = "https://data-api.polymarket.com"

	// Upstream responses change slowly relative to dashboard refreshes.
	// Positions move faster than market metadata, hence the shorter TTL.
	marketsCacheTTL   = 60 * time.Second
	positionsCacheTTL = 10 * time.Second

	requestTimeout = 30 * time.Second
)

// Client talks to the Polymarket gamma (markets) and data (positions) APIs.
// Responses are cached briefly in memory; a single failed attempt is
// surfaced immediately, no retries.
type Client struct {
	GammaBaseURL string
	DataBaseURL  string

	http      *resty.Client
	markets   *cache.TTLCache[string, []MarketSnapshot]
	positions *cache.TTLCache[string, any]
}

// NewClient creates a client. Empty base URLs fall back to the public
// Polymarket endpoints.
func NewClient(gammaBaseURL, dataBaseURL string) *Client {
	if gammaBaseURL == "" {
		gammaBaseURL = defaultGammaBaseURL
	}
	if dataBaseURL == "" {
		dataBaseURL = defaultDataBaseURL
	}

	httpClient := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "polydash/0.1")

	return &Client{
		GammaBaseURL: strings.TrimRight(gammaBaseURL, "/"),
		DataBaseURL:  strings.TrimRight(dataBaseURL, "/"),
		http:         httpClient,
		markets:      cache.New[string, []MarketSnapshot](marketsCacheTTL),
		positions:    cache.New[string, any](positionsCacheTTL),
	}
}

// FetchMarkets returns market snapshots from the gamma API. A success body
// that is not a JSON array yields an empty slice, not an error.
func (c *Client) FetchMarkets(ctx context.Context, q MarketQuery) ([]MarketSnapshot, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Active != nil {
		params.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Closed != nil {
		params.Set("closed", strconv.FormatBool(*q.Closed))
	}

	key := params.Encode()
	if cached, ok := c.markets.Get(key); ok {
		return cached, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(c.GammaBaseURL + "/markets")
	if err != nil {
		return nil, errors.Wrap(err, "gamma api request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("polymarket gamma api error %d: %s", resp.StatusCode(), bodyOrStatus(resp))
	}

	var snapshots []MarketSnapshot
	if err := json.Unmarshal(resp.Body(), &snapshots); err != nil {
		var probe any
		if probeErr := json.Unmarshal(resp.Body(), &probe); probeErr != nil {
			return nil, errors.Wrap(probeErr, "decode gamma markets")
		}
		// Valid JSON but not an array of markets.
		snapshots = []MarketSnapshot{}
	}

	c.markets.Set(key, snapshots, marketsCacheTTL)
	return snapshots, nil
}

// FetchPositions returns the raw decoded positions payload for a wallet.
// The shape varies across data API versions, so normalization happens
// downstream, not here.
func (c *Client) FetchPositions(ctx context.Context, user string) (any, error) {
	if cached, ok := c.positions.Get(user); ok {
		return cached, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("user", user).
		Get(c.DataBaseURL + "/positions")
	if err != nil {
		return nil, errors.Wrap(err, "data api request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("polymarket data api error %d: %s", resp.StatusCode(), bodyOrStatus(resp))
	}

	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.Wrap(err, "decode data api positions")
	}

	c.positions.Set(user, payload, positionsCacheTTL)
	return payload, nil
}

// Close releases the cache sweepers.
func (c *Client) Close() {
	c.markets.Close()
	c.positions.Close()
}

func bodyOrStatus(resp *resty.Response) string {
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return resp.Status()
}
