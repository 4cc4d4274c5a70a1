package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tripcompass/tripcompass/internal/models"
	"golang.org/x/time/rate"
)

// Naver open-API endpoints.
const (
	DataLabURL     = "https://openapi.naver.com/v1/datalab/search"
	LocalSearchURL = "https://openapi.naver.com/v1/search/local.json"
)

// maxGroupsPerRequest is the DataLab limit on keyword groups per call;
// larger sets are chunked transparently.
const maxGroupsPerRequest = 5

// localSearchDisplay is the number of local-search hits requested.
const localSearchDisplay = 5

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common errors for the Naver client.
var (
	ErrNaverUnauthorized  = errors.New("naver API unauthorized (invalid client credentials)")
	ErrNaverEmptyResponse = errors.New("naver API returned empty response")
)

// TrendQuery describes one DataLab search-trend request.
type TrendQuery struct {
	StartDate string                // StartDate in YYYY-MM-DD.
	EndDate   string                // EndDate in YYYY-MM-DD.
	TimeUnit  string                // TimeUnit is one of date, week, month.
	Groups    []models.KeywordGroup // Groups of keywords tracked as trend lines.
	Ages      []string              // Ages filters by Naver age bands, optional.
	Gender    string                // Gender filter ("m"/"f"), optional.
}

// Client calls the Naver DataLab and Local Search open APIs. Requests are
// rate limited client-side to respect the provider quota.
type Client struct {
	client       HTTPClient
	dataLabURL   string
	localURL     string
	clientID     string
	clientSecret string
	limiter      *rate.Limiter
	log          *slog.Logger
}

// NewClient creates a Naver open-API client with a default HTTP client.
func NewClient(clientID, clientSecret string, rateLimit int, timeout time.Duration, log *slog.Logger) *Client {
	if rateLimit <= 0 {
		rateLimit = 5
		log.Warn("Rate limit for Naver API not set, set a default value", "value", rateLimit)
	}

	return &Client{
		client:       &http.Client{Timeout: timeout},
		dataLabURL:   DataLabURL,
		localURL:     LocalSearchURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		limiter:      rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		log:          log,
	}
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(
	client HTTPClient,
	clientID, clientSecret string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *Client {
	return &Client{
		client:       client,
		dataLabURL:   DataLabURL,
		localURL:     LocalSearchURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		limiter:      limiter,
		log:          log,
	}
}

// dataLabRequest is the DataLab JSON request body.
type dataLabRequest struct {
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	TimeUnit      string                `json:"timeUnit"`
	KeywordGroups []models.KeywordGroup `json:"keywordGroups"`
	Ages          []string              `json:"ages,omitempty"`
	Gender        string                `json:"gender,omitempty"`
}

// dataLabResponse is the DataLab JSON response, reduced to what we read.
type dataLabResponse struct {
	Results []struct {
		Title string `json:"title"`
		Data  []struct {
			Period string  `json:"period"`
			Ratio  float64 `json:"ratio"`
		} `json:"data"`
	} `json:"results"`
}

// TrendSearch fetches relative search-volume trend lines for the query's
// keyword groups. Sets larger than the provider limit are split into
// multiple requests and the results concatenated.
func (c *Client) TrendSearch(ctx context.Context, query TrendQuery) ([]models.TrendPoint, error) {
	var points []models.TrendPoint

	for start := 0; start < len(query.Groups); start += maxGroupsPerRequest {
		end := start + maxGroupsPerRequest
		if end > len(query.Groups) {
			end = len(query.Groups)
		}

		chunk, err := c.trendChunk(ctx, query, query.Groups[start:end])
		if err != nil {
			return nil, err
		}
		points = append(points, chunk...)
	}

	if len(points) == 0 {
		return nil, ErrNaverEmptyResponse
	}

	return points, nil
}

// trendChunk issues one DataLab request for at most maxGroupsPerRequest groups.
func (c *Client) trendChunk(
	ctx context.Context,
	query TrendQuery,
	groups []models.KeywordGroup,
) ([]models.TrendPoint, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	body, err := json.Marshal(dataLabRequest{
		StartDate:     query.StartDate,
		EndDate:       query.EndDate,
		TimeUnit:      query.TimeUnit,
		KeywordGroups: groups,
		Ages:          query.Ages,
		Gender:        query.Gender,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode datalab request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.dataLabURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute datalab request: %w", err)
	}
	defer resp.Body.Close()

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	var result dataLabResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode datalab response: %w", err)
	}

	var points []models.TrendPoint
	for _, line := range result.Results {
		for _, sample := range line.Data {
			points = append(points, models.TrendPoint{
				Group:  line.Title,
				Period: sample.Period,
				Ratio:  sample.Ratio,
			})
		}
	}

	return points, nil
}

// localSearchResponse is the Local Search JSON response, reduced to what we read.
type localSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Address string `json:"address"`
		Image   string `json:"image"`
		Link    string `json:"link"`
	} `json:"items"`
}

// LocalSearch fetches local listings for a query and normalizes them,
// stripping the provider's highlight markup and mapping the province to its
// Tour API area code.
func (c *Client) LocalSearch(ctx context.Context, query string) ([]models.Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(c.localURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("query", query)
	params.Set("display", fmt.Sprint(localSearchDisplay))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute local search request: %w", err)
	}
	defer resp.Body.Close()

	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	var result localSearchResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode local search response: %w", err)
	}

	listings := make([]models.Listing, 0, len(result.Items))
	for _, item := range result.Items {
		listings = append(listings, models.Listing{
			Title:    stripMarkup(item.Title),
			Address:  item.Address,
			AreaCode: areaCodeForAddress(item.Address),
			Image:    item.Image,
			Link:     item.Link,
		})
	}

	return listings, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
}

func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrNaverUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("naver API returned status %d: %s", resp.StatusCode, string(body))
	}
}

// stripMarkup removes the <b> highlight tags Naver wraps around matched terms.
func stripMarkup(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	return strings.ReplaceAll(s, "</b>", "")
}
