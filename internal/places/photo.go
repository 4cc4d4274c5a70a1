package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PhotoBaseURL is the Place Photo API endpoint. It answers a valid photo
// reference with a redirect to the hosted image.
const PhotoBaseURL = "https://maps.googleapis.com/maps/api/place/photo"

// PhotoClient resolves opaque photo references to concrete image URLs by
// reading the redirect target instead of downloading the image.
type PhotoClient struct {
	client  HTTPClient   // HTTP client for making requests, must not follow redirects
	baseURL string       // Base URL for the photo API
	apiKey  string       // API key with Places access
	log     *slog.Logger // Logger for logging operations
}

// ErrNoPhoto is returned when the provider does not answer with a redirect,
// meaning no image exists for the reference.
var ErrNoPhoto = errors.New("photo reference did not resolve to an image URL")

// NewPhotoClient creates a photo resolver with a default HTTP client that
// keeps redirect responses instead of following them.
func NewPhotoClient(apiKey string, timeout time.Duration, log *slog.Logger) *PhotoClient {
	return &PhotoClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: PhotoBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// NewPhotoClientWithHTTP allows injecting a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewPhotoClientWithHTTP(client HTTPClient, apiKey string, log *slog.Logger) *PhotoClient {
	return &PhotoClient{
		client:  client,
		baseURL: PhotoBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// PhotoURL resolves a photo reference to the concrete image URL carried in
// the provider's redirect Location header.
func (pc *PhotoClient) PhotoURL(ctx context.Context, photoReference string, maxWidth int) (string, error) {
	reqURL, err := url.Parse(pc.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("photoreference", photoReference)
	query.Set("maxwidth", strconv.Itoa(maxWidth))
	query.Set("key", pc.apiKey)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := pc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute photo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		pc.log.DebugContext(ctx, "Photo reference did not redirect", "status", resp.StatusCode)
		return "", ErrNoPhoto
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", ErrNoPhoto
	}

	return location, nil
}
