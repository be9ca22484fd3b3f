package client

// http_client.go = talks JSON to the creatorhub API on behalf of the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/social"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer; Message is the server's {"error"} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Page is one page of a list endpoint plus the total from X-Total-Count.
type Page[T any] struct {
	Items []T
	Total int64
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SetToken makes every following request carry the bearer token.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	body := dto.LoginRequest{Email: email, Password: password}
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCreators(ctx context.Context, query url.Values) (*Page[models.CreatorProfile], error) {
	return list[models.CreatorProfile](ctx, c, "/creators", query)
}

func (c *HTTPClient) ListRequirements(ctx context.Context, query url.Values) (*Page[models.Requirement], error) {
	return list[models.Requirement](ctx, c, "/requirements", query)
}

func (c *HTTPClient) SocialMetrics(ctx context.Context, platform, handle string) (*social.Metrics, error) {
	var out social.Metrics
	path := "/social/" + url.PathEscape(platform) + "/" + url.PathEscape(handle)
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Rate(ctx context.Context, toUserID string, score int) (*models.Rating, error) {
	var out models.Rating
	body := dto.CreateRatingRequest{ToUserID: toUserID, Score: score}
	if _, err := c.do(ctx, http.MethodPost, "/feedback/ratings", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RatingSummary(ctx context.Context, userID string) (*dto.RatingSummaryResponse, error) {
	var out dto.RatingSummaryResponse
	if _, err := c.do(ctx, http.MethodGet, "/feedback/ratings/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var out []models.Campaign
	if _, err := c.do(ctx, http.MethodGet, "/campaigns", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) RespondToCampaign(ctx context.Context, id string, status models.CampaignStatus) (*models.Campaign, error) {
	var out models.Campaign
	body := dto.UpdateCampaignStatusRequest{Status: string(status)}
	if _, err := c.do(ctx, http.MethodPatch, "/campaigns/"+url.PathEscape(id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) (*Page[T], error) {
	var items []T
	header, err := c.do(ctx, http.MethodGet, path, query, nil, &items)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: items, Total: int64(len(items))}
	if raw := header.Get("X-Total-Count"); raw != "" {
		if total, err := strconv.ParseInt(raw, 10, 64); err == nil {
			page.Total = total
		}
	}
	return page, nil
}

// do sends body as JSON and decodes a 2xx answer into out. Non-2xx answers
// become *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		var payload struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return nil, apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return resp.Header, nil
}
