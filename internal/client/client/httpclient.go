package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/sethvargo/go-retry"
)

// HTTPClient talks to the HealthSync JSON API and keeps the current token
// pair in memory. Protected writes that come back 401 trigger a single
// refresh followed by one retry.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *HTTPClient) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *HTTPClient) LoggedIn() bool {
	access, _ := c.tokens()
	return access != ""
}

func (c *HTTPClient) Logout() {
	c.setTokens("", "")
}

// Ping probes GET /health. Transport failures and 503 answers are retried
// with exponential backoff, up to three extra attempts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(100*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, "/health", "", nil, nil)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *HTTPClient) Register(ctx context.Context, in api.RegisterInput) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, &resp); err != nil {
		return nil, err
	}
	c.setTokens(resp.Token, resp.RefreshToken)
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, in api.LoginInput) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &resp); err != nil {
		return nil, err
	}
	c.setTokens(resp.Token, resp.RefreshToken)
	return &resp, nil
}

// Refresh exchanges the stored refresh token for a new pair.
func (c *HTTPClient) Refresh(ctx context.Context) error {
	_, refresh := c.tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	req := api.RefreshRequest{RefreshToken: refresh}

	var resp api.RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", "", req, &resp); err != nil {
		return err
	}
	c.setTokens(resp.Token, resp.RefreshToken)
	return nil
}

func (c *HTTPClient) LogExercise(ctx context.Context, in api.ExerciseInput) (*api.Exercise, error) {
	var out api.Exercise
	if err := c.authorized(ctx, "/exercises", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) LogNutrition(ctx context.Context, in api.NutritionInput) (*api.Nutrition, error) {
	var out api.Nutrition
	if err := c.authorized(ctx, "/nutrition", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) authorized(ctx context.Context, path string, in, out any) error {
	access, refresh := c.tokens()
	if access == "" {
		return ErrNotLoggedIn
	}

	err := c.do(ctx, http.MethodPost, path, access, in, out)
	if !errors.Is(err, ErrUnauthorized) || refresh == "" {
		return err
	}

	if rerr := c.Refresh(ctx); rerr != nil {
		return rerr
	}

	access, _ = c.tokens()
	return c.do(ctx, http.MethodPost, path, access, in, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
