// Package gateway is the request/response side of bid negotiation: one HTTP
// call per user action, no retries. It never touches a bidstore.Store;
// callers reconcile from the returned bid or wait for the channel event.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/internal/validation"
	"skillswap/utils"
)

const defaultTimeout = 15 * time.Second

// Client calls the bid service
type Client struct {
	baseURL *url.URL
	http    *http.Client
	creds   CredentialProvider
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		copied := *c.http
		copied.Timeout = d
		c.http = &copied
	}
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, creds CredentialProvider, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base url %q", baseURL)
	}
	c := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: defaultTimeout},
		creds:   creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateBid submits a new bid on projectID
func (c *Client) CreateBid(ctx context.Context, projectID string, in models.BidInput) (models.Bid, error) {
	if err := requireID("project", projectID); err != nil {
		return models.Bid{}, err
	}
	if err := validation.Struct(in); err != nil {
		return models.Bid{}, fmt.Errorf("gateway: %w", err)
	}

	var bid models.Bid
	err := c.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/bids", in, &bid)
	return bid, err
}

// ListProjectBids returns every bid on projectID
func (c *Client) ListProjectBids(ctx context.Context, projectID string) ([]models.Bid, error) {
	if err := requireID("project", projectID); err != nil {
		return nil, err
	}
	var bids []models.Bid
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/bids", nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// ListFreelancerBids returns every bid placed by freelancerID
func (c *Client) ListFreelancerBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	if err := requireID("freelancer", freelancerID); err != nil {
		return nil, err
	}
	var bids []models.Bid
	if err := c.do(ctx, http.MethodGet, "/freelancers/"+url.PathEscape(freelancerID)+"/bids", nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// UpdateBidStatus accepts or rejects a pending bid
func (c *Client) UpdateBidStatus(ctx context.Context, bidID string, status models.BidStatus) (models.Bid, error) {
	if err := requireID("bid", bidID); err != nil {
		return models.Bid{}, err
	}
	in := models.StatusUpdateInput{Status: status}
	if err := validation.Struct(in); err != nil {
		return models.Bid{}, fmt.Errorf("gateway: %w", err)
	}

	var bid models.Bid
	err := c.do(ctx, http.MethodPatch, "/bids/"+url.PathEscape(bidID)+"/status", in, &bid)
	return bid, err
}

// CreateCounterOffer proposes new terms on a pending bid
func (c *Client) CreateCounterOffer(ctx context.Context, bidID string, in models.CounterOfferInput) (models.Bid, error) {
	if err := requireID("bid", bidID); err != nil {
		return models.Bid{}, err
	}
	if err := validation.Struct(in); err != nil {
		return models.Bid{}, fmt.Errorf("gateway: %w", err)
	}

	var bid models.Bid
	err := c.do(ctx, http.MethodPost, "/bids/"+url.PathEscape(bidID)+"/counter-offer", in, &bid)
	return bid, err
}

// AcceptCounterOffer takes the client's counter-offer on the caller's own bid
func (c *Client) AcceptCounterOffer(ctx context.Context, bidID string) (models.Bid, error) {
	if err := requireID("bid", bidID); err != nil {
		return models.Bid{}, err
	}
	var bid models.Bid
	err := c.do(ctx, http.MethodPost, "/bids/"+url.PathEscape(bidID)+"/accept-counter", nil, &bid)
	return bid, err
}

func requireID(what, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("gateway: %w: %s id is required", biddingerrors.ErrValidation, what)
	}
	return nil
}

// do sends one request and decodes the envelope's data into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrAuth) {
			return fmt.Errorf("gateway: %w", err)
		}
		return fmt.Errorf("gateway: %w: %v", biddingerrors.ErrAuth, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		utils.Warn("gateway: request failed", map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return &biddingerrors.RequestError{Message: "could not reach the server, please try again", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &biddingerrors.RequestError{Status: resp.StatusCode, Message: "could not read the server response", Err: err}
	}

	utils.Debug("gateway: response", map[string]any{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	var env utils.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		return &biddingerrors.RequestError{Status: resp.StatusCode, Message: errorMessage(env, decodeErr)}
	}
	if decodeErr != nil {
		return &biddingerrors.RequestError{Status: resp.StatusCode, Message: "unexpected response from server", Err: decodeErr}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &biddingerrors.RequestError{Status: resp.StatusCode, Message: "unexpected response from server", Err: err}
	}
	return nil
}

// errorMessage picks the human-readable text out of an error body
func errorMessage(env utils.Envelope, decodeErr error) string {
	if decodeErr != nil {
		return ""
	}
	if msg := strings.TrimSpace(env.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(env.Error)
}
