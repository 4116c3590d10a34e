// Package storefront talks to the Storefront GraphQL API. It sends exactly
// the three documents the shop needs and does not try to be a general client.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain"
)

const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// Config names the API endpoint and the public storefront access token.
type Config struct {
	Endpoint    string
	AccessToken string
}

type Client struct {
	httpClient  *http.Client
	timeout     time.Duration
	endpoint    string
	accessToken string
}

const defaultTimeout = 30 * time.Second

type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The client is used as
// given; WithTimeout does not modify it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
// Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a Client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("storefront endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("storefront access token is required")
	}
	c := &Client{
		timeout:     defaultTimeout,
		endpoint:    cfg.Endpoint,
		accessToken: cfg.AccessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Products runs the Products query. A response without a products field
// yields an empty connection.
func (c *Client) Products(ctx context.Context) (ProductConnection, error) {
	var data productsData
	if err := c.do(ctx, "Products", productsQuery, nil, &data); err != nil {
		return ProductConnection{}, err
	}
	if data.Products == nil {
		return ProductConnection{}, nil
	}
	return *data.Products, nil
}

// CreateCart runs the CreateCart mutation and returns the new cart id.
func (c *Client) CreateCart(ctx context.Context) (string, error) {
	var data cartCreateData
	if err := c.do(ctx, "CreateCart", createCartMutation, nil, &data); err != nil {
		return "", err
	}
	if data.CartCreate == nil {
		return "", &ResponseError{Operation: "CreateCart", Detail: "missing cartCreate payload"}
	}
	if data.CartCreate.Cart == nil || data.CartCreate.Cart.ID == "" {
		return "", &ResponseError{Operation: "CreateCart", Detail: "missing cart id"}
	}
	return data.CartCreate.Cart.ID, nil
}

// AddCartLines runs the AddToCart mutation. Backend userErrors are returned
// as a *domain.ValidationError.
func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []CartLineInput) (*Cart, error) {
	vars := map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}
	var data cartLinesAddData
	if err := c.do(ctx, "AddToCart", addToCartMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.CartLinesAdd == nil {
		return nil, &ResponseError{Operation: "AddToCart", Detail: "missing cartLinesAdd payload"}
	}
	if len(data.CartLinesAdd.UserErrors) > 0 {
		return nil, &domain.ValidationError{UserErrors: toDomainUserErrors(data.CartLinesAdd.UserErrors)}
	}
	if data.CartLinesAdd.Cart == nil {
		return nil, &ResponseError{Operation: "AddToCart", Detail: "missing cart"}
	}
	return data.CartLinesAdd.Cart, nil
}

func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read body: %w: %w", op, domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ResponseError{Operation: op, StatusCode: resp.StatusCode, Detail: snippet(raw)}
	}

	env := graphQLResponse[json.RawMessage]{}
	if err := json.Unmarshal(raw, &env); err != nil {
		return &ResponseError{Operation: op, StatusCode: resp.StatusCode, Detail: "decode response: " + err.Error()}
	}
	if len(env.Errors) > 0 {
		return &ResponseError{Operation: op, StatusCode: resp.StatusCode, Errors: env.Errors}
	}
	if env.Data == nil {
		return &ResponseError{Operation: op, StatusCode: resp.StatusCode, Detail: "missing data"}
	}
	if err := json.Unmarshal(*env.Data, out); err != nil {
		return &ResponseError{Operation: op, StatusCode: resp.StatusCode, Detail: "decode data: " + err.Error()}
	}
	return nil
}

func toDomainUserErrors(in []UserError) []domain.UserError {
	out := make([]domain.UserError, 0, len(in))
	for _, ue := range in {
		out = append(out, domain.UserError{Field: ue.Field, Message: ue.Message})
	}
	return out
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
