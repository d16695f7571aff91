package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/ports"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// CredentialSource yields the current bearer credential, or "" when the
// session is anonymous. The client treats the credential as opaque.
type CredentialSource func() string

// Client talks to the remote marketplace API over HTTP JSON. All failures
// map onto the domain error taxonomy so callers never see transport detail.
type Client struct {
	baseURL    string
	httpClient *http.Client
	credential CredentialSource
	logger     *zap.Logger
}

var _ ports.Marketplace = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, credential CredentialSource, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if credential == nil {
		credential = func() string { return "" }
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		credential: credential,
		logger:     logger,
	}
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	payload := loginRequest{Username: creds.Username, Password: creds.Password}

	var response authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", payload, &response); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	return response.toAuthResult(), nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	role := reg.Role
	if role == "" {
		role = domain.RoleBuyer
	}

	payload := registerRequest{
		Username:        reg.Username,
		Email:           reg.Email,
		Password:        reg.Password,
		PasswordConfirm: reg.PasswordConfirm,
		UserType:        string(role),
		Country:         reg.Country,
		PhoneNumber:     reg.Phone,
	}

	var response authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", payload, &response); err != nil {
		return domain.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	return response.toAuthResult(), nil
}

func (c *Client) FetchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	path := "/products/"
	query := url.Values{}
	if filter.Query != "" {
		path = "/products/search/"
		query.Set("q", filter.Query)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var payload []productPayload
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toProduct())
	}

	return products, nil
}

func (c *Client) FetchProduct(ctx context.Context, id int64) (domain.Product, error) {
	var payload productPayload
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/", id), nil, &payload)
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetch product %d: %w", id, err)
	}

	return payload.toProduct(), nil
}

func (c *Client) SubmitOrder(ctx context.Context, cart domain.Cart) (domain.Order, error) {
	if cart.Len() == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	items := make([]orderItemRequest, 0, cart.Len())
	for _, item := range cart.Items {
		items = append(items, orderItemRequest{
			Product:  item.ProductID,
			Quantity: item.Quantity,
		})
	}

	var payload orderPayload
	if err := c.do(ctx, http.MethodPost, "/orders/", orderRequest{Items: items}, &payload); err != nil {
		return domain.Order{}, fmt.Errorf("submit order: %w", err)
	}

	return payload.toOrder(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "baw/cli")
	if credential := c.credential(); credential != "" {
		request.Header.Set("Authorization", "Bearer "+credential)
	}

	c.logger.Debug("marketplace request", zap.String("method", method), zap.String("path", path))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		c.logger.Debug("marketplace error response",
			zap.Int("status", response.StatusCode),
			zap.String("path", path))
		return statusError(response.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(status int, body []byte) error {
	detail := errorDetail(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuthRejected, detail)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidationFailure, detail)
	case http.StatusNotFound:
		return domain.ErrProductNotFound
	default:
		return fmt.Errorf("status %d: %s", status, detail)
	}
}

// errorDetail pulls the human-readable message out of a DRF error body,
// falling back to the raw body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}

	return strings.TrimSpace(string(body))
}
