package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	katanasPath  = "/api/katanas"
	checkoutPath = "/api/checkout"

	defaultTimeout = 10 * time.Second
)

// Client is the storefront's view of the backend REST API.
type Client interface {
	FetchProducts(ctx context.Context, query string) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	SubmitCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// New builds a Client for the backend at baseURL. When tracing is enabled the
// shared transport propagates trace context to the backend.
func New(baseURL string, timeout time.Duration, traced bool) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport
	if traced {
		transport = otelhttp.NewTransport(transport)
	}

	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout, Transport: transport},
	}
}

// FetchProducts lists the catalog, optionally narrowed by a free-text query.
// Match semantics belong to the backend.
func (c *httpClient) FetchProducts(ctx context.Context, query string) ([]*models.Product, error) {
	endpoint := c.baseURL + katanasPath
	if query != "" {
		endpoint += "?q=" + url.QueryEscape(query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.FetchError("Failed to load products").WithError(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.FetchError("Failed to load products").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.FetchError("Failed to load products").
			WithDetail(fmt.Sprintf("catalog: status %d: %s", resp.StatusCode, body))
	}

	var listing models.ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.FetchError("Failed to parse product listing").WithError(err)
	}

	if listing.Items == nil {
		return []*models.Product{}, nil
	}

	return listing.Items, nil
}

// CreateProduct proposes a new product; the backend assigns the id.
func (c *httpClient) CreateProduct(ctx context.Context, createReq *models.CreateProductRequest) (*models.Product, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, errors.InternalError("Failed to encode product").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+katanasPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.InternalError("Failed to build product request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create product").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return nil, errors.ThirdPartyError("Failed to create product").
			WithDetail(fmt.Sprintf("catalog: status %d: %s", resp.StatusCode, respBody))
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, errors.ThirdPartyError("Failed to parse created product").WithError(err)
	}

	return &product, nil
}

// SubmitCheckout posts the order. A non-2xx response surfaces the body's
// `detail` field when present, else a generic message; transport errors get
// the same generic message.
func (c *httpClient) SubmitCheckout(ctx context.Context, checkoutReq *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	body, err := json.Marshal(checkoutReq)
	if err != nil {
		return nil, errors.InternalError("Failed to encode checkout request").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkoutPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.InternalError("Failed to build checkout request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.CheckoutError("Checkout failed").WithError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.CheckoutError("Checkout failed").WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Detail string `json:"detail"`
		}

		message := "Checkout failed"
		if err := json.Unmarshal(respBody, &failure); err == nil && failure.Detail != "" {
			message = failure.Detail
		}

		return nil, errors.CheckoutError(message).
			WithDetail(fmt.Sprintf("checkout: status %d", resp.StatusCode))
	}

	var result models.CheckoutResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.CheckoutError("Checkout failed").WithError(err)
	}

	return &result, nil
}
