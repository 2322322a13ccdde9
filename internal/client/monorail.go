package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// MonorailClient defines the interface for the market-data provider API.
type MonorailClient interface {
	GetToken(ctx context.Context, address string) (*entity.MonorailToken, error)
	GetSymbolPrice(ctx context.Context, pair string) (*entity.MonorailSymbolPrice, error)
	RawTokensByCategory(ctx context.Context, category, address string) (json.RawMessage, error)
}

type monorailClientImpl struct {
	client     *fasthttp.Client
	baseURL    string
	identifier string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewMonorailClient creates a new instance of monorailClientImpl.
func NewMonorailClient(baseURL, identifier string, timeout time.Duration, logger *zap.Logger) MonorailClient {
	return &monorailClientImpl{
		client:     &fasthttp.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		identifier: identifier,
		timeout:    timeout,
		logger:     logger.Named("MonorailClient"),
	}
}

func (c *monorailClientImpl) get(ctx context.Context, requestURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	if c.identifier != "" {
		req.Header.Set("X-Public-Identifier", c.identifier)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("monorail", "error").Inc()
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("monorail", "error").Inc()
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("monorail", "error").Inc()
		c.logger.Warn("Monorail API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("monorail request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("monorail", "ok").Inc()
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// GetToken fetches market data for a single token address.
func (c *monorailClientImpl) GetToken(ctx context.Context, address string) (*entity.MonorailToken, error) {
	requestURL := fmt.Sprintf("%s/token/%s", c.baseURL, url.PathEscape(address))
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var token entity.MonorailToken
	if err := jsonCodec.Unmarshal(body, &token); err != nil {
		c.logger.Warn("Failed to unmarshal Monorail token data",
			zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal monorail token data for %s: %w", address, err)
	}
	return &token, nil
}

// GetSymbolPrice fetches a quote for a symbol pair, e.g. MONUSD.
func (c *monorailClientImpl) GetSymbolPrice(ctx context.Context, pair string) (*entity.MonorailSymbolPrice, error) {
	requestURL := fmt.Sprintf("%s/symbol/%s", c.baseURL, url.PathEscape(pair))
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var price entity.MonorailSymbolPrice
	if err := jsonCodec.Unmarshal(body, &price); err != nil {
		return nil, fmt.Errorf("failed to unmarshal monorail symbol price for %s: %w", pair, err)
	}
	return &price, nil
}

// RawTokensByCategory returns the undecoded category listing for proxying.
// An empty address omits the query parameter.
func (c *monorailClientImpl) RawTokensByCategory(ctx context.Context, category, address string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/tokens/category/%s", c.baseURL, url.PathEscape(category))
	if address != "" {
		requestURL += "?address=" + url.QueryEscape(address)
	}
	return c.get(ctx, requestURL)
}
