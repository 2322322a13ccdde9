package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

// BlockvisionClient defines the interface for the chain-indexer API.
type BlockvisionClient interface {
	GetTokenDetail(ctx context.Context, address string) (*entity.BlockvisionTokenDetail, error)
	GetTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (*entity.BlockvisionTokenHolders, error)
	RawTokenDetail(ctx context.Context, address string) (json.RawMessage, error)
	RawTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (json.RawMessage, error)
	RawTokenGating(ctx context.Context, accountAddress, tokenAddress string) (json.RawMessage, error)
}

type blockvisionClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewBlockvisionClient creates a new instance of blockvisionClientImpl.
func NewBlockvisionClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) BlockvisionClient {
	return &blockvisionClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		logger:  logger.Named("BlockvisionClient"),
	}
}

func (c *blockvisionClientImpl) get(ctx context.Context, requestURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("blockvision", "error").Inc()
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("blockvision", "error").Inc()
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("blockvision", "error").Inc()
		c.logger.Warn("Blockvision API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("blockvision request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("blockvision", "ok").Inc()
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// GetTokenDetail fetches token metadata. It returns an error for transport
// or decode failures, callers degrade that to a code -1 payload.
func (c *blockvisionClientImpl) GetTokenDetail(ctx context.Context, address string) (*entity.BlockvisionTokenDetail, error) {
	body, err := c.RawTokenDetail(ctx, address)
	if err != nil {
		return nil, err
	}

	var detail entity.BlockvisionTokenDetail
	if err := jsonCodec.Unmarshal(body, &detail); err != nil {
		c.logger.Warn("Failed to unmarshal Blockvision token detail",
			zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal token detail for %s: %w", address, err)
	}
	return &detail, nil
}

// GetTokenHolders fetches a single page of the holders listing.
func (c *blockvisionClientImpl) GetTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (*entity.BlockvisionTokenHolders, error) {
	body, err := c.RawTokenHolders(ctx, address, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	var holders entity.BlockvisionTokenHolders
	if err := jsonCodec.Unmarshal(body, &holders); err != nil {
		c.logger.Warn("Failed to unmarshal Blockvision token holders",
			zap.String("address", address), zap.Int("pageIndex", pageIndex), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal token holders for %s page %d: %w", address, pageIndex, err)
	}
	return &holders, nil
}

// RawTokenDetail returns the undecoded detail payload for proxying.
func (c *blockvisionClientImpl) RawTokenDetail(ctx context.Context, address string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/token/detail?address=%s", c.baseURL, url.QueryEscape(address))
	return c.get(ctx, requestURL)
}

// RawTokenHolders returns the undecoded holders page for proxying.
func (c *blockvisionClientImpl) RawTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/token/holders?contractAddress=%s&pageIndex=%s&pageSize=%s",
		c.baseURL, url.QueryEscape(address), strconv.Itoa(pageIndex), strconv.Itoa(pageSize))
	return c.get(ctx, requestURL)
}

// RawTokenGating returns the undecoded gating qualification payload.
func (c *blockvisionClientImpl) RawTokenGating(ctx context.Context, accountAddress, tokenAddress string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/token/gating?accountAddress=%s&tokenAddress=%s",
		c.baseURL, url.QueryEscape(accountAddress), url.QueryEscape(tokenAddress))
	return c.get(ctx, requestURL)
}
