package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

// EtherscanClient defines the interface for the block-explorer API.
type EtherscanClient interface {
	GetContractCreator(ctx context.Context, contractAddress string) (string, error)
}

type etherscanClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	chainID int64
	timeout time.Duration
	logger  *zap.Logger
}

// NewEtherscanClient creates a new instance of etherscanClientImpl.
func NewEtherscanClient(baseURL, apiKey string, chainID int64, timeout time.Duration, logger *zap.Logger) EtherscanClient {
	return &etherscanClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		chainID: chainID,
		timeout: timeout,
		logger:  logger.Named("EtherscanClient"),
	}
}

// GetContractCreator resolves the deployer address of a contract. A
// non-success status or empty result yields an error, callers degrade
// that to the "No Data" sentinel.
func (c *etherscanClientImpl) GetContractCreator(ctx context.Context, contractAddress string) (string, error) {
	requestURL := fmt.Sprintf("%s?chainid=%d&module=contract&action=getcontractcreation&contractaddresses=%s&apikey=%s",
		c.baseURL, c.chainID, url.QueryEscape(contractAddress), url.QueryEscape(c.apiKey))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "error").Inc()
			return "", fmt.Errorf("failed to execute request to etherscan: %w", err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "error").Inc()
			return "", fmt.Errorf("failed to execute request to etherscan: %w", err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "error").Inc()
		return "", fmt.Errorf("etherscan request failed with status %d", resp.StatusCode())
	}

	var creation entity.EtherscanCreationResponse
	if err := jsonCodec.Unmarshal(resp.Body(), &creation); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "error").Inc()
		return "", fmt.Errorf("failed to unmarshal etherscan creation response: %w", err)
	}

	if creation.Status != "1" || len(creation.Result) == 0 {
		metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "error").Inc()
		c.logger.Warn("Creator address not found in Etherscan response",
			zap.String("contractAddress", contractAddress),
			zap.String("message", creation.Message))
		return "", fmt.Errorf("creator address not found: %s", creation.Message)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("etherscan", "ok").Inc()
	return creation.Result[0].ContractCreator, nil
}
