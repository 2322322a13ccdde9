package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/pkg/metrics"
)

// GasPriceClient defines the interface for the RPC gas price lookup.
type GasPriceClient interface {
	GasPrice(ctx context.Context) (*big.Int, error)
}

type gasPriceClientImpl struct {
	rpcURL  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGasPriceClient creates a new instance of gasPriceClientImpl. The RPC
// connection is dialed lazily per call, the endpoint is plain HTTP and
// go-ethereum does not connect until the first request anyway.
func NewGasPriceClient(rpcURL string, timeout time.Duration, logger *zap.Logger) GasPriceClient {
	return &gasPriceClientImpl{
		rpcURL:  rpcURL,
		timeout: timeout,
		logger:  logger.Named("GasPriceClient"),
	}
}

// GasPrice returns the current gas price in wei via eth_gasPrice.
func (c *gasPriceClientImpl) GasPrice(ctx context.Context) (*big.Int, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ec, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("rpc", "error").Inc()
		return nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}
	defer ec.Close()

	price, err := ec.SuggestGasPrice(ctx)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("rpc", "error").Inc()
		c.logger.Warn("eth_gasPrice call failed", zap.Error(err))
		return nil, fmt.Errorf("eth_gasPrice call failed: %w", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("rpc", "ok").Inc()
	return price, nil
}
