package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/client"
	"github.com/nftshinessy/montoks/internal/entity"
)

const (
	monPriceCacheKey = "price:MONUSD"
	gasPriceCacheKey = "price:gas"
	monUSDPair       = "MONUSD"
)

type symbolPriceFetcher interface {
	GetSymbolPrice(ctx context.Context, pair string) (*entity.MonorailSymbolPrice, error)
}

// GasQuote is the current gas price in both units served to clients.
type GasQuote struct {
	GasPrice    string `json:"gasPrice"`
	GasPriceWei string `json:"gasPriceWei"`
}

// PriceService serves the MON/USD quote and the current gas price with
// short-lived caching in front of the upstreams.
type PriceService struct {
	market symbolPriceFetcher
	gas    client.GasPriceClient
	cache  *gocache.Cache
	monTTL time.Duration
	gasTTL time.Duration
	logger *zap.Logger
}

// NewPriceService creates a new PriceService.
func NewPriceService(market symbolPriceFetcher, gas client.GasPriceClient, monTTL, gasTTL time.Duration, logger *zap.Logger) *PriceService {
	return &PriceService{
		market: market,
		gas:    gas,
		cache:  gocache.New(monTTL, 10*time.Minute),
		monTTL: monTTL,
		gasTTL: gasTTL,
		logger: logger.Named("PriceService"),
	}
}

// MonPriceUSD returns the MON/USD price formatted to four decimals.
func (s *PriceService) MonPriceUSD(ctx context.Context) (string, error) {
	if cached, ok := s.cache.Get(monPriceCacheKey); ok {
		return cached.(string), nil
	}

	quote, err := s.market.GetSymbolPrice(ctx, monUSDPair)
	if err != nil {
		s.logger.Error("Failed to fetch MON price", zap.Error(err))
		return "", err
	}

	price, err := decimal.NewFromString(quote.Price)
	if err != nil {
		price = decimal.Zero
	}
	formatted := price.StringFixed(4)

	s.cache.Set(monPriceCacheKey, formatted, s.monTTL)
	return formatted, nil
}

// GasPrice returns the current gas price in gwei (two decimals) and wei.
func (s *PriceService) GasPrice(ctx context.Context) (GasQuote, error) {
	if cached, ok := s.cache.Get(gasPriceCacheKey); ok {
		return cached.(GasQuote), nil
	}

	wei, err := s.gas.GasPrice(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch gas price", zap.Error(err))
		return GasQuote{}, err
	}

	quote := GasQuote{
		GasPrice:    decimal.NewFromBigInt(wei, -9).StringFixed(2),
		GasPriceWei: wei.String(),
	}

	s.cache.Set(gasPriceCacheKey, quote, s.gasTTL)
	return quote, nil
}
