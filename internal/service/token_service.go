package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nftshinessy/montoks/internal/cache"
	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/internal/pkg/utils"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

type marketFetcher interface {
	GetToken(ctx context.Context, address string) (*entity.MonorailToken, error)
}

type detailFetcher interface {
	GetTokenDetail(ctx context.Context, address string) (*entity.BlockvisionTokenDetail, error)
}

// TokenService orchestrates the aggregation pipeline: concurrent fan-out to
// the upstream providers, assembly of the canonical record with documented
// fallback precedence, risk scoring and caching.
type TokenService struct {
	market  marketFetcher
	indexer detailFetcher
	holders *HolderCounter
	creator *CreatorResolver
	cache   *cache.TokenCache
	logger  *zap.Logger
}

// NewTokenService creates a new TokenService.
func NewTokenService(
	market marketFetcher,
	indexer detailFetcher,
	holders *HolderCounter,
	creator *CreatorResolver,
	tokenCache *cache.TokenCache,
	logger *zap.Logger,
) *TokenService {
	return &TokenService{
		market:  market,
		indexer: indexer,
		holders: holders,
		creator: creator,
		cache:   tokenCache,
		logger:  logger.Named("TokenService"),
	}
}

// AnalyzeToken assembles the canonical record for a contract address. Every
// upstream failure degrades to a sentinel field value; an unexpected failure
// during assembly degrades to a fully-sentineled record. The method never
// fails.
func (s *TokenService) AnalyzeToken(ctx context.Context, address string) (record entity.TokenRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Critical error in token analysis",
				zap.String("address", address), zap.Any("panic", r))
			record = errorTokenRecord(address)
		}
	}()

	if cached, ok := s.cache.Get(address); ok {
		return cached
	}

	start := time.Now()
	defer func() {
		metrics.TokenAnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	s.logger.Info("Analyzing token", zap.String("address", address))

	var (
		marketData  *entity.MonorailToken
		detailData  *entity.BlockvisionTokenDetail
		creator     string
		holderStats entity.HolderSummary
	)

	// Join-all fan-out: each branch absorbs its own failure into a safe
	// default and reports success, so one provider going down never
	// cancels the others.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.market.GetToken(gctx, address)
		if err != nil {
			s.logger.Warn("Monorail API failed", zap.String("address", address), zap.Error(err))
			data = &entity.MonorailToken{}
		}
		marketData = data
		return nil
	})
	g.Go(func() error {
		data, err := s.indexer.GetTokenDetail(gctx, address)
		if err != nil {
			s.logger.Warn("Blockvision detail API failed", zap.String("address", address), zap.Error(err))
			data = &entity.BlockvisionTokenDetail{Code: -1}
		}
		detailData = data
		return nil
	})
	g.Go(func() error {
		creator = s.creator.Resolve(gctx, address)
		return nil
	})
	g.Go(func() error {
		holderStats = s.holders.CountHolders(gctx, address)
		return nil
	})
	_ = g.Wait()

	decimals := 18
	if detailData.Result != nil && detailData.Result.Decimals > 0 {
		decimals = detailData.Result.Decimals
	}

	rawSupply := ""
	if detailData.Result != nil {
		rawSupply = detailData.Result.TotalSupply
	}
	if rawSupply == "" {
		rawSupply = marketData.TotalSupply
	}
	if rawSupply == "" {
		rawSupply = "0"
	}

	name, symbol := marketData.Name, marketData.Symbol
	var avatarURL *string
	if detailData.Result != nil {
		if detailData.Result.Name != "" {
			name = detailData.Result.Name
		}
		if detailData.Result.Symbol != "" {
			symbol = detailData.Result.Symbol
		}
		if detailData.Result.Logo != "" {
			logo := detailData.Result.Logo
			avatarURL = &logo
		}
	}
	if name == "" {
		name = entity.ErrorValue
	}
	if symbol == "" {
		symbol = entity.ErrorValue
	}

	verified := entity.Unverified
	if detailData.Result != nil && detailData.Result.Verified {
		verified = entity.Verified
	}

	creatorBalance := entity.NoData
	if creator != entity.NoData {
		creatorBalance = ClassifyCreatorBalance(creator, holderStats.TopHolders)
	}

	holdersCount := entity.ErrorValue
	if holderStats.TotalHolders > 0 {
		holdersCount = strconv.Itoa(holderStats.TotalHolders)
	}

	categories := marketData.Categories
	if categories == nil {
		categories = []string{}
	}

	record = entity.TokenRecord{
		Address:        address,
		Name:           name,
		Symbol:         symbol,
		AvatarURL:      avatarURL,
		Price:          parsePrice(marketData.UsdPerToken),
		PriceMon:       parsePrice(marketData.MonPerToken),
		TotalSupply:    utils.FormatSupply(rawSupply, decimals),
		Decimals:       decimals,
		Creator:        creator,
		CreatorBalance: creatorBalance,
		Holders:        holdersCount,
		MintAuthority:  entity.NoData, // no mint-authority source wired for this chain
		LpLocked:       entity.NoData, // no LP-lock source wired for this chain
		Verified:       verified,
		Categories:     categories,
		TopHolders:     holderStats.TopHolders,
		Markets:        []entity.Market{},
	}
	record.RiskAnalysis = AnalyzeRisks(record)

	s.cache.Set(address, record)

	s.logger.Info("Token analysis complete",
		zap.String("address", address),
		zap.String("creator", creator),
		zap.String("creatorBalance", creatorBalance),
		zap.Int("riskScore", record.RiskAnalysis.Score))
	return record
}

// CountHolders exposes the holder total on its own for the dedicated
// holders-count endpoint.
func (s *TokenService) CountHolders(ctx context.Context, address string) int {
	return s.holders.CountHolders(ctx, address).TotalHolders
}

func parsePrice(value string) float64 {
	if value == "" {
		return 0
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return price
}

func errorTokenRecord(address string) entity.TokenRecord {
	return entity.TokenRecord{
		Address:        address,
		Name:           entity.ErrorValue,
		Symbol:         entity.ErrorValue,
		AvatarURL:      nil,
		TotalSupply:    entity.ErrorValue,
		Decimals:       18,
		Creator:        entity.ErrorValue,
		CreatorBalance: entity.ErrorValue,
		Holders:        entity.ErrorValue,
		MintAuthority:  entity.NoData,
		LpLocked:       entity.NoData,
		Verified:       entity.ErrorValue,
		Categories:     []string{},
		TopHolders:     []entity.TopHolder{},
		Markets:        []entity.Market{},
		RiskAnalysis: entity.RiskAnalysis{
			Score:   0,
			Level:   entity.RiskGood,
			Reasons: []string{"Unable to analyze token due to data fetch errors"},
		},
	}
}
