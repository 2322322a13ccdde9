package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
)

type creatorFetcher interface {
	GetContractCreator(ctx context.Context, contractAddress string) (string, error)
}

// CreatorResolver resolves the deployer address of a contract via the
// block-explorer and classifies the deployer's current holding.
type CreatorResolver struct {
	client creatorFetcher
	logger *zap.Logger
}

// NewCreatorResolver creates a new CreatorResolver.
func NewCreatorResolver(client creatorFetcher, logger *zap.Logger) *CreatorResolver {
	return &CreatorResolver{
		client: client,
		logger: logger.Named("CreatorResolver"),
	}
}

// Resolve returns the creator address of a contract, or "No Data" when the
// explorer cannot provide one.
func (r *CreatorResolver) Resolve(ctx context.Context, address string) string {
	creator, err := r.client.GetContractCreator(ctx, address)
	if err != nil || creator == "" {
		r.logger.Warn("Failed to resolve contract creator",
			zap.String("address", address), zap.Error(err))
		return entity.NoData
	}
	return creator
}

// ClassifyCreatorBalance locates the creator within the tracked top holders.
// A sentinel creator yields "No Data"; a creator absent from the set has
// distributed all tracked holdings and yields "SOLD"; otherwise the holding
// is formatted to two decimals with a trailing percent sign.
func ClassifyCreatorBalance(creator string, holders []entity.TopHolder) string {
	if creator == "" || creator == entity.NoData || creator == entity.ErrorValue {
		return entity.NoData
	}

	for _, holder := range holders {
		if strings.EqualFold(holder.Address, creator) {
			return decimal.NewFromFloat(holder.Percentage).StringFixed(2) + "%"
		}
	}
	return entity.Sold
}
