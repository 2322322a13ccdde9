package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

const (
	holdersPageSize = 50
	maxHolderPages  = 1000
	topHoldersLimit = 10
	holderPageDelay = 100 * time.Millisecond
)

type holdersFetcher interface {
	GetTokenHolders(ctx context.Context, address string, pageIndex, pageSize int) (*entity.BlockvisionTokenHolders, error)
}

// HolderCounter walks the chain-indexer holders listing page by page,
// accumulating the total holder count and capturing the top entries from
// the first page.
type HolderCounter struct {
	client    holdersFetcher
	logger    *zap.Logger
	pageDelay time.Duration
}

// NewHolderCounter creates a HolderCounter with the standard inter-page
// pacing delay.
func NewHolderCounter(client holdersFetcher, logger *zap.Logger) *HolderCounter {
	return &HolderCounter{
		client:    client,
		logger:    logger.Named("HolderCounter"),
		pageDelay: holderPageDelay,
	}
}

// CountHolders returns the total holder count across all pages plus up to
// ten top holders from the first page. Every failure mode degrades to the
// partial result accumulated so far; the method never fails.
func (h *HolderCounter) CountHolders(ctx context.Context, address string) (summary entity.HolderSummary) {
	summary.TopHolders = []entity.TopHolder{}

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Holder pagination aborted", zap.String("address", address), zap.Any("panic", r))
			summary = entity.HolderSummary{TopHolders: []entity.TopHolder{}}
		}
	}()

	h.logger.Debug("Starting holder count", zap.String("address", address))

	// One page per pageDelay; the initial burst token makes the first
	// request immediate, so the delay only applies between pages.
	pacer := rate.NewLimiter(rate.Every(h.pageDelay), 1)

	pageIndex := 1
	for {
		if err := pacer.Wait(ctx); err != nil {
			h.logger.Warn("Holder pagination cancelled",
				zap.String("address", address), zap.Int("pageIndex", pageIndex), zap.Error(err))
			break
		}

		page, err := h.client.GetTokenHolders(ctx, address, pageIndex, holdersPageSize)
		if err != nil {
			h.logger.Warn("Failed to fetch holders page, stopping pagination",
				zap.String("address", address), zap.Int("pageIndex", pageIndex), zap.Error(err))
			break
		}
		metrics.HolderPagesFetched.Inc()

		if page.Code != 0 || page.Result == nil || page.Result.Data == nil {
			h.logger.Warn("Invalid holders response, stopping pagination",
				zap.String("address", address), zap.Int("pageIndex", pageIndex), zap.Int("code", page.Code))
			break
		}

		holdersOnPage := len(page.Result.Data)
		summary.TotalHolders += holdersOnPage

		if pageIndex == 1 {
			for i, holder := range page.Result.Data {
				if i >= topHoldersLimit {
					break
				}
				summary.TopHolders = append(summary.TopHolders, entity.TopHolder{
					Address:    holder.HolderAddress(),
					Percentage: float64(holder.Percentage),
				})
			}
		}

		if holdersOnPage < holdersPageSize {
			break
		}
		if page.Result.NextPageIndex <= pageIndex {
			break
		}

		pageIndex++
		if pageIndex > maxHolderPages {
			h.logger.Warn("Reached maximum page limit, stopping pagination",
				zap.String("address", address), zap.Int("maxPages", maxHolderPages))
			break
		}
	}

	h.logger.Debug("Holder count finished",
		zap.String("address", address), zap.Int("totalHolders", summary.TotalHolders))
	return summary
}
