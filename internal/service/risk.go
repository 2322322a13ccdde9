package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nftshinessy/montoks/internal/entity"
)

// Rule weights of the heuristic risk model.
const (
	weightMintAuthority        = 25
	weightExtremeConcentration = 30
	weightHighConcentration    = 20
	weightSingleHolder         = 10
	weightCreatorSold          = 20
	weightLowCreatorHolding    = 15
	weightLiquidityUnlocked    = 15
	weightUnverified           = 10
)

// AnalyzeRisks maps an assembled token record to a bounded risk score with
// one human-readable reason per triggered rule, in rule order. It is a pure
// function of the record.
func AnalyzeRisks(record entity.TokenRecord) entity.RiskAnalysis {
	reasons := []string{}
	score := 0

	if record.MintAuthority != entity.Revoked {
		score += weightMintAuthority
		reasons = append(reasons, "Mint authority enabled - Owner can create unlimited tokens")
	}

	if len(record.TopHolders) > 0 {
		top := record.TopHolders
		if len(top) > topHoldersLimit {
			top = top[:topHoldersLimit]
		}
		var top10Ownership float64
		for _, holder := range top {
			top10Ownership += holder.Percentage
		}

		if top10Ownership > 90 {
			score += weightExtremeConcentration
			reasons = append(reasons, fmt.Sprintf("Extreme concentration - Top 10 control %.2f%% of supply", top10Ownership))
		} else if top10Ownership > 70 {
			score += weightHighConcentration
			reasons = append(reasons, fmt.Sprintf("High concentration - Top 10 control %.2f%% of supply", top10Ownership))
		}

		if record.TopHolders[0].Percentage > 20 {
			score += weightSingleHolder
			reasons = append(reasons, fmt.Sprintf("Single holder dominance - Largest holder has %.2f%%", record.TopHolders[0].Percentage))
		}
	}

	if record.CreatorBalance == entity.Sold {
		score += weightCreatorSold
		reasons = append(reasons, "Creator sold all tokens - High abandonment risk")
	} else if record.CreatorBalance != entity.NoData && record.CreatorBalance != entity.ErrorValue {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(record.CreatorBalance, "%"), 64)
		if err == nil && pct < 2 {
			score += weightLowCreatorHolding
			reasons = append(reasons, fmt.Sprintf("Low creator holding - Only %s", record.CreatorBalance))
		}
	}

	if !strings.Contains(record.LpLocked, "100") && !strings.Contains(record.LpLocked, "Yes") {
		score += weightLiquidityUnlocked
		reasons = append(reasons, "Liquidity not locked - High rug pull risk")
	}

	if record.Verified != entity.Verified {
		score += weightUnverified
		reasons = append(reasons, "Token not verified - Higher scam risk")
	}

	if score > 100 {
		score = 100
	}

	if record.Creator == entity.NoData || record.LpLocked == entity.NoData {
		reasons = append(reasons, "Limited data available - Risk assessment may be incomplete")
	}

	return entity.RiskAnalysis{
		Score:   score,
		Level:   riskLevel(score),
		Reasons: reasons,
	}
}

func riskLevel(score int) entity.RiskLevel {
	switch {
	case score <= 30:
		return entity.RiskGood
	case score <= 60:
		return entity.RiskNormal
	default:
		return entity.RiskDanger
	}
}
