package service

import (
	"reflect"
	"testing"

	"github.com/nftshinessy/montoks/internal/entity"
)

// safeRecord triggers none of the risk rules.
func safeRecord() entity.TokenRecord {
	return entity.TokenRecord{
		Address:        "0xtoken",
		MintAuthority:  entity.Revoked,
		Creator:        "0xcreator",
		CreatorBalance: "10.00%",
		LpLocked:       "Yes",
		Verified:       entity.Verified,
		TopHolders: []entity.TopHolder{
			{Address: "0xAAA", Percentage: 10},
			{Address: "0xBBB", Percentage: 5},
		},
	}
}

func TestAnalyzeRisksSafeRecord(t *testing.T) {
	got := AnalyzeRisks(safeRecord())
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if got.Level != entity.RiskGood {
		t.Errorf("Level = %q, want %q", got.Level, entity.RiskGood)
	}
	if len(got.Reasons) != 0 {
		t.Errorf("Reasons = %v, want empty", got.Reasons)
	}
}

func TestAnalyzeRisksMintAuthority(t *testing.T) {
	record := safeRecord()
	record.MintAuthority = entity.NoData

	got := AnalyzeRisks(record)
	if got.Score != 25 {
		t.Errorf("Score = %d, want 25", got.Score)
	}
	want := []string{"Mint authority enabled - Owner can create unlimited tokens"}
	if !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", got.Reasons, want)
	}
}

func TestAnalyzeRisksConcentrationBands(t *testing.T) {
	cases := []struct {
		name       string
		top10Total float64
		wantScore  int
		wantReason string
	}{
		{"extreme", 95, 30, "Extreme concentration - Top 10 control 95.00% of supply"},
		{"high", 75, 20, "High concentration - Top 10 control 75.00% of supply"},
		{"moderate", 50, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := safeRecord()
			// Five equal holders, each below the single-holder threshold.
			record.TopHolders = nil
			for i := 0; i < 5; i++ {
				record.TopHolders = append(record.TopHolders, entity.TopHolder{
					Address:    "0xholder",
					Percentage: tc.top10Total / 5,
				})
			}

			got := AnalyzeRisks(record)
			if got.Score != tc.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tc.wantScore)
			}
			if tc.wantReason == "" {
				if len(got.Reasons) != 0 {
					t.Errorf("Reasons = %v, want empty", got.Reasons)
				}
			} else if len(got.Reasons) != 1 || got.Reasons[0] != tc.wantReason {
				t.Errorf("Reasons = %v, want [%q]", got.Reasons, tc.wantReason)
			}
		})
	}
}

func TestAnalyzeRisksSingleHolderDominance(t *testing.T) {
	record := safeRecord()
	record.TopHolders = []entity.TopHolder{
		{Address: "0xwhale", Percentage: 45.5},
		{Address: "0xsmall", Percentage: 1},
	}

	got := AnalyzeRisks(record)
	if got.Score != 10 {
		t.Errorf("Score = %d, want 10", got.Score)
	}
	want := "Single holder dominance - Largest holder has 45.50%"
	if len(got.Reasons) != 1 || got.Reasons[0] != want {
		t.Errorf("Reasons = %v, want [%q]", got.Reasons, want)
	}
}

func TestAnalyzeRisksCreatorBalance(t *testing.T) {
	cases := []struct {
		name       string
		balance    string
		wantScore  int
		wantReason string
	}{
		{"sold", entity.Sold, 20, "Creator sold all tokens - High abandonment risk"},
		{"low holding", "1.50%", 15, "Low creator holding - Only 1.50%"},
		{"healthy holding", "5.00%", 0, ""},
		{"no data", entity.NoData, 0, ""},
		{"error", entity.ErrorValue, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := safeRecord()
			record.CreatorBalance = tc.balance

			got := AnalyzeRisks(record)
			if got.Score != tc.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tc.wantScore)
			}
			if tc.wantReason != "" {
				if len(got.Reasons) != 1 || got.Reasons[0] != tc.wantReason {
					t.Errorf("Reasons = %v, want [%q]", got.Reasons, tc.wantReason)
				}
			}
		})
	}
}

func TestAnalyzeRisksLiquidityAndVerification(t *testing.T) {
	record := safeRecord()
	record.LpLocked = "No"
	record.Verified = entity.Unverified

	got := AnalyzeRisks(record)
	if got.Score != 25 {
		t.Errorf("Score = %d, want 25", got.Score)
	}
	want := []string{
		"Liquidity not locked - High rug pull risk",
		"Token not verified - Higher scam risk",
	}
	if !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", got.Reasons, want)
	}
}

func TestAnalyzeRisksLockedLiquidityVariants(t *testing.T) {
	for _, locked := range []string{"Yes", "100%", "Locked 100"} {
		record := safeRecord()
		record.LpLocked = locked
		if got := AnalyzeRisks(record); got.Score != 0 {
			t.Errorf("LpLocked=%q: Score = %d, want 0", locked, got.Score)
		}
	}
}

func TestAnalyzeRisksAdvisoryReason(t *testing.T) {
	record := safeRecord()
	record.Creator = entity.NoData
	record.CreatorBalance = entity.NoData

	got := AnalyzeRisks(record)
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0 (advisory carries no weight)", got.Score)
	}
	want := []string{"Limited data available - Risk assessment may be incomplete"}
	if !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("Reasons = %v, want %v", got.Reasons, want)
	}
}

func TestAnalyzeRisksScoreClamped(t *testing.T) {
	record := entity.TokenRecord{
		MintAuthority:  entity.NoData,
		Creator:        "0xcreator",
		CreatorBalance: entity.Sold,
		LpLocked:       "No",
		Verified:       entity.Unverified,
		TopHolders: []entity.TopHolder{
			{Address: "0xwhale", Percentage: 95},
		},
	}

	// 25 + 30 + 10 + 20 + 15 + 10 = 110, clamped.
	got := AnalyzeRisks(record)
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Level != entity.RiskDanger {
		t.Errorf("Level = %q, want %q", got.Level, entity.RiskDanger)
	}
	if len(got.Reasons) != 6 {
		t.Errorf("len(Reasons) = %d, want 6", len(got.Reasons))
	}
}

func TestRiskLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  entity.RiskLevel
	}{
		{0, entity.RiskGood},
		{30, entity.RiskGood},
		{31, entity.RiskNormal},
		{60, entity.RiskNormal},
		{61, entity.RiskDanger},
		{100, entity.RiskDanger},
	}
	for _, tc := range cases {
		if got := riskLevel(tc.score); got != tc.want {
			t.Errorf("riskLevel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
