package entity

// Sentinel values used across provider-derived fields. The exact spellings
// are part of the external contract consumed by the frontend.
const (
	NoData     = "No Data"
	ErrorValue = "Error"
	Sold       = "SOLD"
	Verified   = "Verified"
	Unverified = "Unverified"
	Revoked    = "Revoked"
	Unknown    = "Unknown"
)

// RiskLevel is the risk bucket derived from the score.
type RiskLevel string

const (
	RiskGood   RiskLevel = "Good"
	RiskNormal RiskLevel = "Normal"
	RiskDanger RiskLevel = "Danger"
)

// RiskAnalysis is the scoring result attached to a TokenRecord.
type RiskAnalysis struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
}

// TopHolder is a single entry of the top-holder list, percentages as
// reported by the indexer's first holders page.
type TopHolder struct {
	Address    string  `json:"address"`
	Percentage float64 `json:"percentage"`
}

// Market is a trading venue for the token. The upstream never populated
// this, the empty list is a stable contract.
type Market struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TokenRecord is the canonical assembled view of a token contract. Fields
// that could not be resolved carry the sentinel values above instead of
// failing the whole record.
type TokenRecord struct {
	Address        string       `json:"address"`
	Name           string       `json:"name"`
	Symbol         string       `json:"symbol"`
	AvatarURL      *string      `json:"avatarUrl"`
	Price          float64      `json:"price"`
	PriceMon       float64      `json:"priceMon"`
	TotalSupply    string       `json:"totalSupply"`
	Decimals       int          `json:"decimals"`
	Creator        string       `json:"creator"`
	CreatorBalance string       `json:"creatorBalance"`
	Holders        string       `json:"holders"`
	MintAuthority  string       `json:"mintAuthority"`
	LpLocked       string       `json:"lpLocked"`
	Verified       string       `json:"verified"`
	Categories     []string     `json:"categories"`
	TopHolders     []TopHolder  `json:"topHolders"`
	Markets        []Market     `json:"markets"`
	RiskAnalysis   RiskAnalysis `json:"riskAnalysis"`
}

// HolderSummary is the output of the holder pagination: the total number of
// holders seen across all pages and up to ten entries from the first page.
type HolderSummary struct {
	TotalHolders int         `json:"totalHolders"`
	TopHolders   []TopHolder `json:"topHolders"`
}
