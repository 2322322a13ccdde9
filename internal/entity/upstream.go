package entity

import (
	"bytes"
	"strconv"
)

// MonorailToken is the market-data payload for a single token. All fields
// are optional, the API omits what it does not know.
type MonorailToken struct {
	Address     string   `json:"address"`
	Balance     string   `json:"balance"`
	Categories  []string `json:"categories"`
	Decimals    int      `json:"decimals"`
	MonPerToken string   `json:"mon_per_token"`
	MonValue    string   `json:"mon_value"`
	Name        string   `json:"name"`
	Pconf       string   `json:"pconf"`
	Symbol      string   `json:"symbol"`
	UsdPerToken string   `json:"usd_per_token"`
	TotalSupply string   `json:"totalSupply"`
	Holders     int      `json:"holders"`
}

// BlockvisionTokenDetail is the chain-indexer token detail response.
// Code 0 means success; the client substitutes code -1 when the call
// itself failed so callers can treat both paths uniformly.
type BlockvisionTokenDetail struct {
	Code    int                           `json:"code"`
	Reason  string                        `json:"reason"`
	Message string                        `json:"message"`
	Result  *BlockvisionTokenDetailResult `json:"result"`
}

// BlockvisionTokenDetailResult is the payload of a successful detail lookup.
type BlockvisionTokenDetailResult struct {
	ContractAddress string `json:"contractAddress"`
	Logo            string `json:"logo"`
	Symbol          string `json:"symbol"`
	Decimals        int    `json:"decimals"`
	Name            string `json:"name"`
	Website         string `json:"website"`
	TotalSupply     string `json:"totalSupply"`
	Verified        bool   `json:"verified"`
}

// FlexFloat decodes numeric values that the indexer serializes
// inconsistently as either a JSON number or a quoted string.
// Unparseable input decodes to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// BlockvisionHolderEntry is one row of a holders page. Which address field
// is populated varies by token type, callers should use HolderAddress.
type BlockvisionHolderEntry struct {
	Holder         string    `json:"holder"`
	AccountAddress string    `json:"accountAddress"`
	Address        string    `json:"address"`
	Percentage     FlexFloat `json:"percentage"`
	Amount         string    `json:"amount"`
	IsContract     bool      `json:"isContract"`
}

// HolderAddress returns the first populated address field, or Unknown.
func (e BlockvisionHolderEntry) HolderAddress() string {
	switch {
	case e.Holder != "":
		return e.Holder
	case e.AccountAddress != "":
		return e.AccountAddress
	case e.Address != "":
		return e.Address
	default:
		return Unknown
	}
}

// BlockvisionTokenHolders is one page of the chain-indexer holders listing.
type BlockvisionTokenHolders struct {
	Code    int                            `json:"code"`
	Reason  string                         `json:"reason"`
	Message string                         `json:"message"`
	Result  *BlockvisionTokenHoldersResult `json:"result"`
}

// BlockvisionTokenHoldersResult is the payload of a holders page.
type BlockvisionTokenHoldersResult struct {
	TotalHolder   int                      `json:"totalHolder"`
	Data          []BlockvisionHolderEntry `json:"data"`
	NextPageIndex int                      `json:"nextPageIndex"`
}

// EtherscanCreationResponse is the block-explorer contract-creation lookup.
// Status "1" means success; on error Result often degrades to a string and
// fails to decode, which callers treat the same as an empty result.
type EtherscanCreationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  []struct {
		ContractAddress string `json:"contractAddress"`
		ContractCreator string `json:"contractCreator"`
		TxHash          string `json:"txHash"`
	} `json:"result"`
}

// MonorailSymbolPrice is the market-data response for a symbol pair quote.
type MonorailSymbolPrice struct {
	Price string `json:"price"`
}
