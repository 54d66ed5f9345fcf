package domain

import "github.com/shopspring/decimal"

func init() {
	// The inventory API exchanges prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
