package domain

import "github.com/shopspring/decimal"

// Stock is a tracked entity. Stocks are created outside of the sync
// scripts; the sync only ever updates Price.
type Stock struct {
	StockID     int32
	Symbol      string
	CompanyName string
	Price       *decimal.Decimal
}

// OwnersByStock groups user ids by the stock they are linked to
type OwnersByStock map[int32][]int32
