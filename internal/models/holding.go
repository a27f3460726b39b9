package models

import (
	"strings"
	"time"

	"folio/internal/uuid"

	"gorm.io/gorm"
)

// AssetCategory is the display category of a holding, derived from the
// market data quote type on every load.
type AssetCategory string

const (
	CategoryEquity  AssetCategory = "Equity"
	CategoryETF     AssetCategory = "ETF"
	CategoryCrypto  AssetCategory = "Cryptocurrency"
	CategoryUnknown AssetCategory = "Unknown"
)

// Holding represents a single tracked position. Only ticker, shares and
// investment are durable; the market-derived fields are recomputed from a
// live quote on every load and never written to the database.
//
// No Base embed: a removed ticker must be re-addable, so holdings are hard
// deleted and the (user_id, ticker) unique index stays free.
type Holding struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_holdings_user_ticker" json:"-"`
	// Ticker is stored in escaped form (dots replaced with underscores)
	// and unescaped when read back. At most one holding per ticker.
	Ticker     string  `gorm:"not null;uniqueIndex:uq_holdings_user_ticker" json:"ticker"`
	Shares     float64 `gorm:"not null" json:"shares"`
	Investment float64 `gorm:"not null" json:"investment"`

	// Derived fields, populated by enrichment.
	Name             string        `gorm:"-" json:"name,omitempty"`
	Category         AssetCategory `gorm:"-" json:"category,omitempty"`
	Price            float64       `gorm:"-" json:"price"`
	Value            float64       `gorm:"-" json:"value"`
	Profit           float64       `gorm:"-" json:"profit"`
	ProfitPercentage float64       `gorm:"-" json:"profit_percentage"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New()
	}
	return nil
}

// EscapeTicker converts a display ticker to its storage key form.
// Exchange-suffixed tickers contain dots, which the original store could
// not use in keys, so the escaped form is kept for compatibility.
func EscapeTicker(ticker string) string {
	return strings.ReplaceAll(ticker, ".", "_")
}

// UnescapeTicker converts a storage key back to the display ticker.
func UnescapeTicker(ticker string) string {
	return strings.ReplaceAll(ticker, "_", ".")
}
