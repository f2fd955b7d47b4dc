package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyDB mirrors a row of the currencies table.
type CurrencyDB struct {
	ID   int64           `db:"id"`
	Code string          `db:"code"`
	Rate decimal.Decimal `db:"rate"`
}

// Currency is the wire representation of a stored currency rate.
// Rates are quoted against RUB and carried as decimal strings, never
// binary floats, so both services round identically.
// swagger:model Currency
type Currency struct {
	// Canonical uppercase currency code
	// example: USD
	Code string `json:"code"`

	// Rate to RUB with up to 6 fractional digits
	// example: 75.5
	Rate decimal.Decimal `json:"rate"`
}

// Conversion is the result of converting an amount of a currency to RUB.
// Result carries exactly 2 fractional digits.
// swagger:model Conversion
type Conversion struct {
	// Currency code the amount was quoted in
	// example: USD
	Code string `json:"code"`

	// Amount converted
	// example: 10
	Amount decimal.Decimal `json:"amount"`

	// Rate used
	// example: 75.5
	Rate decimal.Decimal `json:"rate"`

	// Amount in RUB, rounded to 2 fractional digits
	// example: 755.00
	Result decimal.Decimal `json:"result"`
}

// CurrencyEvent is published to Kafka after every successful mutation
// so operators can reconcile the table manually.
type CurrencyEvent struct {
	Operation string          `json:"operation"` // add, update or delete
	Code      string          `json:"code"`
	Rate      decimal.Decimal `json:"rate,omitempty"`
	At        time.Time       `json:"at"`
}
