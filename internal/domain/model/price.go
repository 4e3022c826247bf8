package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a price is normalized to.
const PriceScale = 2

// Price is a decimal amount kept at PriceScale fractional digits.
// It encodes to JSON as a fixed-point string, e.g. "12.50".
type Price struct {
	decimal.Decimal
}

// NewPrice rounds d to PriceScale digits.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(PriceScale)}
}

// ParsePrice parses a decimal string and normalizes it.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(d), nil
}

// MustParsePrice is like ParsePrice but panics on malformed input.
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the fixed-point representation.
func (p Price) String() string {
	return p.StringFixed(PriceScale)
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts both quoted and bare decimal numbers.
func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = NewPrice(d)
	return nil
}

// Equal reports whether two prices hold the same amount.
func (p Price) Equal(other Price) bool {
	return p.Decimal.Equal(other.Decimal)
}
