// Package bank is the mock account that quiz winnings are paid into. It keeps
// one in-memory account and never moves real money.
package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in cents.
type Money int64

var printer = message.NewPrinter(language.English)

// Dollars builds a Money value from whole dollars.
func Dollars(d int64) Money {
	return Money(d * 100)
}

// String formats the absolute amount as US dollars, e.g. "$15,420.50".
func (m Money) String() string {
	abs := int64(m)
	if abs < 0 {
		abs = -abs
	}
	return printer.Sprintf("$%d.%02d", abs/100, abs%100)
}

// Signed formats the amount with a leading minus for debits.
func (m Money) Signed() string {
	if m < 0 {
		return "-" + m.String()
	}
	return m.String()
}

// Whole formats the amount without cents when it has none, the way prize labels read.
func (m Money) Whole() string {
	if m%100 != 0 {
		return m.String()
	}
	abs := int64(m)
	if abs < 0 {
		abs = -abs
	}
	return printer.Sprintf("$%d", abs/100)
}

// ParseAmount reads a user-entered amount such as "250", "1,234.50" or "$32,000".
func ParseAmount(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !digitsOnly(whole) || (hasFrac && !digitsOnly(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		if cents, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
	}
	if dollars > (math.MaxInt64-cents)/100 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, raw)
	}
	return Money(dollars*100 + cents), nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FromPrizeLabel converts a prize ladder label into Money.
func FromPrizeLabel(label string) (Money, error) {
	return ParseAmount(label)
}
