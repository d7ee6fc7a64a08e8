// Package currency holds the static currency catalog backing the
// document's currency selector.
package currency

import (
	"errors"
	"fmt"
)

// Currency is one catalog entry. Entries are compiled in and never
// change at runtime.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

var ErrNotFound = errors.New("currency_not_found")

// catalog order is display order.
var catalog = []Currency{
	{Code: "USD", Symbol: "$", Label: "US Dollar ($)"},
	{Code: "EUR", Symbol: "€", Label: "Euro (€)"},
	{Code: "GBP", Symbol: "£", Label: "British Pound (£)"},
	{Code: "INR", Symbol: "₹", Label: "Indian Rupee (₹)"},
	{Code: "JPY", Symbol: "¥", Label: "Japanese Yen (¥)"},
	{Code: "CAD", Symbol: "CA$", Label: "Canadian Dollar (CA$)"},
	{Code: "AUD", Symbol: "AU$", Label: "Australian Dollar (AU$)"},
	{Code: "SGD", Symbol: "S$", Label: "Singapore Dollar (S$)"},
	{Code: "CNY", Symbol: "CN¥", Label: "Chinese Yuan (CN¥)"},
}

// List returns the catalog in display order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func List() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}

// SymbolFor resolves a currency code to its display symbol.
func SymbolFor(code string) (string, error) {
	for _, c := range catalog {
		if c.Code == code {
			return c.Symbol, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, code)
}
