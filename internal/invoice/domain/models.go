// Package domain contains the editable invoice document model.
//
// A Document value is a snapshot: mutation never happens in place.
// Every edit goes through the mutate package, which returns a new
// snapshot sharing untouched substructure with the old one.
package domain

import (
	"github.com/bwmarrin/snowflake"
)

// CodeType labels the bank routing code on an invoice. It only
// controls how the code is captioned, never how it is validated.
type CodeType string

const (
	CodeTypeIFSC    CodeType = "IFSC"
	CodeTypeSWIFT   CodeType = "SWIFT"
	CodeTypeIBAN    CodeType = "IBAN"
	CodeTypeRouting CodeType = "Routing"
)

// ContactInfo identifies either the issuing party or the billed party.
// All fields are free text; empty strings are legal.
type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// PaymentInfo carries the bank/transfer details printed on the invoice.
type PaymentInfo struct {
	BankName      string   `json:"bankName"`
	AccountName   string   `json:"accountName"`
	AccountNumber string   `json:"accountNumber"`
	SwiftCode     string   `json:"swiftCode"`
	CodeType      CodeType `json:"codeType"`
	UpiID         string   `json:"upiId"`
	Notes         string   `json:"notes"`
}

// LineItem is one billable row. Amount is derived (Quantity * Rate)
// and never stored.
type LineItem struct {
	ID          snowflake.ID `json:"id"`
	Description string       `json:"description"`
	Quantity    float64      `json:"quantity"`
	Rate        float64      `json:"rate"`
}

// Amount returns the line contribution to the subtotal.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// Document is the aggregate root for one editing session.
//
// Invariants: TaxRate >= 0 (a percentage, not a fraction), item
// Quantity and Rate >= 0, item IDs unique for the session's lifetime,
// Items kept in insertion order.
type Document struct {
	Number         string      `json:"number"`
	Date           string      `json:"date"`
	DueDate        string      `json:"dueDate"`
	CurrencySymbol string      `json:"currencySymbol"`
	Sender         ContactInfo `json:"sender"`
	Client         ContactInfo `json:"client"`
	Items          []LineItem  `json:"items"`
	PaymentInfo    PaymentInfo `json:"paymentInfo"`
	TaxRate        float64     `json:"taxRate"`
}

// Item returns the line item with the given id, if present.
func (d Document) Item(id snowflake.ID) (LineItem, bool) {
	for _, li := range d.Items {
		if li.ID == id {
			return li, true
		}
	}
	return LineItem{}, false
}

// CloneItems returns a fresh items slice. Edits that touch the item
// collection copy it first so older snapshots stay intact.
func (d Document) CloneItems() []LineItem {
	out := make([]LineItem, len(d.Items))
	copy(out, d.Items)
	return out
}
