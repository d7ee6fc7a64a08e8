// Package mutate implements the edit operations on a document snapshot.
//
// Every operation maps (snapshot, edit) -> new snapshot. Inputs are
// never modified: Document travels by value and the items slice is
// cloned before it is touched, so a caller holding an older snapshot
// never observes a change.
//
// Field names form a closed set per entity. An edit naming an unknown
// root, section, or item field fails with ErrUnknownField so a typo is
// distinguishable from an intentional no-op. An edit naming a line
// item id that is not in the document is a silent no-op.
package mutate

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

var (
	ErrUnknownSection = errors.New("unknown_section")
	ErrUnknownField   = errors.New("unknown_field")
)

// RootField names a top-level scalar on the document.
type RootField string

const (
	RootNumber         RootField = "number"
	RootDate           RootField = "date"
	RootDueDate        RootField = "dueDate"
	RootCurrencySymbol RootField = "currencySymbol"
	RootTaxRate        RootField = "taxRate"
)

// Section names one of the nested objects on the document.
type Section string

const (
	SectionSender      Section = "sender"
	SectionClient      Section = "client"
	SectionPaymentInfo Section = "paymentInfo"
)

// ItemField names an editable field on a line item.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemQuantity    ItemField = "quantity"
	ItemRate        ItemField = "rate"
)

// DefaultItemDescription seeds the description of a freshly added row.
const DefaultItemDescription = "New Service Item"

// SetRootField replaces one top-level scalar. String fields take the
// value verbatim, empty string included. TaxRate is coerced: anything
// that does not parse as a number becomes 0.
func SetRootField(doc domain.Document, field RootField, value string) (domain.Document, error) {
	switch field {
	case RootNumber:
		doc.Number = value
	case RootDate:
		doc.Date = value
	case RootDueDate:
		doc.DueDate = value
	case RootCurrencySymbol:
		doc.CurrencySymbol = value
	case RootTaxRate:
		doc.TaxRate = parseAmount(value)
	default:
		return doc, ErrUnknownField
	}
	return doc, nil
}

// SetSectionField replaces exactly one field inside a nested section,
// leaving its siblings untouched.
func SetSectionField(doc domain.Document, section Section, field, value string) (domain.Document, error) {
	switch section {
	case SectionSender:
		next, err := setContactField(doc.Sender, field, value)
		if err != nil {
			return doc, err
		}
		doc.Sender = next
	case SectionClient:
		next, err := setContactField(doc.Client, field, value)
		if err != nil {
			return doc, err
		}
		doc.Client = next
	case SectionPaymentInfo:
		next, err := setPaymentField(doc.PaymentInfo, field, value)
		if err != nil {
			return doc, err
		}
		doc.PaymentInfo = next
	default:
		return doc, ErrUnknownSection
	}
	return doc, nil
}

func setContactField(info domain.ContactInfo, field, value string) (domain.ContactInfo, error) {
	switch field {
	case "name":
		info.Name = value
	case "email":
		info.Email = value
	case "address":
		info.Address = value
	case "phone":
		info.Phone = value
	default:
		return info, ErrUnknownField
	}
	return info, nil
}

func setPaymentField(info domain.PaymentInfo, field, value string) (domain.PaymentInfo, error) {
	switch field {
	case "bankName":
		info.BankName = value
	case "accountName":
		info.AccountName = value
	case "accountNumber":
		info.AccountNumber = value
	case "swiftCode":
		info.SwiftCode = value
	case "codeType":
		info.CodeType = domain.CodeType(value)
	case "upiId":
		info.UpiID = value
	case "notes":
		info.Notes = value
	default:
		return info, ErrUnknownField
	}
	return info, nil
}

// SetItemField edits one field of the line item with the given id.
// Description is stored verbatim; quantity and rate are coerced to
// numbers with non-numeric input becoming 0. If no item carries the
// id the document is returned unchanged.
func SetItemField(doc domain.Document, id snowflake.ID, field ItemField, value string) (domain.Document, error) {
	idx := -1
	for i, li := range doc.Items {
		if li.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc, nil
	}

	items := doc.CloneItems()
	switch field {
	case ItemDescription:
		items[idx].Description = value
	case ItemQuantity:
		items[idx].Quantity = parseAmount(value)
	case ItemRate:
		items[idx].Rate = parseAmount(value)
	default:
		return doc, ErrUnknownField
	}
	doc.Items = items
	return doc, nil
}

// AddItem appends a new row with the given id, quantity 1 and rate 0.
// The id must come from the session's generator so it can never
// collide with an id already used this session.
func AddItem(doc domain.Document, id snowflake.ID, description string) domain.Document {
	if description == "" {
		description = DefaultItemDescription
	}
	items := doc.CloneItems()
	items = append(items, domain.LineItem{
		ID:          id,
		Description: description,
		Quantity:    1,
		Rate:        0,
	})
	doc.Items = items
	return doc
}

// DeleteItem removes the row with the given id. Absent ids are a
// no-op; deleting the last row leaves a legal empty collection.
func DeleteItem(doc domain.Document, id snowflake.ID) domain.Document {
	items := make([]domain.LineItem, 0, len(doc.Items))
	for _, li := range doc.Items {
		if li.ID != id {
			items = append(items, li)
		}
	}
	if len(items) == len(doc.Items) {
		return doc
	}
	doc.Items = items
	return doc
}

// parseAmount coerces user input to a non-negative number. Anything
// unparsable becomes 0 rather than an error, and the field stays
// visibly at 0 instead of reverting to its prior value.
func parseAmount(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
