// Package codec serializes documents so a session can be saved and
// restored. The wire form is JSON matching the domain model's tags.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

var ErrMalformedDocument = errors.New("malformed_document")

// Encode renders a snapshot as indented JSON.
func Encode(doc domain.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a serialized document and checks the model invariants
// a live session relies on. Violations fail with ErrMalformedDocument.
func Decode(data []byte) (domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := validate(doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func validate(doc domain.Document) error {
	if doc.TaxRate < 0 {
		return fmt.Errorf("%w: negative tax rate", ErrMalformedDocument)
	}
	seen := make(map[snowflake.ID]struct{}, len(doc.Items))
	for _, li := range doc.Items {
		if li.Quantity < 0 {
			return fmt.Errorf("%w: item %s has negative quantity", ErrMalformedDocument, li.ID)
		}
		if li.Rate < 0 {
			return fmt.Errorf("%w: item %s has negative rate", ErrMalformedDocument, li.ID)
		}
		if _, dup := seen[li.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %s", ErrMalformedDocument, li.ID)
		}
		seen[li.ID] = struct{}{}
	}
	return nil
}
