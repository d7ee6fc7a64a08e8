package codec

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	doc := domain.DefaultDocument(node, domain.SeedOptions{
		Number:         "INV-2024-007",
		CurrencySymbol: "₹",
		TaxRate:        18,
	})

	data, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestDecode_RejectsBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{"number": `))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDecode_RejectsNegativeQuantity(t *testing.T) {
	_, err := Decode([]byte(`{"number":"INV-1","items":[{"id":"1","description":"x","quantity":-2,"rate":10}]}`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDecode_RejectsNegativeTaxRate(t *testing.T) {
	_, err := Decode([]byte(`{"number":"INV-1","taxRate":-5,"items":[]}`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDecode_RejectsDuplicateItemIDs(t *testing.T) {
	payload := `{"number":"INV-1","items":[
		{"id":"7","description":"a","quantity":1,"rate":1},
		{"id":"7","description":"b","quantity":1,"rate":1}
	]}`
	_, err := Decode([]byte(payload))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
