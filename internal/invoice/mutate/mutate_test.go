package mutate

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/invoice/calc"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func templateDoc(node *snowflake.Node) domain.Document {
	return domain.DefaultDocument(node, domain.SeedOptions{
		Number:         "INV-2024-001",
		CurrencySymbol: "$",
	})
}

func TestSetRootField_Strings(t *testing.T) {
	doc := templateDoc(newNode(t))

	next, err := SetRootField(doc, RootNumber, "INV-2024-099")
	assert.NoError(t, err)
	assert.Equal(t, "INV-2024-099", next.Number)

	next, err = SetRootField(doc, RootDate, "")
	assert.NoError(t, err)
	assert.Equal(t, "", next.Date)

	next, err = SetRootField(doc, RootCurrencySymbol, "€")
	assert.NoError(t, err)
	assert.Equal(t, "€", next.CurrencySymbol)
}

func TestSetRootField_TaxRateCoercion(t *testing.T) {
	doc := templateDoc(newNode(t))

	next, err := SetRootField(doc, RootTaxRate, "18.5")
	assert.NoError(t, err)
	assert.Equal(t, 18.5, next.TaxRate)

	next, err = SetRootField(doc, RootTaxRate, "abc")
	assert.NoError(t, err)
	assert.Zero(t, next.TaxRate)

	next, err = SetRootField(doc, RootTaxRate, "-4")
	assert.NoError(t, err)
	assert.Zero(t, next.TaxRate)

	next, err = SetRootField(doc, RootTaxRate, "NaN")
	assert.NoError(t, err)
	assert.Zero(t, next.TaxRate)
}

func TestSetRootField_Unknown(t *testing.T) {
	doc := templateDoc(newNode(t))

	_, err := SetRootField(doc, RootField("subtotal"), "100")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSetSectionField_LeavesSiblingsUntouched(t *testing.T) {
	doc := templateDoc(newNode(t))

	next, err := SetSectionField(doc, SectionClient, "email", "billing@client.com")
	require.NoError(t, err)

	assert.Equal(t, "billing@client.com", next.Client.Email)
	assert.Equal(t, doc.Client.Name, next.Client.Name)
	assert.Equal(t, doc.Client.Address, next.Client.Address)
	assert.Equal(t, doc.Sender, next.Sender)
}

func TestSetSectionField_PaymentInfo(t *testing.T) {
	doc := templateDoc(newNode(t))

	next, err := SetSectionField(doc, SectionPaymentInfo, "codeType", "IBAN")
	require.NoError(t, err)
	assert.Equal(t, domain.CodeTypeIBAN, next.PaymentInfo.CodeType)
	assert.Equal(t, doc.PaymentInfo.SwiftCode, next.PaymentInfo.SwiftCode)
}

func TestSetSectionField_UnknownFieldAndSection(t *testing.T) {
	doc := templateDoc(newNode(t))

	_, err := SetSectionField(doc, SectionSender, "fax", "555")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = SetSectionField(doc, Section("shipping"), "name", "x")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSetItemField(t *testing.T) {
	doc := templateDoc(newNode(t))
	id := doc.Items[0].ID

	next, err := SetItemField(doc, id, ItemDescription, "Backend work")
	require.NoError(t, err)
	assert.Equal(t, "Backend work", next.Items[0].Description)

	next, err = SetItemField(doc, id, ItemQuantity, "12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, next.Items[0].Quantity)

	next, err = SetItemField(doc, id, ItemRate, "not-a-number")
	require.NoError(t, err)
	assert.Zero(t, next.Items[0].Rate)
}

func TestSetItemField_UnknownIDIsNoOp(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	next, err := SetItemField(doc, node.Generate(), ItemQuantity, "99")
	assert.NoError(t, err)
	assert.Equal(t, doc, next)
}

func TestSetItemField_DoesNotMutateOldSnapshot(t *testing.T) {
	doc := templateDoc(newNode(t))
	id := doc.Items[1].ID

	next, err := SetItemField(doc, id, ItemQuantity, "42")
	require.NoError(t, err)

	assert.Equal(t, 10.0, doc.Items[1].Quantity)
	assert.Equal(t, 42.0, next.Items[1].Quantity)
}

func TestAddItem(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	id := node.Generate()
	next := AddItem(doc, id, "")

	require.Len(t, next.Items, 4)
	added := next.Items[3]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, DefaultItemDescription, added.Description)
	assert.Equal(t, 1.0, added.Quantity)
	assert.Zero(t, added.Rate)

	// original snapshot untouched
	assert.Len(t, doc.Items, 3)
}

func TestAddThenDeleteRestoresDocument(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	id := node.Generate()
	next := DeleteItem(AddItem(doc, id, ""), id)

	assert.Equal(t, doc, next)
}

func TestDeleteItem(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	next := DeleteItem(doc, doc.Items[1].ID)
	require.Len(t, next.Items, 2)
	assert.Equal(t, doc.Items[0].ID, next.Items[0].ID)
	assert.Equal(t, doc.Items[2].ID, next.Items[1].ID)

	// absent id is a no-op
	same := DeleteItem(next, node.Generate())
	assert.Equal(t, next, same)

	// emptying the collection is legal
	empty := DeleteItem(DeleteItem(next, next.Items[0].ID), next.Items[1].ID)
	assert.Empty(t, empty.Items)
	assert.Zero(t, calc.Compute(empty).Subtotal)
}

func TestDeleteThenAddRecomputesSubtotal(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	// remove the 10 x 85 row, then add a fresh one (1 x 0)
	next := DeleteItem(doc, doc.Items[1].ID)
	next = AddItem(next, node.Generate(), "")

	require.Len(t, next.Items, 3)
	assert.InDelta(t, 2150.0, calc.Compute(next).Subtotal, 1e-9)
}

func TestItemIDsNeverReused(t *testing.T) {
	node := newNode(t)
	doc := templateDoc(node)

	seen := map[snowflake.ID]struct{}{}
	for _, li := range doc.Items {
		seen[li.ID] = struct{}{}
	}

	for i := 0; i < 100; i++ {
		id := node.Generate()
		doc = AddItem(doc, id, "")
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		doc = DeleteItem(doc, id)
	}
}
