package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_OrderAndSize(t *testing.T) {
	list := List()
	require.Len(t, list, 9)

	assert.Equal(t, "USD", list[0].Code)
	assert.Equal(t, "CNY", list[8].Code)
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].Symbol = "XXX"

	assert.Equal(t, "$", List()[0].Symbol)
}

func TestSymbolFor(t *testing.T) {
	symbol, err := SymbolFor("GBP")
	assert.NoError(t, err)
	assert.Equal(t, "£", symbol)

	_, err = SymbolFor("BTC")
	assert.ErrorIs(t, err, ErrNotFound)
}
