package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$3300.00", Money("$", 3300))
	assert.Equal(t, "€0.00", Money("€", 0))
	// rounding happens at render time only
	assert.Equal(t, "₹3.46", Money("₹", 3.456))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "20", Quantity(20))
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "0", Quantity(0))
}

func TestNumber(t *testing.T) {
	issued := time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC)

	got, err := Number("INV-{YYYY}-{SEQ3}", issued, 1)
	assert.NoError(t, err)
	assert.Equal(t, "INV-2024-001", got)

	got, err = Number("INV-{YYYY}{MM}{DD}-{SEQ6}", issued, 42)
	assert.NoError(t, err)
	assert.Equal(t, "INV-20240309-000042", got)

	got, err = Number("{YY}/{SEQ}", issued, 7)
	assert.NoError(t, err)
	assert.Equal(t, "24/7", got)
}

func TestNumber_Errors(t *testing.T) {
	issued := time.Now()

	_, err := Number("", issued, 1)
	assert.Error(t, err)

	_, err = Number("INV-{SEQ}", issued, 0)
	assert.Error(t, err)

	_, err = Number("INV-{NOPE}", issued, 1)
	assert.Error(t, err)
}
