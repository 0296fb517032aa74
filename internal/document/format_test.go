package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "100,00 €", FormatEUR("100"))
	assert.Equal(t, "1 234,50 €", FormatEUR("1234.5"))
	assert.Equal(t, "1 234 567,89 €", FormatEUR("1234567.89"))
	assert.Equal(t, "0,50 €", FormatEUR("0.5"))
}

func TestFormatEURUnparsableRendersZero(t *testing.T) {
	assert.Equal(t, "0,00 €", FormatEUR(""))
	assert.Equal(t, "0,00 €", FormatEUR("abc"))
}

func TestFormatEURNegative(t *testing.T) {
	assert.Equal(t, "-1 234,50 €", FormatEURAmount(-1234.5))
}

func TestFormatEURIdempotentUnderReparse(t *testing.T) {
	// formatting the value parsed back from a formatted string must not drift
	assert.Equal(t, FormatEUR("1234.5"), FormatEUR("1234.50"))
	assert.Equal(t, FormatEUR("100"), FormatEUR("100.00"))
}

func TestFormatDateFR(t *testing.T) {
	assert.Equal(t, "05/03/24", FormatDateFR("2024-03-05"))
	assert.Equal(t, "31/12/99", FormatDateFR("1999-12-31"))
	assert.Equal(t, "", FormatDateFR(""))
	assert.Equal(t, "", FormatDateFR("05/03/2024"))
	assert.Equal(t, "", FormatDateFR("2024-03"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Facture_INV-1.pdf", Filename("INV-1"))
	assert.Equal(t, "Facture_2024-001.pdf", Filename("2024/001"))
}
