package document

import (
	"strconv"
	"strings"
)

// nbsp keeps grouped thousands from breaking across renders.
const nbsp = " "

// FormatEUR renders a decimal string as "1 234,56 €": two decimals, comma
// separator, thousands grouped with a no-break space. Unparsable input
// renders as zero rather than failing.
func FormatEUR(val string) string {
	n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		n = 0
	}
	return FormatEURAmount(n)
}

// FormatEURAmount formats an already parsed amount.
func FormatEURAmount(n float64) string {
	fixed := strconv.FormatFloat(n, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, decPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteString(nbsp)
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(",")
	b.WriteString(decPart)
	b.WriteString(nbsp + "€")
	return b.String()
}

// FormatDateFR converts an ISO "YYYY-MM-DD" date to "DD/MM/YY".
// Anything malformed renders as the empty string.
func FormatDateFR(date string) string {
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 || len(parts[0]) < 4 || parts[1] == "" || parts[2] == "" {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0][2:]
}

// Filename derives the export file name for an invoice number.
func Filename(number string) string {
	return "Facture_" + strings.ReplaceAll(number, "/", "-") + ".pdf"
}
