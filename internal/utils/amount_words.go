// amount_words.go converts rupee amounts into words using the Indian
// numbering system (Crore = 1,00,00,000; Lakh = 1,00,000).
package utils

import (
	"fmt"
	"strings"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teensWords = [...]string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts a non-negative whole rupee amount into words,
// suffixed with "Rupees Only". Zero yields just "Zero".
func AmountInWords(amount int64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("%w: amount in words requires a non-negative amount, got %d", apperrors.ErrInvalidInput, amount)
	}
	if amount == 0 {
		return "Zero", nil
	}
	return numberWords(amount) + " Rupees Only", nil
}

// RupeesInWords is the decimal convenience wrapper. The caller is expected
// to round to whole rupees beforehand; fractional input fails loudly
// rather than producing a malformed string.
func RupeesInWords(amount decimal.Decimal) (string, error) {
	if !amount.IsInteger() {
		return "", fmt.Errorf("%w: amount in words requires a whole rupee amount, got %s", apperrors.ErrInvalidInput, amount.String())
	}
	return AmountInWords(amount.IntPart())
}

// numberWords renders a positive integer by Indian-system decomposition:
// crore, lakh, thousand, then the 0-999 remainder.
func numberWords(n int64) string {
	var parts []string
	if n >= crore {
		parts = append(parts, numberWords(n/crore), "Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, belowThousand(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, belowThousand(n/thousand), "Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// belowThousand renders 1-999: ones table, teens table, tens table plus
// optional ones, hundreds digit plus optional 0-99 remainder.
func belowThousand(n int64) string {
	switch {
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teensWords[n-10]
	case n < 100:
		word := tensWords[n/10]
		if rem := n % 10; rem != 0 {
			word += " " + onesWords[rem]
		}
		return word
	default:
		word := onesWords[n/100] + " Hundred"
		if rem := n % 100; rem != 0 {
			word += " " + belowThousand(rem)
		}
		return word
	}
}
