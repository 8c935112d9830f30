package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata um inteiro com separador de milhar (1234567 -> "1,234,567").
func FormatThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}

// FormatMoney formata um valor monetário com separador de milhar e duas
// casas decimais (1799.98 -> "1,799.98").
func FormatMoney(f float64) string {
	rounded := RoundWithTwoDecimalPlace(f)

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	whole := int64(rounded)
	cents := int64(math.Round((rounded - float64(whole)) * 100))

	return fmt.Sprintf("%s%s.%02d", sign, FormatThousands(whole), cents)
}
