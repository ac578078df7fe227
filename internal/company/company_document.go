package company

import "strings"

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// onlyDigits strips punctuation such as "12.345.678/0001-95".
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCNPJ checks length and both check digits of a CNPJ.
func ValidCNPJ(raw string) bool {
	digits := onlyDigits(raw)
	if len(digits) != 14 {
		return false
	}
	if strings.Count(digits, digits[:1]) == 14 {
		return false
	}

	checkDigit := func(weights []int) byte {
		sum := 0
		for i, w := range weights {
			sum += int(digits[i]-'0') * w
		}
		rest := sum % 11
		if rest < 2 {
			return '0'
		}
		return byte('0' + 11 - rest)
	}

	return digits[12] == checkDigit(cnpjFirstWeights) && digits[13] == checkDigit(cnpjSecondWeights)
}
