// Package cpf validates Brazilian CPF numbers (11 digits, two check digits).
package cpf

import "strings"

var (
	firstWeights  = [9]int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [10]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize strips formatting punctuation (periods, hyphens, spaces)
// from a CPF string. It does not strip letters, so malformed input
// stays malformed and fails validation.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', ' ':
			return -1
		}
		return r
	}, raw)
}

// IsValid reports whether raw is a valid CPF. Formatting punctuation
// is stripped first; the remaining string must be exactly 11 digits
// whose last two digits match the computed check digits. Sequences of
// a single repeated digit pass the checksum arithmetically but are
// never issued, so they are rejected.
func IsValid(raw string) bool {
	s := Normalize(raw)
	if len(s) != 11 {
		return false
	}

	digits := [11]int{}
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	sum := 0
	for i, w := range firstWeights {
		sum += digits[i] * w
	}
	first := checkDigit(sum)
	if digits[9] != first {
		return false
	}

	sum = 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * secondWeights[i]
	}
	sum += first * secondWeights[9]

	return digits[10] == checkDigit(sum)
}

func checkDigit(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
