package render

import "strings"

var (
	units = []string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
)

// MaxWords is the largest number ToWords can spell.
const MaxWords = 9999

// ToWords spells a number from 0 to MaxWords as words joined by underscores,
// for example 112 becomes "one_hundred_twelve". Thousands follow the same
// form for all digits, "one_thousand" up to "nine_thousand".
func ToWords(n int) (string, bool) {
	if n < 0 || n > MaxWords {
		return "", false
	}
	if n == 0 {
		return "zero", true
	}

	var parts []string
	if n >= 1000 {
		parts = append(parts, units[n/1000], "thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, units[n/100], "hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, units[n])
	}
	return strings.Join(parts, "_"), true
}
