package util

import (
	"regexp"
	"strconv"
	"strings"
)

var pricePattern = regexp.MustCompile(`(\d+(?:\.\d{1,2})?)`)

// ParsePrice pulls the first euro amount out of a price label such as
// "2,49" or "€ 2.49 per stuk". Returns nil when no amount is present.
func ParsePrice(input string) *float64 {
	line := strings.ReplaceAll(input, " ", " ")
	line = strings.ReplaceAll(line, ",", ".")
	m := pricePattern.FindStringSubmatch(line)
	if len(m) < 2 {
		return nil
	}
	parsed, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return FloatPtr(parsed)
}
