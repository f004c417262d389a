// Package plural picks Russian word forms that agree with a numeral.
package plural

import (
	"fmt"

	"winery/internal/errors"
)

// Word forms of "year" for the three agreement classes.
const (
	YearOne  = "год"
	YearFew  = "года"
	YearMany = "лет"
)

// Forms holds the three numeral agreement forms of a noun:
// one (1, 21, 101), few (2-4, 22-24) and many (0, 5-20, 25-30).
type Forms struct {
	One  string
	Few  string
	Many string
}

// Years are the forms of "год".
var Years = Forms{One: YearOne, Few: YearFew, Many: YearMany}

// Select returns the form agreeing with n. n must be positive.
func (f Forms) Select(n int) (string, error) {
	if n <= 0 {
		return "", errors.InvalidArgument(fmt.Sprintf("count must be a positive integer, got %d", n))
	}

	lastTwo := n % 100
	last := n % 10
	switch {
	case last == 1 && lastTwo != 11:
		return f.One, nil
	case last >= 2 && last <= 4 && (lastTwo < 12 || lastTwo > 14):
		return f.Few, nil
	default:
		return f.Many, nil
	}
}

// YearSuffix returns the form of "год" that follows the number years:
// 1 год, 2 года, 5 лет, 11 лет, 21 год.
func YearSuffix(years int) (string, error) {
	return Years.Select(years)
}
