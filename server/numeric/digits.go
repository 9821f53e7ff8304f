package numeric

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// RoundToDigits rounds v to n fractional digits.
func RoundToDigits[F constraints.Float](v F, n int) F {
	r, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', max(n, 0), 64), 64)
	if err != nil {
		return v
	}
	return F(r)
}

// CountLeadingDigits counts the digits in front of the decimal separator of v.
// A value with an integral part of zero has no leading digits. The minus sign
// of a negative value counts as one digit.
func CountLeadingDigits[F constraints.Float](v F) int {
	f := float64(v)
	whole := math.Trunc(math.Abs(f))
	if whole == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	n := len(strconv.FormatFloat(whole, 'f', 0, 64))
	if f < 0 {
		n++
	}
	return n
}

// CountTrailingDigits counts the digits after the decimal separator in the
// shortest representation of v. Whole numbers have no trailing digits.
func CountTrailingDigits[F constraints.Float](v F) int {
	f := math.Abs(float64(v))
	if f == math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// CountAllDigits counts the leading and trailing digits of v together.
func CountAllDigits[F constraints.Float](v F) int {
	return CountLeadingDigits(v) + CountTrailingDigits(v)
}
