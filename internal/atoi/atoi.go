// Package atoi converts command-line text to integers. Lenient follows the C
// library's atoi: it never fails and yields 0 for text without a leading
// number. Strict goes through go-cty's type conversion and reports malformed
// input as an error.
package atoi

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrInvalidNumber is returned by Strict for text that is not a whole number
// in the range of a 32-bit int.
var ErrInvalidNumber = errors.New("invalid number")

// Lenient parses the longest numeric prefix of s after leading whitespace and
// an optional sign. Values outside the 32-bit int range saturate.
func Lenient(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
		if n > math.MaxInt32+1 {
			n = math.MaxInt32 + 1
		}
	}

	if neg {
		n = -n
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	if n < math.MinInt32 {
		n = math.MinInt32
	}
	return int(n)
}

// isSpace matches C's isspace in the "C" locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Strict converts s to an integer, rejecting anything that is not a whole
// number representable as a 32-bit int. Surrounding whitespace is ignored.
// Any spelling cty's number syntax accepts is allowed as long as its value is
// whole, so "1e3" gives 1000 and "2.0" gives 2.
func Strict(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}

	num, err := convert.Convert(cty.StringVal(trimmed), cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %s", ErrInvalidNumber, s, err)
	}

	var n int32
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, fmt.Errorf("%w: %q: %s", ErrInvalidNumber, s, err)
	}
	return int(n), nil
}
