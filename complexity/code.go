package complexity

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ParseCode validates s and returns it with its numeric value.
// A code is non-empty, uses only {0-9, A} and ends in 'A'.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, fmt.Errorf("%w: empty", ErrMalformedCode)
	}
	for i := 0; i < len(s); i++ {
		if !keypad.Numeric().Has(s[i]) {
			return Code{}, fmt.Errorf("%w: %q has invalid character %q at offset %d", ErrMalformedCode, s, s[i], i)
		}
	}
	if s[len(s)-1] != keypad.Home {
		return Code{}, fmt.Errorf("%w: %q does not end in 'A'", ErrMalformedCode, s)
	}
	v, err := NumericValue(s)
	if err != nil {
		return Code{}, err
	}

	return Code{Raw: s, Value: v}, nil
}

// NumericValue parses the leading run of digits of s, ignoring leading zeros
// and everything from the first non-digit on. A code with no leading digits
// has value 0.
func NumericValue(s string) (uint64, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, nil
	}
	v, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCode, s, err)
	}

	return v, nil
}

// ParseCodes reads one code per line from r. Blank lines are skipped and
// surrounding whitespace is trimmed; the first malformed line aborts.
func ParseCodes(r io.Reader) ([]Code, error) {
	var out []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		c, err := ParseCode(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
