// Package idrange parses lists of numeric ID ranges and sums the IDs in
// them that satisfy a predicate.
package idrange

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// A Range is the half-open interval of IDs [Lo, Hi).
// Lo > Hi is not rejected; such a range is empty.
type Range struct {
	Lo uint64
	Hi uint64
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// ParseRanges parses a comma-separated list of lo-hi pairs, such as
// "11-22,95-115". Line breaks around the list and around each token are
// ignored; other whitespace is an error. An empty input yields no ranges.
func ParseRanges(s string) ([]Range, error) {
	s = strings.Trim(s, "\r\n")
	if s == "" {
		return nil, nil
	}
	var ranges []Range
	for i, tok := range strings.Split(s, ",") {
		r, err := parseRange(strings.Trim(tok, "\r\n"))
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(tok string) (Range, error) {
	var r Range
	parts := strings.Split(tok, "-")
	if len(parts) != 2 {
		return r, fmt.Errorf("bad range %q: want <lower>-<upper>", tok)
	}
	var err error
	r.Lo, err = strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return r, fmt.Errorf("bad lower bound in %q: %w", tok, err)
	}
	r.Hi, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return r, fmt.Errorf("bad upper bound in %q: %w", tok, err)
	}
	return r, nil
}

// Sum adds up every ID in ranges for which pred returns true. Overlapping
// ranges count shared IDs once per range.
func Sum(ranges []Range, pred func(uint64) bool) *big.Int {
	var sum, n big.Int
	for _, r := range ranges {
		for id := r.Lo; id < r.Hi; id++ {
			if pred(id) {
				sum.Add(&sum, n.SetUint64(id))
			}
		}
	}
	return &sum
}

// Repeating reports whether the decimal digits of id are a shorter block
// of digits repeated two or more times, as in 55, 6464 or 123123123.
func Repeating(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	for k := 1; k <= len(s)/2; k++ {
		if len(s)%k != 0 {
			continue
		}
		if strings.Repeat(s[:k], len(s)/k) == s {
			return true
		}
	}
	return false
}
