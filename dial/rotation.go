package dial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Direction is the way a Rotation turns the dial.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// A Rotation is a single instruction: turn the dial Steps ticks in Dir.
type Rotation struct {
	Dir   Direction
	Steps int64
}

// String formats r the way ParseRotation reads it (for example, "L68").
func (r Rotation) String() string {
	return r.Dir.String() + strconv.FormatInt(r.Steps, 10)
}

// A FormatError reports a token that is not a direction letter followed by
// a non-negative decimal integer. Err is set when the direction was fine but
// the number was not.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid rotation %q: %s", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid rotation %q: must be L or R followed by a number", e.Token)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseRotation parses a token such as "L68" or "r198". The direction
// letter is case-insensitive.
func ParseRotation(s string) (Rotation, error) {
	var r Rotation
	if len(s) < 1 {
		return r, &FormatError{Token: s}
	}
	switch s[0] {
	case 'L', 'l':
		r.Dir = Left
	case 'R', 'r':
		r.Dir = Right
	default:
		return r, &FormatError{Token: s}
	}
	n, err := strconv.ParseUint(s[1:], 10, 63)
	if err != nil {
		return r, &FormatError{Token: s, Err: err}
	}
	r.Steps = int64(n)
	return r, nil
}

// ParseRotations reads one rotation per line. It stops at the first bad
// line; the returned error names the line number.
func ParseRotations(r io.Reader) ([]Rotation, error) {
	var rots []Rotation
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		rot, err := ParseRotation(strings.TrimSuffix(scanner.Text(), "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rots = append(rots, rot)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rots, nil
}
