package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nakajimayoshi/advent-of-code-2025/dial"
)

const day1Example = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

func TestSolveDay1(t *testing.T) {
	got, err := solveDay1(defaultConfig(), []byte(day1Example))
	if err != nil {
		t.Fatal(err)
	}
	want := dial.State{Position: 32, Landings: 3, Crossings: 6}
	if got != want {
		t.Errorf("got %+v; want %+v", got, want)
	}
}

func TestSolveDay1StartAtZero(t *testing.T) {
	cfg := defaultConfig()
	cfg.dialStart = 0
	got, err := solveDay1(cfg, []byte("L3\nR2\nR2\nR54\nL55\nR198\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Position != 98 {
		t.Errorf("got position %d; want 98", got.Position)
	}
	// The starting position and the L55 both land on zero.
	if got.Landings != 2 {
		t.Errorf("got %d landings; want 2", got.Landings)
	}
}

func TestSolveDay1Errors(t *testing.T) {
	_, err := solveDay1(defaultConfig(), []byte("L1\nX2\n"))
	var fe *dial.FormatError
	if !errors.As(err, &fe) || fe.Token != "X2" {
		t.Errorf("got %v; want FormatError for X2", err)
	}

	cfg := defaultConfig()
	cfg.dialStart = 100
	if _, err := solveDay1(cfg, []byte("L1\n")); err == nil {
		t.Error("got nil error for out-of-range start")
	}
}

func TestDialSession(t *testing.T) {
	sess, err := newDialSession(defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	for _, tt := range []struct {
		line string
		want string
	}{
		{"L68", "position 82 (landings 0, crossings 1)\n"},
		{"  r18 ", "position 0 (landings 1, crossings 2)\n"},
		{"", ""},
		{"reset", "position 50 (landings 0, crossings 0)\n"},
	} {
		buf.Reset()
		quit, err := sess.handle(&buf, tt.line)
		if err != nil {
			t.Fatalf("handle(%q): %s", tt.line, err)
		}
		if quit {
			t.Fatalf("handle(%q): unexpected quit", tt.line)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("handle(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}

	buf.Reset()
	if _, err := sess.handle(&buf, "Z9"); err == nil {
		t.Error("handle(Z9): got nil error")
	}
	if got := sess.d.Position(); got != 50 {
		t.Errorf("bad line moved the dial to %d", got)
	}

	buf.Reset()
	if _, err := sess.handle(&buf, "state"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Position:") {
		t.Errorf("state dump %q does not mention Position", buf.String())
	}

	quit, err := sess.handle(&buf, "quit")
	if err != nil || !quit {
		t.Errorf("handle(quit): got (%t, %v); want (true, nil)", quit, err)
	}
}
