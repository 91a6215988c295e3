package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/nakajimayoshi/advent-of-code-2025/dial"
)

func init() {
	register("1i", day1Interactive)
}

// day1Interactive turns a dial by hand, one rotation per line.
func day1Interactive(cfg *config, _ []string) error {
	sess, err := newDialSession(cfg)
	if err != nil {
		return err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt: "dial> ",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := sess.handle(l.Stdout(), line)
		if err != nil {
			log.Println(err)
			continue
		}
		if quit {
			return nil
		}
	}
}

type dialSession struct {
	cfg *config
	d   *dial.Dial
}

func newDialSession(cfg *config) (*dialSession, error) {
	d, err := dial.New(cfg.dialSize, cfg.dialStart)
	if err != nil {
		return nil, err
	}
	return &dialSession{cfg: cfg, d: d}, nil
}

// handle runs one line of input. A bad rotation is returned as an error and
// leaves the dial as it was.
func (s *dialSession) handle(w io.Writer, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "state":
		pretty.Fprintf(w, "%# v\n", s.d.State())
		return false, nil
	case "reset":
		d, err := dial.New(s.cfg.dialSize, s.cfg.dialStart)
		if err != nil {
			return false, err
		}
		s.d = d
	default:
		r, err := dial.ParseRotation(line)
		if err != nil {
			return false, err
		}
		s.d.Rotate(r)
	}
	st := s.d.State()
	fmt.Fprintf(w, "position %d (landings %d, crossings %d)\n", st.Position, st.Landings, st.Crossings)
	return false, nil
}
