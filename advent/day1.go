package main

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/nakajimayoshi/advent-of-code-2025/dial"
)

func init() {
	register("1", day1)
}

const day1Input = "data/puzzle_1.txt"

func day1(cfg *config, _ []string) error {
	b, err := cfg.readInput(day1Input)
	if err != nil {
		return err
	}
	s, err := solveDay1(cfg, b)
	if err != nil {
		return err
	}
	fmt.Println("part 1:", s.Landings)
	fmt.Println("part 2:", s.Crossings)
	return nil
}

func solveDay1(cfg *config, input []byte) (dial.State, error) {
	rots, err := dial.ParseRotations(bytes.NewReader(input))
	if err != nil {
		return dial.State{}, err
	}
	cfg.logf("parsed %s rotations", humanize.Comma(int64(len(rots))))
	d, err := dial.New(cfg.dialSize, cfg.dialStart)
	if err != nil {
		return dial.State{}, err
	}
	for _, r := range rots {
		d.Rotate(r)
	}
	return d.State(), nil
}
