package main

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/nakajimayoshi/advent-of-code-2025/idrange"
)

func init() {
	register("2", day2)
}

const day2Input = "data/puzzle_2.txt"

func day2(cfg *config, _ []string) error {
	b, err := cfg.readInput(day2Input)
	if err != nil {
		return err
	}
	sum, err := solveDay2(cfg, string(b))
	if err != nil {
		return err
	}
	fmt.Println("part 1:", sum)
	return nil
}

func solveDay2(cfg *config, input string) (*big.Int, error) {
	ranges, err := idrange.ParseRanges(input)
	if err != nil {
		return nil, err
	}
	if cfg.verbose {
		var n uint64
		for _, r := range ranges {
			if r.Hi > r.Lo {
				n += r.Hi - r.Lo
			}
		}
		cfg.logf("scanning %s IDs in %d ranges", formatCount(n), len(ranges))
	}
	return idrange.Sum(ranges, idrange.Repeating), nil
}

func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}
	return humanize.Comma(int64(n))
}
