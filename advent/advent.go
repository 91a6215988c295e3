package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

const configFile = "advent.ini"

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [solution] [args...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where solution is one of:")
		for _, name := range solutionNames() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(1)
	}

	fn, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, fn, os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

// run calls fn, profiling it if the config asks for that.
func run(cfg *config, fn solution, args []string) (err error) {
	if cfg.fgprof != "" {
		f, createErr := os.Create(cfg.fgprof)
		if createErr != nil {
			return createErr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err1 != nil && err == nil {
				err = fmt.Errorf("writing profile: %w", err1)
			}
			if err1 := f.Close(); err1 != nil && err == nil {
				err = err1
			}
		}()
	}
	return fn(cfg, args)
}

type solution func(cfg *config, args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
