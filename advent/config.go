package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/vaughan0/go-ini"
)

type config struct {
	dialSize  int64
	dialStart int64
	verbose   bool
	fgprof    string // profile output path; empty means no profiling
}

func defaultConfig() *config {
	return &config{
		dialSize:  99,
		dialStart: 50,
	}
}

// loadConfig reads the ini file at path. A missing file is not an error.
func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return cfg, nil
}

func parseConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if s, ok := file.Get("day1", "size"); ok {
		if cfg.dialSize, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, fmt.Errorf("bad day1 size: %s", err)
		}
	}
	if s, ok := file.Get("day1", "start"); ok {
		if cfg.dialStart, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, fmt.Errorf("bad day1 start: %s", err)
		}
	}
	if s, ok := file.Get("advent", "verbose"); ok {
		if cfg.verbose, err = strconv.ParseBool(s); err != nil {
			return nil, fmt.Errorf("bad advent verbose: %s", err)
		}
	}
	cfg.fgprof = file.Section("advent")["fgprof"]
	return cfg, nil
}

func (cfg *config) readInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg.logf("read %s from %s", humanize.Bytes(uint64(len(b))), path)
	return b, nil
}

func (cfg *config) logf(format string, args ...interface{}) {
	if cfg.verbose {
		log.Printf(format, args...)
	}
}
