// Package day05 solves day 5: If You Give A Seed A Fertilizer.
//
// The input is a seed list followed by seven blank-line separated map
// sections, each a list of "dest src len" range mappings. Part 1 pushes
// every seed down the pipeline and takes the lowest location. Part 2 treats
// the seed list as (start, len) ranges and instead walks candidate
// locations upwards through the reversed pipeline until one lands in a seed
// range; the first hit is the lowest location by construction.
package day05

import (
	"fmt"
	"strconv"

	"github.com/ndinata/aoc2023/internal/parse"
)

// rangeMap maps [src, src+length) onto [dst, dst+length).
type rangeMap struct {
	dst    int
	src    int
	length int
}

// lookup maps n to its destination if n falls in the source range.
func (m rangeMap) lookup(n int) (int, bool) {
	if n < m.src || n >= m.src+m.length {
		return 0, false
	}
	return m.dst + (n - m.src), true
}

type almanac struct {
	seeds    []int
	sections [][]rangeMap
}

// next maps n through one section: the first matching range wins, numbers
// matched by no range map to themselves.
func next(section []rangeMap, n int) int {
	for _, m := range section {
		if mapped, ok := m.lookup(n); ok {
			return mapped
		}
	}
	return n
}

func Part1(input string) (string, error) {
	a, err := parseAlmanac(input, false)
	if err != nil {
		return "", err
	}

	best := -1
	for _, seed := range a.seeds {
		n := seed
		for _, section := range a.sections {
			n = next(section, n)
		}
		if best == -1 || n < best {
			best = n
		}
	}
	if best == -1 {
		return "", fmt.Errorf("no seeds in input")
	}
	return strconv.Itoa(best), nil
}

func Part2(input string) (string, error) {
	a, err := parseAlmanac(input, true)
	if err != nil {
		return "", err
	}
	if len(a.seeds)%2 != 0 {
		return "", fmt.Errorf("odd number of seed values, want (start, len) pairs")
	}

	// Reversed pipeline: location back up to seed.
	for i, j := 0, len(a.sections)-1; i < j; i, j = i+1, j-1 {
		a.sections[i], a.sections[j] = a.sections[j], a.sections[i]
	}

	for location := 0; ; location++ {
		n := location
		for _, section := range a.sections {
			n = next(section, n)
		}
		for i := 0; i < len(a.seeds); i += 2 {
			start, length := a.seeds[i], a.seeds[i+1]
			if n >= start && n < start+length {
				return strconv.Itoa(location), nil
			}
		}
	}
}

// parseAlmanac decodes the seed list and map sections. With reversed set,
// each mapping's source and destination are swapped so the pipeline can be
// walked upwards.
func parseAlmanac(input string, reversed bool) (*almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) < 2 {
		return nil, fmt.Errorf("expected seeds and at least one map section, got %d blocks", len(blocks))
	}

	_, rest, err := parse.TakeUntil(blocks[0], ": ")
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	rest, err = parse.Literal(rest, ": ")
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	seeds, rest, err := parse.List(rest, " ", parse.Uint)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	if rest != "" {
		return nil, fmt.Errorf("seeds: unparsed trailing input %q", rest)
	}

	a := &almanac{seeds: seeds}
	for _, block := range blocks[1:] {
		section, err := parseSection(block, reversed)
		if err != nil {
			return nil, err
		}
		a.sections = append(a.sections, section)
	}
	return a, nil
}

// parseSection decodes one map section, e.g.:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func parseSection(block string, reversed bool) ([]rangeMap, error) {
	lines := parse.Lines(block)
	header := lines[0]
	if _, _, err := parse.TakeUntil(header, " map:"); err != nil {
		return nil, fmt.Errorf("section header %q: %w", header, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("section %q has no ranges", header)
	}

	var section []rangeMap
	for _, line := range lines[1:] {
		nums, rest, err := parse.List(line, " ", parse.Uint)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", header, err)
		}
		if len(nums) != 3 || rest != "" {
			return nil, fmt.Errorf("section %q: expected 3 numbers, got %q", header, line)
		}
		m := rangeMap{dst: nums[0], src: nums[1], length: nums[2]}
		if reversed {
			m.dst, m.src = m.src, m.dst
		}
		section = append(section, m)
	}
	return section, nil
}
