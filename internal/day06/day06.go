// Package day06 solves day 6: Wait For It.
//
// Two lines list race times and record distances. Holding the button for t
// ms of a T ms race travels (T-t)*t mm; count the holds that beat the
// record. Part 2 ignores the column spacing and reads each line as one big
// number.
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndinata/aoc2023/internal/parse"
)

type race struct {
	time int
	dist int
}

// waysToWin counts the hold durations that beat the record. Distances are
// symmetric about time/2, so only the lower half is walked, from the middle
// down until the first losing hold.
func (r race) waysToWin() int {
	count := 0
	for t := r.time / 2; t >= 0; t-- {
		if t*(r.time-t) <= r.dist {
			break
		}
		count += 2
	}
	if count == 0 {
		return 0
	}
	// An even race time has an unpaired middle hold.
	if r.time%2 == 0 {
		count--
	}
	return count
}

func Part1(input string) (string, error) {
	races, err := parseRaces(input)
	if err != nil {
		return "", err
	}

	product := 1
	for _, r := range races {
		product *= r.waysToWin()
	}
	return strconv.Itoa(product), nil
}

func Part2(input string) (string, error) {
	r, err := parseKernedRace(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(r.waysToWin()), nil
}

// parseRaces zips the Time and Distance columns into races.
func parseRaces(input string) ([]race, error) {
	times, err := parseNumberRow(input, 0)
	if err != nil {
		return nil, err
	}
	dists, err := parseNumberRow(input, 1)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("got %d times but %d distances", len(times), len(dists))
	}

	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], dist: dists[i]}
	}
	return races, nil
}

// parseKernedRace reads each line's digit runs as a single concatenated
// number.
func parseKernedRace(input string) (race, error) {
	times, err := parseNumberRow(input, 0)
	if err != nil {
		return race{}, err
	}
	dists, err := parseNumberRow(input, 1)
	if err != nil {
		return race{}, err
	}

	time, err := concat(times)
	if err != nil {
		return race{}, fmt.Errorf("time row: %w", err)
	}
	dist, err := concat(dists)
	if err != nil {
		return race{}, fmt.Errorf("distance row: %w", err)
	}
	return race{time: time, dist: dist}, nil
}

// parseNumberRow decodes the space-padded numbers after the label of row n.
func parseNumberRow(input string, n int) ([]int, error) {
	lines := parse.Lines(input)
	if len(lines) <= n {
		return nil, fmt.Errorf("expected at least %d lines, got %d", n+1, len(lines))
	}

	_, rest, err := parse.TakeUntil(lines[n], ":")
	if err != nil {
		return nil, err
	}
	rest, err = parse.Literal(rest, ":")
	if err != nil {
		return nil, err
	}
	rest, err = parse.Spaces1(rest)
	if err != nil {
		return nil, err
	}

	var nums []int
	for rest != "" {
		num, after, err := parse.Uint(rest)
		if err != nil {
			return nil, err
		}
		nums = append(nums, num)
		rest = parse.Spaces(after)
	}
	return nums, nil
}

func concat(nums []int) (int, error) {
	var b strings.Builder
	for _, n := range nums {
		b.WriteString(strconv.Itoa(n))
	}
	return strconv.Atoi(b.String())
}
