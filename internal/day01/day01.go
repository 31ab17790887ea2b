// Package day01 solves day 1: Trebuchet?!.
//
// Each line hides a two-digit calibration value: the first and last digits
// on the line. Part 2 additionally counts spelled-out digits ("one".."nine"),
// which may overlap ("twone" contains both 2 and 1).
package day01

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndinata/aoc2023/internal/parse"
)

func Part1(input string) (string, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		first, last := -1, -1
		for _, sym := range []byte(line) {
			if sym < '0' || sym > '9' {
				continue
			}
			d := int(sym - '0')
			if first == -1 {
				first = d
			}
			last = d
		}
		if first == -1 {
			return "", fmt.Errorf("line %d: no digit in %q", i+1, line)
		}
		sum += 10*first + last
	}
	return strconv.Itoa(sum), nil
}

// Spelled digits alongside their plain forms, so a single prefix scan
// covers both.
var digitNames = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"6": 6, "7": 7, "8": 8, "9": 9,
}

func Part2(input string) (string, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		value, err := calibrationValue(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += value
	}
	return strconv.Itoa(sum), nil
}

// calibrationValue scans the line one position at a time instead of
// consuming matched words, because spelled digits may overlap.
func calibrationValue(line string) (int, error) {
	first, last := -1, -1
	for i := range line {
		for name, d := range digitNames {
			if !strings.HasPrefix(line[i:], name) {
				continue
			}
			if first == -1 {
				first = d
			}
			last = d
		}
	}
	if first == -1 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return 10*first + last, nil
}
