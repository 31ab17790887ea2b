// Package day04 solves day 4: Scratchcards.
//
// Lines look like "Card 1: 41 48 83 | 83 86 6". Part 1 scores each card by
// its matching numbers; part 2 runs the copy cascade where each match wins
// copies of the following cards.
package day04

import (
	"fmt"
	"strconv"

	"github.com/ndinata/aoc2023/internal/parse"
)

type card struct {
	winning map[int]bool
	have    []int
}

func (c card) matches() int {
	count := 0
	for _, n := range c.have {
		if c.winning[n] {
			count++
		}
	}
	return count
}

func Part1(input string) (string, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		c, err := parseCard(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if m := c.matches(); m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return strconv.Itoa(sum), nil
}

func Part2(input string) (string, error) {
	lines := parse.Lines(input)

	// One original of every card, then each card's matches win copies of
	// the cards below it.
	copies := make([]int, len(lines))
	for i := range copies {
		copies[i] = 1
	}
	for i, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		for j := i + 1; j <= i+c.matches() && j < len(lines); j++ {
			copies[j] += copies[i]
		}
	}

	total := 0
	for _, n := range copies {
		total += n
	}
	return strconv.Itoa(total), nil
}

func parseCard(line string) (card, error) {
	_, rest, err := parse.TakeUntil(line, ": ")
	if err != nil {
		return card{}, err
	}
	rest, err = parse.Literal(rest, ": ")
	if err != nil {
		return card{}, err
	}

	winning, rest, err := parseNumbers(rest)
	if err != nil {
		return card{}, err
	}
	rest, err = parse.Literal(rest, "|")
	if err != nil {
		return card{}, err
	}
	have, rest, err := parseNumbers(rest)
	if err != nil {
		return card{}, err
	}
	if rest != "" {
		return card{}, fmt.Errorf("unparsed trailing input %q", rest)
	}

	winningSet := make(map[int]bool, len(winning))
	for _, n := range winning {
		winningSet[n] = true
	}
	return card{winning: winningSet, have: have}, nil
}

// parseNumbers consumes a run of numbers padded by arbitrary spaces, e.g.
// " 1 21  53 ". At least one number is required.
func parseNumbers(input string) ([]int, string, error) {
	var nums []int
	rest := parse.Spaces(input)
	for {
		n, after, err := parse.Uint(rest)
		if err != nil {
			break
		}
		nums = append(nums, n)
		rest = parse.Spaces(after)
	}
	if len(nums) == 0 {
		return nil, input, fmt.Errorf("expected at least one number, found %q", input)
	}
	return nums, rest, nil
}
