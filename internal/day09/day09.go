// Package day09 solves day 9: Mirage Maintenance.
//
// Each line is a history of signed values. Repeatedly taking pairwise
// differences yields an all-zero row eventually; extrapolating back up the
// pyramid predicts the next value (part 1) or the previous one (part 2,
// done by predicting the next value of the reversed history).
package day09

import (
	"fmt"
	"strconv"

	"github.com/ndinata/aoc2023/internal/parse"
)

func Part1(input string) (string, error) {
	return sumPredictions(input, false)
}

func Part2(input string) (string, error) {
	return sumPredictions(input, true)
}

func sumPredictions(input string, backwards bool) (string, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		history, err := parseHistory(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if backwards {
			for l, r := 0, len(history)-1; l < r; l, r = l+1, r-1 {
				history[l], history[r] = history[r], history[l]
			}
		}
		sum += predictNext(history)
	}
	return strconv.Itoa(sum), nil
}

func parseHistory(line string) ([]int, error) {
	nums, rest, err := parse.List(line, " ", parse.Int)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unparsed trailing input %q", rest)
	}
	return nums, nil
}

func predictNext(history []int) int {
	allZero := true
	for _, n := range history {
		if n != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0
	}

	diffs := make([]int, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		diffs = append(diffs, history[i]-history[i-1])
	}
	return history[len(history)-1] + predictNext(diffs)
}
