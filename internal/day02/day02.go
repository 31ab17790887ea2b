// Package day02 solves day 2: Cube Conundrum.
//
// Lines look like "Game 1: 3 blue, 4 red; 1 red, 2 green". Each game is a
// sequence of draws, each draw a list of per-colour cube counts.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndinata/aoc2023/internal/parse"
)

// Draw is one handful of cubes shown during a game.
type Draw struct {
	Red   int
	Green int
	Blue  int
}

type Game struct {
	ID    int
	Draws []Draw
}

// PossibleWith reports whether every draw of the game fits in the bag.
func (g Game) PossibleWith(bag Draw) bool {
	for _, d := range g.Draws {
		if d.Red > bag.Red || d.Green > bag.Green || d.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// Power is the product of the minimum cube counts that make the game
// possible.
func (g Game) Power() int {
	var min Draw
	for _, d := range g.Draws {
		min.Red = max(min.Red, d.Red)
		min.Green = max(min.Green, d.Green)
		min.Blue = max(min.Blue, d.Blue)
	}
	return min.Red * min.Green * min.Blue
}

func Part1(input string) (string, error) {
	bag := Draw{Red: 12, Green: 13, Blue: 14}

	sum := 0
	for i, line := range parse.Lines(input) {
		game, err := parseGame(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if game.PossibleWith(bag) {
			sum += game.ID
		}
	}
	return strconv.Itoa(sum), nil
}

func Part2(input string) (string, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		game, err := parseGame(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += game.Power()
	}
	return strconv.Itoa(sum), nil
}

// parseGame decodes one "Game N: c1; c2; ..." line.
func parseGame(line string) (Game, error) {
	rest, err := parse.Literal(line, "Game ")
	if err != nil {
		return Game{}, err
	}
	id, rest, err := parse.Uint(rest)
	if err != nil {
		return Game{}, err
	}
	rest, err = parse.Literal(rest, ": ")
	if err != nil {
		return Game{}, err
	}

	draws, rest, err := parse.List(rest, "; ", parseDraw)
	if err != nil {
		return Game{}, err
	}
	if trailing := strings.TrimRight(rest, "; \t"); trailing != "" {
		return Game{}, fmt.Errorf("unparsed trailing input %q", trailing)
	}

	return Game{ID: id, Draws: draws}, nil
}

// parseDraw decodes one "3 blue, 4 red" segment.
func parseDraw(input string) (Draw, string, error) {
	type cube struct {
		count  int
		colour string
	}

	cubes, rest, err := parse.List(input, ", ", func(s string) (cube, string, error) {
		count, rest, err := parse.Uint(s)
		if err != nil {
			return cube{}, s, err
		}
		rest, err = parse.Literal(rest, " ")
		if err != nil {
			return cube{}, s, err
		}
		for _, colour := range []string{"red", "green", "blue"} {
			if after, err := parse.Literal(rest, colour); err == nil {
				return cube{count, colour}, after, nil
			}
		}
		return cube{}, s, fmt.Errorf("expected cube colour, found %q", rest)
	})
	if err != nil {
		return Draw{}, input, err
	}

	var d Draw
	for _, c := range cubes {
		switch c.colour {
		case "red":
			d.Red = c.count
		case "green":
			d.Green = c.count
		case "blue":
			d.Blue = c.count
		}
	}
	return d, rest, nil
}
