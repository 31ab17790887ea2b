// Package day03 solves day 3: Gear Ratios.
//
// The input is a grid of digits, symbols and dots. Part numbers are digit
// runs adjacent (incl. diagonally) to a symbol; a gear is a '*' adjacent to
// exactly two part numbers.
package day03

import (
	"fmt"
	"strconv"

	"github.com/ndinata/aoc2023/internal/parse"
)

type point struct {
	x, y int
}

// number is one digit run with the positions it occupies.
type number struct {
	value int
	cells []point
}

type schematic struct {
	numbers []number
	symbols map[point]byte
}

func Part1(input string) (string, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, n := range s.numbers {
		if len(s.adjacentSymbols(n)) > 0 {
			sum += n.value
		}
	}
	return strconv.Itoa(sum), nil
}

func Part2(input string) (string, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return "", err
	}

	// Numbers adjacent to each '*' position.
	gearNumbers := make(map[point][]int)
	for _, n := range s.numbers {
		for _, p := range s.adjacentSymbols(n) {
			if s.symbols[p] == '*' {
				gearNumbers[p] = append(gearNumbers[p], n.value)
			}
		}
	}

	sum := 0
	for _, nums := range gearNumbers {
		if len(nums) != 2 {
			continue
		}
		sum += nums[0] * nums[1]
	}
	return strconv.Itoa(sum), nil
}

// parseSchematic collects all digit runs with their positions and all
// symbol positions from the grid.
func parseSchematic(input string) (*schematic, error) {
	grid, err := parse.NewGrid(input)
	if err != nil {
		return nil, fmt.Errorf("schematic: %w", err)
	}

	s := &schematic{symbols: make(map[point]byte)}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := grid.At(x, y)
			switch {
			case c >= '0' && c <= '9':
				value, rest, err := parse.Uint(grid.Row(y)[x:])
				if err != nil {
					return nil, err
				}
				width := grid.Width - x - len(rest)
				n := number{value: value}
				for i := 0; i < width; i++ {
					n.cells = append(n.cells, point{x + i, y})
				}
				s.numbers = append(s.numbers, n)
				x += width - 1
			case c == '.':
			default:
				s.symbols[point{x, y}] = c
			}
		}
	}
	return s, nil
}

// adjacentSymbols returns the symbol positions neighbouring the number.
func (s *schematic) adjacentSymbols(n number) []point {
	seen := make(map[point]bool)
	var out []point
	for _, c := range n.cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				p := point{c.x + dx, c.y + dy}
				if seen[p] {
					continue
				}
				seen[p] = true
				if _, ok := s.symbols[p]; ok {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
