// Package day08 solves day 8: Haunted Wasteland.
//
// An L/R instruction string is followed by a network of three-letter nodes,
// "AAA = (BBB, CCC)". Part 1 walks AAA to ZZZ. Part 2 walks every ..A node
// to its first ..Z simultaneously; the ghost paths cycle, so the meeting
// point is the LCM of the individual path lengths.
package day08

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndinata/aoc2023/internal/parse"
)

type network struct {
	instructions string
	// Node name to (left, right) destinations.
	nodes map[string][2]string
}

func Part1(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}
	if _, ok := n.nodes["AAA"]; !ok {
		return "", fmt.Errorf("network has no AAA node")
	}

	steps, err := n.stepsUntil("AAA", func(node string) bool { return node == "ZZZ" })
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps), nil
}

func Part2(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}

	total := 1
	found := false
	for node := range n.nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		found = true
		steps, err := n.stepsUntil(node, func(node string) bool {
			return strings.HasSuffix(node, "Z")
		})
		if err != nil {
			return "", err
		}
		total = lcm(total, steps)
	}
	if !found {
		return "", fmt.Errorf("network has no ..A starting nodes")
	}
	return strconv.Itoa(total), nil
}

// stepsUntil walks from start, cycling the instruction string, until done
// reports the current node as terminal.
func (n *network) stepsUntil(start string, done func(string) bool) (int, error) {
	current := start
	steps := 0
	for !done(current) {
		instruction := n.instructions[steps%len(n.instructions)]
		dests, ok := n.nodes[current]
		if !ok {
			return 0, fmt.Errorf("node %q not in network", current)
		}
		if instruction == 'L' {
			current = dests[0]
		} else {
			current = dests[1]
		}
		steps++
	}
	return steps, nil
}

func parseNetwork(input string) (*network, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected instructions and node blocks, got %d blocks", len(blocks))
	}

	instructions := blocks[0]
	if instructions == "" {
		return nil, fmt.Errorf("empty instruction line")
	}
	for _, c := range instructions {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("invalid instruction %q, want L or R", c)
		}
	}

	n := &network{instructions: instructions, nodes: make(map[string][2]string)}
	for i, line := range parse.Lines(blocks[1]) {
		name, left, right, err := parseNode(line)
		if err != nil {
			return nil, fmt.Errorf("node line %d: %w", i+1, err)
		}
		n.nodes[name] = [2]string{left, right}
	}
	return n, nil
}

// parseNode decodes one "AAA = (BBB, CCC)" line.
func parseNode(line string) (name, left, right string, err error) {
	name, rest, err := parse.Take(line, 3)
	if err != nil {
		return "", "", "", err
	}
	rest, err = parse.Literal(rest, " = (")
	if err != nil {
		return "", "", "", err
	}
	left, rest, err = parse.Take(rest, 3)
	if err != nil {
		return "", "", "", err
	}
	rest, err = parse.Literal(rest, ", ")
	if err != nil {
		return "", "", "", err
	}
	right, rest, err = parse.Take(rest, 3)
	if err != nil {
		return "", "", "", err
	}
	rest, err = parse.Literal(rest, ")")
	if err != nil {
		return "", "", "", err
	}
	if rest != "" {
		return "", "", "", fmt.Errorf("unparsed trailing input %q", rest)
	}
	return name, left, right, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
