// Package day07 solves day 7: Camel Cards.
//
// Each line is a five-card hand and a bid. Hands rank first by type (five
// of a kind down to high card), then card by card. Part 2 turns J into a
// joker: weakest individual card, but a wildcard for typing.
package day07

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ndinata/aoc2023/internal/parse"
)

// Hand types, weakest first.
const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

var cardValue = map[byte]int{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 14,
}

type hand struct {
	cards    string
	bid      int
	handType int
}

func Part1(input string) (string, error) {
	return totalWinnings(input, false)
}

func Part2(input string) (string, error) {
	return totalWinnings(input, true)
}

func totalWinnings(input string, jokers bool) (string, error) {
	var hands []hand
	for i, line := range parse.Lines(input) {
		h, err := parseHand(line, jokers)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}

	sort.Slice(hands, func(i, j int) bool {
		return hands[i].worseThan(hands[j], jokers)
	})

	total := 0
	for rank, h := range hands {
		total += (rank + 1) * h.bid
	}
	return strconv.Itoa(total), nil
}

func (h hand) worseThan(other hand, jokers bool) bool {
	if h.handType != other.handType {
		return h.handType < other.handType
	}
	for i := 0; i < len(h.cards); i++ {
		mine, theirs := cardValue[h.cards[i]], cardValue[other.cards[i]]
		if jokers {
			if h.cards[i] == 'J' {
				mine = 1
			}
			if other.cards[i] == 'J' {
				theirs = 1
			}
		}
		if mine != theirs {
			return mine < theirs
		}
	}
	return false
}

// parseHand decodes one "32T3K 765" line.
func parseHand(line string, jokers bool) (hand, error) {
	cards, rest, err := parse.Take(line, 5)
	if err != nil {
		return hand{}, err
	}
	for i := 0; i < len(cards); i++ {
		if _, ok := cardValue[cards[i]]; !ok {
			return hand{}, fmt.Errorf("invalid card %q in hand %q", cards[i], cards)
		}
	}
	rest, err = parse.Spaces1(rest)
	if err != nil {
		return hand{}, err
	}
	bid, rest, err := parse.Uint(rest)
	if err != nil {
		return hand{}, err
	}
	if rest != "" {
		return hand{}, fmt.Errorf("unparsed trailing input %q", rest)
	}

	return hand{cards: cards, bid: bid, handType: handTypeOf(cards, jokers)}, nil
}

func handTypeOf(cards string, jokers bool) int {
	counts := make(map[byte]int)
	wildcards := 0
	for i := 0; i < len(cards); i++ {
		if jokers && cards[i] == 'J' {
			wildcards++
			continue
		}
		counts[cards[i]]++
	}

	// Jokers morph into whichever card already has the biggest count.
	if wildcards > 0 {
		var best byte
		for c, n := range counts {
			if best == 0 || n > counts[best] {
				best = c
			}
		}
		if best == 0 {
			// All five cards are jokers.
			counts['J'] = 5
		} else {
			counts[best] += wildcards
		}
	}

	most := 0
	for _, n := range counts {
		if n > most {
			most = n
		}
	}

	switch {
	case most == 5:
		return fiveOfAKind
	case most == 4:
		return fourOfAKind
	case most == 3 && len(counts) == 2:
		return fullHouse
	case most == 3:
		return threeOfAKind
	case most == 2 && len(counts) == 3:
		return twoPair
	case most == 2:
		return onePair
	default:
		return highCard
	}
}
