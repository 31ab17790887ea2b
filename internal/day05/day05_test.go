package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestPart1(t *testing.T) {
	answer, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, "35", answer)
}

func TestPart2(t *testing.T) {
	answer, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, "46", answer)
}

func TestRangeMapLookup(t *testing.T) {
	m := rangeMap{dst: 52, src: 50, length: 48}

	mapped, ok := m.lookup(79)
	require.True(t, ok)
	assert.Equal(t, 81, mapped)

	_, ok = m.lookup(49)
	assert.False(t, ok)
	_, ok = m.lookup(98)
	assert.False(t, ok)
}

func TestParseAlmanac(t *testing.T) {
	a, err := parseAlmanac(example, false)
	require.NoError(t, err)

	assert.Equal(t, []int{79, 14, 55, 13}, a.seeds)
	require.Len(t, a.sections, 7)
	assert.Equal(t, []rangeMap{{50, 98, 2}, {52, 50, 48}}, a.sections[0])
}

func TestParseAlmanacReversed(t *testing.T) {
	a, err := parseAlmanac(example, true)
	require.NoError(t, err)
	assert.Equal(t, []rangeMap{{98, 50, 2}, {50, 52, 48}}, a.sections[0])
}

func TestParseAlmanacMalformed(t *testing.T) {
	cases := []string{
		"seeds: 79 14",
		"seeds: 79 x\n\nseed-to-soil map:\n50 98 2",
		"seeds: 79\n\nseed-to-soil map:\n50 98",
		"seeds: 79\n\nnot a header\n50 98 2",
	}
	for _, input := range cases {
		_, err := parseAlmanac(input, false)
		assert.Error(t, err, input)
	}
}
