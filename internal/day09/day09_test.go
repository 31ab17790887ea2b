package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestPart1(t *testing.T) {
	answer, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, "114", answer)
}

func TestPart2(t *testing.T) {
	answer, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, "2", answer)
}

func TestPredictNext(t *testing.T) {
	cases := []struct {
		history []int
		want    int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18},
		{[]int{1, 3, 6, 10, 15, 21}, 28},
		{[]int{10, 13, 16, 21, 30, 45}, 68},
		{[]int{0, 0, 0}, 0},
		{[]int{-3, -6, -9}, -12},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, predictNext(c.history), c.history)
	}
}

func TestParseHistory(t *testing.T) {
	history, err := parseHistory("10 -13 16")
	require.NoError(t, err)
	assert.Equal(t, []int{10, -13, 16}, history)

	_, err = parseHistory("10 abc 16")
	assert.Error(t, err)

	_, err = parseHistory("")
	assert.Error(t, err)
}
