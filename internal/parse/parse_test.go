package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint(t *testing.T) {
	n, rest, err := Uint("467..114")
	require.NoError(t, err)
	assert.Equal(t, 467, n)
	assert.Equal(t, "..114", rest)
}

func TestUintRejectsNonDigits(t *testing.T) {
	_, rest, err := Uint("abc")
	require.Error(t, err)
	assert.Equal(t, "abc", rest)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "unsigned integer", perr.Expected)
	assert.Equal(t, "abc", perr.Found)
}

func TestUintRejectsEmpty(t *testing.T) {
	_, _, err := Uint("")
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	n, rest, err := Int("-3 6 9")
	require.NoError(t, err)
	assert.Equal(t, -3, n)
	assert.Equal(t, " 6 9", rest)

	_, _, err = Int("-abc")
	assert.Error(t, err)
}

func TestLiteral(t *testing.T) {
	rest, err := Literal("Game 1: 3 blue", "Game ")
	require.NoError(t, err)
	assert.Equal(t, "1: 3 blue", rest)

	_, err = Literal("Card 1:", "Game ")
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, `"Game "`, perr.Expected)
}

func TestSpaces(t *testing.T) {
	assert.Equal(t, "41 48", Spaces("   41 48"))
	assert.Equal(t, "x", Spaces("x"))

	rest, err := Spaces1(" x")
	require.NoError(t, err)
	assert.Equal(t, "x", rest)

	_, err = Spaces1("x")
	assert.Error(t, err)
}

func TestTake(t *testing.T) {
	hand, rest, err := Take("32T3K 765", 5)
	require.NoError(t, err)
	assert.Equal(t, "32T3K", hand)
	assert.Equal(t, " 765", rest)

	_, _, err = Take("AB", 3)
	assert.Error(t, err)
}

func TestTakeUntil(t *testing.T) {
	head, rest, err := TakeUntil("Card 1: 41 48", ": ")
	require.NoError(t, err)
	assert.Equal(t, "Card 1", head)
	assert.Equal(t, ": 41 48", rest)

	_, _, err = TakeUntil("no marker here", "|")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	nums, rest, err := List("1, 2, 3", ", ", Uint)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nums)
	assert.Empty(t, rest)
}

func TestListTrailingSeparator(t *testing.T) {
	// A trailing delimiter must not yield a spurious empty element: the
	// parsed list is identical with and without it.
	with, rest, err := List("1, 2, ", ", ", Uint)
	require.NoError(t, err)
	without, _, err2 := List("1, 2", ", ", Uint)
	require.NoError(t, err2)

	assert.Equal(t, without, with)
	assert.Equal(t, ", ", rest)
}

func TestListRequiresOneElement(t *testing.T) {
	_, _, err := List("red, green", ", ", Uint)
	assert.Error(t, err)
}

func TestListDeterministic(t *testing.T) {
	a, _, err := List("8, 6, 20", ", ", Uint)
	require.NoError(t, err)
	b, _, err := List("8, 6, 20", ", ", Uint)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
	// One trailing newline does not produce an empty last line.
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
}

func TestBlocks(t *testing.T) {
	blocks := Blocks("seeds: 79\n\nseed-to-soil map:\n50 98 2\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "seeds: 79", blocks[0])
	assert.Equal(t, "seed-to-soil map:\n50 98 2", blocks[1])
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid("467..\n...*.\n")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, byte('*'), g.At(3, 1))
	assert.True(t, g.InBounds(4, 1))
	assert.False(t, g.InBounds(5, 1))
	assert.False(t, g.InBounds(0, -1))
}

func TestNewGridRagged(t *testing.T) {
	_, err := NewGrid("467..\n...*\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ragged")
}
