// Package parse holds the handful of parsing primitives shared by every
// day's grammar: integers, literal tags, whitespace skipping, separated
// lists and line/block splitting. Each primitive consumes a prefix of its
// input and returns the parsed value together with the unconsumed rest, or
// an *Error describing what was expected and what was found instead.
//
// Day packages compose these left-to-right into their own line grammars;
// nothing here knows about any particular puzzle format.
package parse

import (
	"fmt"
	"strings"
)

// Error reports a failed match: what the rule expected and a snippet of the
// input it found instead. Rest keeps the unconsumed text so callers can see
// where in the line parsing stopped.
type Error struct {
	Expected string
	Found    string
	Rest     string
}

func (e *Error) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found)
}

func newError(expected, input string) *Error {
	found := input
	if len(found) > 20 {
		found = found[:20]
	}
	return &Error{Expected: expected, Found: found, Rest: input}
}

// Uint parses one or more ASCII digits from the front of input. A non-digit
// first character is an error, never a zero value.
func Uint(input string) (int, string, error) {
	i := 0
	n := 0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		n = n*10 + int(input[i]-'0')
		i++
	}
	if i == 0 {
		return 0, input, newError("unsigned integer", input)
	}
	return n, input[i:], nil
}

// Int parses an optionally negated integer.
func Int(input string) (int, string, error) {
	rest := input
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	n, rest, err := Uint(rest)
	if err != nil {
		return 0, input, newError("integer", input)
	}
	if neg {
		n = -n
	}
	return n, rest, nil
}

// Literal consumes the exact prefix lit from input.
func Literal(input, lit string) (string, error) {
	if !strings.HasPrefix(input, lit) {
		return input, newError(fmt.Sprintf("%q", lit), input)
	}
	return input[len(lit):], nil
}

// Spaces skips any leading spaces and tabs.
func Spaces(input string) string {
	return strings.TrimLeft(input, " \t")
}

// Spaces1 skips leading spaces and tabs, requiring at least one.
func Spaces1(input string) (string, error) {
	rest := Spaces(input)
	if rest == input {
		return input, newError("whitespace", input)
	}
	return rest, nil
}

// Take consumes exactly n bytes from the front of input.
func Take(input string, n int) (string, string, error) {
	if len(input) < n {
		return "", input, newError(fmt.Sprintf("%d characters", n), input)
	}
	return input[:n], input[n:], nil
}

// TakeUntil consumes everything up to (but not including) the first
// occurrence of marker. The marker must be present.
func TakeUntil(input, marker string) (string, string, error) {
	i := strings.Index(input, marker)
	if i < 0 {
		return "", input, newError(fmt.Sprintf("text followed by %q", marker), input)
	}
	return input[:i], input[i:], nil
}

// List applies item at least once, with occurrences of sep between
// elements. A sep that is not followed by a further item is left
// unconsumed, so a trailing delimiter never produces a spurious element.
func List[T any](input, sep string, item func(string) (T, string, error)) ([]T, string, error) {
	first, rest, err := item(input)
	if err != nil {
		return nil, input, err
	}
	out := []T{first}
	for {
		afterSep, err := Literal(rest, sep)
		if err != nil {
			return out, rest, nil
		}
		next, afterItem, err := item(afterSep)
		if err != nil {
			return out, rest, nil
		}
		out = append(out, next)
		rest = afterItem
	}
}

// Lines splits input into lines, dropping a single trailing newline so a
// final "\n" does not yield an empty last line.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	return strings.Split(input, "\n")
}

// Blocks splits input into blank-line separated sections.
func Blocks(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	return strings.Split(input, "\n\n")
}
