// Command aoc runs one day's puzzle solution against its input file:
//
//	aoc run --day 2 --part 1 [--input inputs/day02.txt]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ndinata/aoc2023/internal/day01"
	"github.com/ndinata/aoc2023/internal/day02"
	"github.com/ndinata/aoc2023/internal/day03"
	"github.com/ndinata/aoc2023/internal/day04"
	"github.com/ndinata/aoc2023/internal/day05"
	"github.com/ndinata/aoc2023/internal/day06"
	"github.com/ndinata/aoc2023/internal/day07"
	"github.com/ndinata/aoc2023/internal/day08"
	"github.com/ndinata/aoc2023/internal/day09"
)

type solveFunc func(input string) (string, error)

// Days are wired through a plain table: each entry is that day's part 1 and
// part 2 solvers, fully independent of each other.
var days = map[int][2]solveFunc{
	1: {day01.Part1, day01.Part2},
	2: {day02.Part1, day02.Part2},
	3: {day03.Part1, day03.Part2},
	4: {day04.Part1, day04.Part2},
	5: {day05.Part1, day05.Part2},
	6: {day06.Part1, day06.Part2},
	7: {day07.Part1, day07.Part2},
	8: {day08.Part1, day08.Part2},
	9: {day09.Part1, day09.Part2},
}

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:           "aoc",
	Short:         "Advent of Code 2023 solutions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewProduction()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	flagDay   int
	flagPart  int
	flagInput string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one day's solution and print the answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, ok := days[flagDay]
		if !ok {
			return fmt.Errorf("unknown day %d", flagDay)
		}
		if flagPart != 1 && flagPart != 2 {
			return fmt.Errorf("unknown part %d, want 1 or 2", flagPart)
		}

		path := flagInput
		if path == "" {
			path = fmt.Sprintf("inputs/day%02d.txt", flagDay)
		}
		input, err := os.ReadFile(path)
		if err != nil {
			logger.Error("cannot read puzzle input",
				zap.Int("day", flagDay),
				zap.String("path", path),
				zap.Error(err))
			return err
		}

		answer, err := parts[flagPart-1](string(input))
		if err != nil {
			logger.Error("solving failed",
				zap.Int("day", flagDay),
				zap.Int("part", flagPart),
				zap.Error(err))
			return err
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&flagDay, "day", 0, "day to run (1-9)")
	runCmd.Flags().IntVar(&flagPart, "part", 1, "part to run (1 or 2)")
	runCmd.Flags().StringVar(&flagInput, "input", "", "puzzle input path (default inputs/dayNN.txt)")
	_ = runCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
