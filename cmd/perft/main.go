package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	"github.com/cricklet/variantboard/internal/fen"
	"github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
	"github.com/cricklet/variantboard/internal/perft"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code so deferred profile output is flushed first.
func run(args []string) int {
	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdPerftMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, option := range perft.AllOptions {
			fmt.Println(option)
		}
		return 0
	}

	options, err := perft.OptionsFromArgs(args...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	if options.Fen == "" {
		options.Fen = fen.DefaultFen
	}

	b, err := fen.BoardFromFenString(options.Fen, game.DefaultPieces())
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	logger := FuncLogger(func(s string) {
		fmt.Print(s)
	})

	fmt.Print(b)
	fmt.Println(fen.FenStringForGame(b))

	runner := perft.NewRunner(options.RunnerOptions(logger)...)

	start := time.Now()
	result, _, err := runner.Count(context.Background(), b, options.Depth)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	elapsed := time.Since(start)

	fmt.Printf("depth %v: %v\n", options.Depth, result)
	fmt.Printf("%v in %v (%v nodes/s)\n",
		humanize.Comma(int64(result.Nodes)),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(float64(result.Nodes)/elapsed.Seconds())))
	fmt.Println(perft.BufferPoolStats())
	return 0
}
