package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"humanizer-service/internal/core/domain"
	"humanizer-service/internal/core/engine"
)

var Version = "0.0.0"

func main() {
	app := &cli.App{
		Name:    "humanize",
		Usage:   "Rewrite AI-generated text into varied academic prose",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "intensity",
				Aliases: []string{"i"},
				Usage:   "Transforms per sentence (1-5)",
				Value:   domain.DefaultIntensity,
			},
			&cli.BoolFlag{
				Name:  "deep-think",
				Usage: "Run multiple rewrite cycles at maximum intensity",
			},
			&cli.IntFlag{
				Name:  "cycles",
				Usage: "Deep-think cycle count (1-10)",
				Value: domain.DefaultCycles,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed for reproducible output (0 = random)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read input from file instead of stdin",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "humanize:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyText
	}

	intensity := ctx.Int("intensity")
	if intensity < domain.MinIntensity || intensity > domain.MaxIntensity {
		return domain.ErrInvalidIntensity
	}
	cycles := ctx.Int("cycles")
	if cycles < domain.MinCycles || cycles > domain.MaxCycles {
		return domain.ErrInvalidCycles
	}

	var rng *rand.Rand
	if seed := ctx.Int64("seed"); seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	h := engine.New(nil, rng)

	var out string
	if ctx.Bool("deep-think") {
		out = h.DeepThink(text, cycles)
	} else {
		out = h.Humanize(text, intensity)
	}

	fmt.Println(out)
	return nil
}

func readInput(ctx *cli.Context) (string, error) {
	if path := ctx.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
