// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Command vcbench sweeps a range of (width, n) configurations for both the
// Merkle and Verkle schemes and writes a CSV timing report. It is the only
// place in this module that touches a CLI flag parser, a file, or a
// goroutine pool — the core packages stay synchronous and side-effect free.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/k1910177/vc-scis2025/bench"
)

func main() {
	app := &cli.App{
		Name:  "vcbench",
		Usage: "benchmark the Merkle and Verkle vector commitments",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "min-width", Value: 2, Usage: "smallest width/k to sweep"},
			&cli.IntFlag{Name: "max-width", Value: 8, Usage: "largest width/k to sweep (inclusive)"},
			&cli.IntFlag{Name: "n", Value: 1000, Usage: "number of leaves to commit per configuration"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for leaf generation"},
			&cli.IntFlag{Name: "jobs", Value: 4, Usage: "maximum concurrent configurations"},
			&cli.StringFlag{Name: "out", Value: "bench.csv", Usage: "CSV output path"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	minWidth := c.Int("min-width")
	maxWidth := c.Int("max-width")
	n := c.Int("n")
	seed := c.Uint64("seed")
	jobs := c.Int("jobs")
	outPath := c.String("out")

	if minWidth < 2 || maxWidth > 8 || minWidth > maxWidth {
		return fmt.Errorf("vcbench: width range must be within [2,8], got [%d,%d]", minWidth, maxWidth)
	}

	var configs []bench.Config
	for width := minWidth; width <= maxWidth; width++ {
		configs = append(configs,
			bench.Config{Scheme: "merkle", Width: width, N: n, Seed: seed},
			bench.Config{Scheme: "verkle", Width: width, N: n, Seed: seed},
		)
	}

	rows := make([]bench.Row, len(configs))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, cfg := range configs {
		i, cfg := i, cfg
		g.Go(func() error {
			var row bench.Row
			var err error
			switch cfg.Scheme {
			case "merkle":
				row, err = bench.RunMerkle(cfg)
			case "verkle":
				row, err = bench.RunVerkle(cfg)
			default:
				return fmt.Errorf("vcbench: unknown scheme %q", cfg.Scheme)
			}
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("vcbench: creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bench.Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(bench.FormatRow(row)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("vcbench: wrote %d rows to %s", len(rows), outPath)
	return nil
}
