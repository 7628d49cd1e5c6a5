package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	bf "github.com/Pure-Company/blockfunc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	squareF = "square"
	sieveF  = "sieve"
	indexF  = "index"
	sizeF   = "size"
	seedF   = "seed"
)

var defaultSizes = []int{1_000_000, 10_000_000}

// lineWriter keeps the first write error so blocks, which cannot return
// one, can still fail the command. Later writes are skipped.
type lineWriter struct {
	w   io.Writer
	err error
}

func newLineWriter(cmd *cobra.Command) *lineWriter {
	return &lineWriter{w: cmd.OutOrStdout()}
}

func (l *lineWriter) println(a ...any) {
	if l.err == nil {
		_, l.err = fmt.Fprintln(l.w, a...)
	}
}

func (l *lineWriter) printf(format string, a ...any) {
	if l.err == nil {
		_, l.err = fmt.Fprintf(l.w, format, a...)
	}
}

// done returns err if set, else the first write error.
func (l *lineWriter) done(err error) error {
	if err != nil {
		return err
	}
	return errors.Wrap(l.err, "write output")
}

// printer returns a block that writes each value on its own line.
func printer[T any](l *lineWriter) bf.YieldFunc[T] {
	return func(v T) {
		l.println(v)
	}
}

func intArg(args []string) (int, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", args[0])
	}
	return n, nil
}

func (a *app) yieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yield",
		Short: "Hand three values of different types to a block.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := newLineWriter(cmd)
			return out.done(bf.YieldStuff(out.w, printer[any](out)))
		},
	}
}

func (a *app) fibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Print the first N Fibonacci numbers.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			a.logger.Debugw("Generating Fibonacci numbers", "n", n)
			out := newLineWriter(cmd)
			return out.done(bf.Fib(n, printer[int](out)))
		},
	}
}

func (a *app) timesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "times N",
		Short: "Print 0 up to, but excluding, N.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			square, err := cmd.Flags().GetBool(squareF)
			if err != nil {
				return err
			}

			out := newLineWriter(cmd)
			block := printer[int](out)
			if square {
				emit := block
				block = func(i int) { emit(i * i) }
			}
			return out.done(bf.Int(n).MyTimes(block))
		},
	}
	cmd.Flags().Bool(squareF, false, "Print the square of each value.")
	return cmd
}

func (a *app) digitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digits N",
		Short: "Print the decimal digits of N, left to right.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			out := newLineWriter(cmd)
			return out.done(bf.Int(n).Digits(printer[int](out)))
		},
	}
}

func (a *app) lettersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "letters TEXT",
		Short: "Print only the ASCII letters of TEXT.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newLineWriter(cmd)
			return out.done(bf.String(args[0]).JustLetters(func(r rune) {
				out.println(string(r))
			}))
		},
	}
}

func (a *app) isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime N...",
		Short: "Report whether each N is prime.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newLineWriter(cmd)
			for _, arg := range args {
				n, err := intArg([]string{arg})
				if err != nil {
					return err
				}
				out.printf("%d: %t\n", n, bf.IsPrime(n))
			}
			return out.done(nil)
		},
	}
}

func (a *app) primesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes N",
		Short: "Print every prime below N.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			sieve, err := cmd.Flags().GetBool(sieveF)
			if err != nil {
				return err
			}

			out := newLineWriter(cmd)
			block := printer[int](out)
			if sieve {
				a.logger.Debugw("Using sieve", "limit", n)
				return out.done(bf.PrimesBySieve(n, block))
			}
			return out.done(bf.Int(n).PrimesLessThan(block))
		},
	}
	cmd.Flags().Bool(sieveF, false, "Read the primes off a sieve instead of testing each number.")
	return cmd
}

func (a *app) compositesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "composites N",
		Short: "Print every non-prime in [1, N).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			out := newLineWriter(cmd)
			return out.done(bf.Int(n).CompositesLessThan(printer[int](out)))
		},
	}
}

func (a *app) eachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "each ITEM...",
		Short: "Print each item, optionally numbered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			withIndex, err := cmd.Flags().GetBool(indexF)
			if err != nil {
				return err
			}

			out := newLineWriter(cmd)
			items := bf.Slice[string](args)
			if withIndex {
				return out.done(items.MyEachWithIndex(func(i int, s string) {
					out.printf("%d. %s\n", i+1, s)
				}))
			}
			return out.done(items.MyEach(printer[string](out)))
		},
	}
	cmd.Flags().Bool(indexF, false, "Number the items starting at 1.")
	return cmd
}

func (a *app) bitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits N",
		Short: "Print every binary string of length N.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			bits, err := bf.Int(n).BitStrings()
			if err != nil {
				return err
			}
			out := newLineWriter(cmd)
			return out.done(bf.Slice[string](bits).MyEach(printer[string](out)))
		},
	}
}

func (a *app) measureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time shuffling and sorting 1..size for each size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := cmd.Flags().GetIntSlice(sizeF)
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetUint64(seedF)
			if err != nil {
				return err
			}

			sw := bf.Stopwatch{Out: cmd.OutOrStdout(), Logger: a.logger}
			r := rand.New(rand.NewPCG(seed, seed))
			for _, size := range sizes {
				if size < 0 {
					return errors.Errorf("size %d: must not be negative", size)
				}
				a.logger.Debugw("Measuring shuffle and sort", "size", size)
				if _, err := sw.Measure(bf.ShuffleSort(size, r)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSlice(sizeF, defaultSizes, "Number of elements to shuffle and sort; repeatable.")
	cmd.Flags().Uint64(seedF, 1, "Seed for the shuffle.")
	return cmd
}

func (a *app) shapesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Print area and perimeter for a list of shapes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shapes, err := a.loadShapes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Table {
				return bf.RenderShapeTable(out, shapes...)
			}
			return bf.PrintShapeStats(out, shapes...)
		},
	}
	cmd.Flags().String(shapesFileF, defaultShapesFile, shapesFileUsage)
	cmd.Flags().Bool(tableF, defaultTable, tableUsage)
	return cmd
}

func (a *app) loadShapes() ([]bf.Shape, error) {
	if a.cfg.ShapesFile == "" {
		return []bf.Shape{bf.Rectangle{Width: 4, Height: 1}, bf.Circle{Radius: 3}}, nil
	}

	data, err := os.ReadFile(a.cfg.ShapesFile)
	if err != nil {
		return nil, errors.Wrap(err, "read shapes file")
	}
	shapes, err := bf.DecodeShapes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", a.cfg.ShapesFile)
	}
	a.logger.Debugw("Shapes loaded", "file", a.cfg.ShapesFile, "count", len(shapes))
	return shapes, nil
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
