// Command prewitt detects edges in a grayscale image.
//
// Usage:
//
//	prewitt [flags] <input> <output> <threads> <chunks>
//
// The input may be a PGM (P2 or P5), PNG, JPEG, BMP or TIFF file. The output
// format follows the output file extension unless -format is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/prewitt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("prewitt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "log every chunk claim")
		format  = fs.String("format", "", "output format: pgm, pgm-raw, png, jpeg, bmp, tiff (default: from extension)")
		lang    = fs.String("lang", "en", "language tag used to format numbers in the report")
		fit     = fs.Bool("fit-shade", false, "declare a PGM max shade of at least 255 so the output can be read back")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: prewitt [flags] <input> <output> <threads> <chunks>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 4 {
		fmt.Fprintln(stderr, "ERROR: Incorrect number of arguments. Format is: <Input image filename> <Output image filename> <# of Threads> <# of Chunks>")
		return 2
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	threads, err := positiveArg("threads", fs.Arg(2))
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 2
	}
	chunks, err := positiveArg("chunks", fs.Arg(3))
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 2
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: invalid -lang %q: %v\n", *lang, err)
		return 2
	}
	p := message.NewPrinter(tag)

	opts := []prewitt.Option{prewitt.WithThreads(threads), prewitt.WithChunks(chunks)}
	if *format != "" {
		f, err := prewitt.ParseFormat(*format)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: invalid -format %q: %v\n", *format, err)
			return 2
		}
		opts = append(opts, prewitt.WithOutputFormat(f))
	}

	if *fit {
		opts = append(opts, prewitt.WithFitMaxShade())
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	prewitt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	p.Fprintf(stdout, "Detect edges in %s using %d threads\n\n", inPath, threads)

	stats, err := prewitt.DetectFile(inPath, outPath, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	p.Fprintf(stdout, "Took %.6f second(s).\n\n", stats.Elapsed.Seconds())
	if *verbose {
		for id, rows := range stats.WorkerRows {
			p.Fprintf(stdout, "worker %d: %d rows\n", id, rows)
		}
		p.Fprintf(stdout, "%d claims, %d rows per chunk\n", stats.Claims, stats.RowsPerChunk)
	}
	return 0
}

// positiveArg parses a positional count argument.
func positiveArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", name, n)
	}
	return n, nil
}
