package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dbpatch/dbreq"
	"dbpatch/ds"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

type (
	Args struct {
		File string `arg:"positional,required" help:"file carrying the DB request header, patched in place" placeholder:"FILE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Recompute the CRC-32 of the DB request header embedded in FILE",
			"and write it back in place.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func parseArgs(rawArgs []string) (*Args, *arg.Parser, error) {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "dbpatch", IgnoreEnv: true}, &args)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.Parse(rawArgs); err != nil {
		return nil, parser, err
	}
	return &args, parser, nil
}

// Run executes the tool against rawArgs (without the program name) and
// returns the process exit code.
func Run(rawArgs []string, stdout io.Writer, stderr io.Writer) int {
	args, parser, err := parseArgs(rawArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return ExitOK
	}
	if err != nil {
		if parser != nil {
			parser.WriteUsage(stderr)
		}
		fmt.Fprintln(stderr, "Error:", ds.ErrUsage{Reason: err.Error()})
		return ExitFailure
	}

	result, err := dbreq.PatchFile(args.File)
	if err != nil {
		reportError(stderr, args.File, err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "Found DB Request Header at offset %d\n", result.Offset)
	fmt.Fprintf(stdout, "Header size: %d\n", result.HeaderSize)
	fmt.Fprintf(stdout, "Calculated checksum: 0x%08X\n", result.Computed)
	fmt.Fprintln(stdout, "Successfully patched checksum.")
	return ExitOK
}

func reportError(stderr io.Writer, path string, err error) {
	var (
		notFound    ds.ErrMagicNotFound
		outOfBounds ds.ErrOutOfBounds
		errIO       ds.ErrIO
	)
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(stderr, "Error: DB Request Header not found in %s\n", path)
	case errors.As(err, &outOfBounds):
		fmt.Fprintf(stderr, "Error: DB Request Header in %s does not fit the scanned window: %v\n", path, err)
	case errors.As(err, &errIO) && errIO.Op == "write":
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "The checksum field of %s is in an undefined state.\n", path)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
}

func Start() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
