// Command statichuffman estimates symbol probabilities from a sample, prints
// the resulting Huffman codes, and encodes or decodes files with them.
//
// Usage:
//
//     statichuffman -p sample.txt probfile.txt
//     statichuffman -s probfile.txt
//     statichuffman -e probfile.txt data.txt data.txt.enc
//     statichuffman -d probfile.txt data.txt.enc data.txt.new
//     statichuffman -pack data.txt.enc data.txt.pk
//     statichuffman -unpack data.txt.pk data.txt.enc
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chronos-tachyon/statichuffman"
)

var errUsage = errors.New("usage")

type mode struct {
	name    string
	numArgs int
	usage   string
	run     func(opts *options, args []string) error
}

type options struct {
	stdout    io.Writer
	alphabet  int
	codesFile string
}

var modes = []mode{
	{"p", 2, "-p sample.txt probfile.txt", runEstimate},
	{"s", 1, "-s probfile.txt", runShowCodes},
	{"e", 3, "-e probfile.txt data.txt data.txt.enc", runEncode},
	{"d", 3, "-d probfile.txt data.txt.enc data.txt.new", runDecode},
	{"pack", 2, "-pack data.txt.enc data.txt.pk", runPack},
	{"unpack", 2, "-unpack data.txt.pk data.txt.enc", runUnpack},
}

func main() {
	log.SetFlags(0)

	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("error: ", err)
	}
}

func run(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("statichuffman", flag.ContinueOnError)
	fs.SetOutput(stdout)

	opts := &options{stdout: stdout}
	fs.IntVar(&opts.alphabet, "alphabet", statichuffman.ASCIIAlphabetSize, "number of symbols in the alphabet")
	fs.StringVar(&opts.codesFile, "codes", "codes.txt", "file that -s saves the codes to")
	selected := make([]*bool, len(modes))
	for i, m := range modes {
		selected[i] = fs.Bool(m.name, false, m.usage)
	}

	if err := fs.Parse(argv); err != nil {
		return errUsage
	}

	var chosen *mode
	for i := range modes {
		if !*selected[i] {
			continue
		}
		if chosen != nil {
			fmt.Fprintln(stdout, "Only one of -p, -s, -e, -d, -pack or -unpack may be used")
			return errUsage
		}
		chosen = &modes[i]
	}
	if chosen == nil {
		fmt.Fprintln(stdout, "One of -p, -s, -e, -d, -pack or -unpack must be used")
		return errUsage
	}
	if fs.NArg() != chosen.numArgs {
		fmt.Fprintln(stdout, "Invalid arguments.")
		fmt.Fprintf(stdout, "To use -%s: statichuffman %s\n", chosen.name, chosen.usage)
		return errUsage
	}
	if opts.alphabet < statichuffman.MinAlphabetSize || opts.alphabet > statichuffman.MaxAlphabetSize {
		return fmt.Errorf("-alphabet %d outside [%d, %d]", opts.alphabet, statichuffman.MinAlphabetSize, statichuffman.MaxAlphabetSize)
	}
	return chosen.run(opts, fs.Args())
}

func runEstimate(opts *options, args []string) error {
	sampleFile, probFile := args[0], args[1]

	probs, err := withInput(sampleFile, func(r io.Reader) (statichuffman.ProbabilityTable, error) {
		return statichuffman.Estimate(r, opts.alphabet)
	})
	if err != nil {
		return err
	}
	if err := withOutput(probFile, func(w io.Writer) error {
		_, err := probs.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "Character probabilities saved in %q\n", probFile)
	return nil
}

func runShowCodes(opts *options, args []string) error {
	tree, err := loadTree(args[0], opts.alphabet)
	if err != nil {
		return err
	}
	table := statichuffman.DeriveCodeTable(tree)
	if _, err := table.DumpPrintable(opts.stdout); err != nil {
		return err
	}
	if err := withOutput(opts.codesFile, func(w io.Writer) error {
		_, err := table.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "Huffman codes saved in %q\n", opts.codesFile)
	return nil
}

func runEncode(opts *options, args []string) error {
	probFile, dataFile, encodedFile := args[0], args[1], args[2]

	tree, err := loadTree(probFile, opts.alphabet)
	if err != nil {
		return err
	}
	table := statichuffman.DeriveCodeTable(tree)

	if err := transform(dataFile, encodedFile, func(w io.Writer, r io.Reader) (int64, error) {
		return statichuffman.NewEncoder(w, table).ReadFrom(r)
	}); err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "Encoding done. Result in: %q\n", encodedFile)
	return nil
}

func runDecode(opts *options, args []string) error {
	probFile, encodedFile, decodedFile := args[0], args[1], args[2]

	tree, err := loadTree(probFile, opts.alphabet)
	if err != nil {
		return err
	}

	if err := transform(encodedFile, decodedFile, func(w io.Writer, r io.Reader) (int64, error) {
		return statichuffman.NewDecoder(w, tree).ReadFrom(r)
	}); err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "Decoding done. Result in: %q\n", decodedFile)
	return nil
}

func runPack(opts *options, args []string) error {
	return convert(opts, args[0], args[1], statichuffman.Pack, "Packing")
}

func runUnpack(opts *options, args []string) error {
	return convert(opts, args[0], args[1], statichuffman.Unpack, "Unpacking")
}

func convert(opts *options, inFile, outFile string, fn func(io.Writer, io.Reader) (int64, error), verb string) error {
	if err := transform(inFile, outFile, fn); err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "%s done. Result in: %q\n", verb, outFile)
	return nil
}

func loadTree(probFile string, numSymbols int) (*statichuffman.Tree, error) {
	probs, err := withInput(probFile, func(r io.Reader) (statichuffman.ProbabilityTable, error) {
		return statichuffman.ParseProbabilityTable(r, numSymbols)
	})
	if err != nil {
		return nil, err
	}
	return statichuffman.BuildTree(probs, numSymbols)
}

func withInput[T any](name string, fn func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(name)
	if err != nil {
		return zero, fmt.Errorf("%q file cannot be opened: %w", name, err)
	}
	defer f.Close()

	value, err := fn(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return value, nil
}

// transform opens inFile before creating outFile, so that a missing input
// leaves no output behind.
func transform(inFile, outFile string, fn func(io.Writer, io.Reader) (int64, error)) error {
	_, err := withInput(inFile, func(r io.Reader) (int64, error) {
		var n int64
		err := withOutput(outFile, func(w io.Writer) error {
			var err error
			n, err = fn(w, r)
			return err
		})
		return n, err
	})
	return err
}

func withOutput(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create %q output file: %w", name, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
