package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bjaus/csvconv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("csvconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		formatFlag    = fs.String("f", "csv", "Output format: "+formatList())
		encodingFlag  = fs.String("encoding", csvconv.CanonicalEncoding, "Encoding of the input file (IANA or WHATWG label)")
		classFlag     = fs.String("class", csvconv.DefaultClassName, "Class attribute of the HTML table")
		rootFlag      = fs.String("root", "csv", "XML root element name")
		rowFlag       = fs.String("row", "row", "XML row element name")
		cellFlag      = fs.String("cell", "cell", "XML cell element name")
		delimiterFlag = fs.String("delimiter", ",", "Field delimiter of the input file")
		indentFlag    = fs.String("indent", "", "Indentation for JSON and YAML output")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvconv [options] <file.csv>\n\n")
		fmt.Fprintf(stderr, "Convert a CSV file to another representation.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvconv -f json data.csv\n")
		fmt.Fprintf(stderr, "  csvconv -f xml -encoding windows-1252 -root people data.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: missing csv file argument\n\n")
		fs.Usage()
		return 2
	}

	format, err := csvconv.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	comma, size := utf8.DecodeRuneInString(*delimiterFlag)
	if comma == utf8.RuneError || size != len(*delimiterFlag) {
		fmt.Fprintf(stderr, "Error: -delimiter must be a single character, got %q\n", *delimiterFlag)
		return 2
	}

	filename := fs.Arg(0)
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	defer f.Close()

	c := csvconv.New(csvconv.NewReaderSource(f, csvconv.ReaderOptions{Comma: comma}), *encodingFlag)
	c.ClassName = *classFlag
	c.Tags = csvconv.Tags{Root: *rootFlag, Row: *rowFlag, Cell: *cellFlag}
	c.Indent = *indentFlag

	if err := c.Write(stdout, format); err != nil {
		if errors.Is(err, csvconv.ErrTruncatedOutput) {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func formatList() string {
	names := make([]string, 0, len(csvconv.Formats()))
	for _, f := range csvconv.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
