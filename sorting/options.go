package sorting

import (
	"fmt"
	"io"
)

const (
	DefaultSortingType = "natural"
	DefaultDataType    = "word"
)

// Options holds the values of the recognized command-line flags. The file
// paths are nil when their flag was not given.
type Options struct {
	SortingType string
	DataType    string
	InputFile   *string
	OutputFile  *string
}

// Input reads from the given file, or from stdin when no file was given.
func (o Options) Input(stdin io.Reader) Input {
	if o.InputFile != nil {
		return FromFile(*o.InputFile)
	}
	return FromStream(stdin)
}

// Output writes to the given file, or to stdout when no file was given.
func (o Options) Output(stdout io.Writer) Output {
	if o.OutputFile != nil {
		return ToFile(*o.OutputFile)
	}
	return ToStream(stdout)
}

// flagMissing maps each recognized flag to the error shown when its value
// is absent.
var flagMissing = map[string]string{
	"-sortingType": "No sorting type defined!",
	"-dataType":    "No data type defined!",
	"-inputFile":   "No input file defined!",
	"-outputFile":  "No output file defined!",
}

// ParseOptions scans args token by token. Recognized flags consume the
// following token as their value. Anything else is reported to warn and
// skipped on its own, so a stray flag's value is examined as the next
// token. Defaults only fill flags that never appeared.
func ParseOptions(args []string, warn io.Writer) (Options, error) {
	var opts Options
	seen := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		msg, ok := flagMissing[arg]
		if !ok {
			fmt.Fprintf(warn, "%s is not a valid parameter. It will be skipped.\n", arg)
			continue
		}
		if i+1 >= len(args) {
			return Options{}, &ConfigError{Msg: msg}
		}
		i++
		value := args[i]
		seen[arg] = true
		switch arg {
		case "-sortingType":
			opts.SortingType = value
		case "-dataType":
			opts.DataType = value
		case "-inputFile":
			opts.InputFile = &value
		case "-outputFile":
			opts.OutputFile = &value
		}
	}

	if !seen["-sortingType"] {
		opts.SortingType = DefaultSortingType
	}
	if !seen["-dataType"] {
		opts.DataType = DefaultDataType
	}
	return opts, nil
}
