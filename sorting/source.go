package sorting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input is where tokens are read from: FromFile or FromStream.
type Input interface {
	open() (io.ReadCloser, error)
}

type fileInput struct{ path string }

type streamInput struct{ r io.Reader }

// FromFile reads the whole file at path.
func FromFile(path string) Input {
	return fileInput{path: path}
}

// FromStream reads r until end of stream. The reader is not closed.
func FromStream(r io.Reader) Input {
	return streamInput{r: r}
}

func (in fileInput) open() (io.ReadCloser, error) {
	f, err := os.Open(in.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}

func (in streamInput) open() (io.ReadCloser, error) {
	return io.NopCloser(in.r), nil
}

// Collect reads every token of the given kind from in. Lines are tokens
// for KindLine; otherwise each line is split on whitespace. Long tokens
// that do not parse are reported to warn and dropped.
func Collect(in Input, kind Kind, warn io.Writer) ([]string, error) {
	rc, err := in.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var tokens []string
	reader := bufio.NewReader(rc)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			tokens = appendTokens(tokens, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), kind, warn)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
	return tokens, nil
}

func appendTokens(tokens []string, line string, kind Kind, warn io.Writer) []string {
	if kind == KindLine {
		return append(tokens, line)
	}
	for _, field := range strings.Fields(line) {
		if kind == KindLong {
			if _, err := parseLong(field); err != nil {
				fmt.Fprintf(warn, "\"%s\" is not a long. It will be skipped.\n", field)
				continue
			}
		}
		tokens = append(tokens, field)
	}
	return tokens
}
