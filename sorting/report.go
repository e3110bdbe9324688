package sorting

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Report is the processed result of one run, ready to be rendered.
type Report struct {
	Kind    Kind
	Mode    Mode
	Sorted  []string
	Entries []CountEntry
}

// Total is the number of tokens the report covers.
func (r *Report) Total() int {
	if r.Mode == ModeNatural {
		return len(r.Sorted)
	}
	total := 0
	for _, e := range r.Entries {
		total += e.Count
	}
	return total
}

// Render formats the report as text.
func Render(r *Report) string {
	var sb strings.Builder
	total := r.Total()
	fmt.Fprintf(&sb, "Total %s: %d.\n", r.Kind.Label(), total)

	if r.Mode == ModeNatural {
		sb.WriteString("Sorted data: ")
		sb.WriteString(strings.Join(r.Sorted, " "))
		return sb.String()
	}

	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "%s: %d time(s), %d%%\n", e.Value, e.Count, percent(e.Count, total))
	}
	return sb.String()
}

// percent rounds half up; inputs are never negative.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(count)/float64(total) + 0.5))
}

// Output is where a rendered report goes: ToFile or ToStream.
type Output interface {
	write(text string) error
}

type fileOutput struct{ path string }

type streamOutput struct{ w io.Writer }

// ToFile overwrites the file at path.
func ToFile(path string) Output {
	return fileOutput{path: path}
}

// ToStream prints to w.
func ToStream(w io.Writer) Output {
	return streamOutput{w: w}
}

func (o fileOutput) write(text string) error {
	if err := os.WriteFile(o.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func (o streamOutput) write(text string) error {
	if _, err := io.WriteString(o.w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Deliver writes text to out in one call.
func Deliver(out Output, text string) error {
	return out.write(text)
}
