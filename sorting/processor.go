package sorting

import (
	"cmp"
	"slices"
	"strconv"
)

// CountEntry is a distinct value and the number of times it occurred.
type CountEntry struct {
	Value string
	Count int
}

// Processor sorts or tallies raw tokens of one kind.
type Processor interface {
	Kind() Kind
	// Natural returns the tokens in ascending natural order.
	Natural(tokens []string) []string
	// Counts groups equal values and orders them by count, then value.
	Counts(tokens []string) []CountEntry
}

type processor[T cmp.Ordered] struct {
	kind    Kind
	convert func(string) (T, bool)
	format  func(T) string
}

// NewProcessor returns the processor for kind.
func NewProcessor(kind Kind) (Processor, error) {
	switch kind {
	case KindLine, KindWord:
		return &processor[string]{
			kind:    kind,
			convert: func(s string) (string, bool) { return s, true },
			format:  func(s string) string { return s },
		}, nil
	case KindLong:
		return &processor[int64]{
			kind: kind,
			convert: func(s string) (int64, bool) {
				n, err := parseLong(s)
				return n, err == nil
			},
			format: func(n int64) string { return strconv.FormatInt(n, 10) },
		}, nil
	}
	return nil, &ConfigError{Msg: "Unknown data type: " + kind.String()}
}

func (p *processor[T]) Kind() Kind {
	return p.kind
}

func (p *processor[T]) values(tokens []string) []T {
	values := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		// Collect already dropped anything that fails here.
		if v, ok := p.convert(tok); ok {
			values = append(values, v)
		}
	}
	return values
}

func (p *processor[T]) Natural(tokens []string) []string {
	values := p.values(tokens)
	slices.Sort(values)

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = p.format(v)
	}
	return out
}

func (p *processor[T]) Counts(tokens []string) []CountEntry {
	counts := make(map[T]int)
	for _, v := range p.values(tokens) {
		counts[v]++
	}

	type tally struct {
		value T
		count int
	}
	tallies := make([]tally, 0, len(counts))
	for v, c := range counts {
		tallies = append(tallies, tally{value: v, count: c})
	}
	slices.SortFunc(tallies, func(a, b tally) int {
		if c := cmp.Compare(a.count, b.count); c != 0 {
			return c
		}
		return cmp.Compare(a.value, b.value)
	})

	entries := make([]CountEntry, len(tallies))
	for i, t := range tallies {
		entries[i] = CountEntry{Value: p.format(t.value), Count: t.count}
	}
	return entries
}
