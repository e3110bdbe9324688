package sorting

import (
	"fmt"
	"strconv"
)

// Kind selects how input is split into tokens and how tokens are typed.
type Kind int

const (
	KindLong Kind = iota
	KindLine
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindLine:
		return "line"
	case KindWord:
		return "word"
	}
	return "unknown"
}

// Label is the noun used in report headers. Words are reported as lines.
func (k Kind) Label() string {
	if k == KindLong {
		return "words"
	}
	return "lines"
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "long":
		return KindLong, nil
	case "line":
		return KindLine, nil
	case "word":
		return KindWord, nil
	}
	return 0, &ConfigError{Msg: fmt.Sprintf("Unknown data type: %s", s)}
}

// Mode selects the report produced for the collected tokens.
type Mode int

const (
	ModeNatural Mode = iota
	ModeCount
)

func (m Mode) String() string {
	if m == ModeCount {
		return "count"
	}
	return "natural"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "natural":
		return ModeNatural, nil
	case "count":
		return ModeCount, nil
	}
	return 0, &ConfigError{Msg: fmt.Sprintf("Unknown sorting type: %s", s)}
}

// parseLong accepts decimal integers in the signed 32-bit range.
func parseLong(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 32)
}
