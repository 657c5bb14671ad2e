package regexlib

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

type ErrorKind string

const (
	MalformedPattern    ErrorKind = "MalformedPattern"
	MalformedPostfix    ErrorKind = "MalformedPostfix"
	UnsupportedOperator ErrorKind = "UnsupportedOperator"
)

var (
	ErrMalformedPattern    = errors.New("malformed pattern")
	ErrMalformedPostfix    = errors.New("malformed postfix")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// Pipeline stages reported in Error.Stage.
const (
	StageTokenize = "tokenize"
	StageExpand   = "expand"
	StagePostfix  = "postfix"
	StageAST      = "ast"
	StageThompson = "thompson"
)

// Error describes why a pattern could not be compiled. Pos is the byte
// offset into the stage input, or -1 when no position applies.
type Error struct {
	Kind     ErrorKind
	Stage    string
	Pos      int
	Fragment string
	Msg      string
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s at %d near %q: %s", e.Stage, e.Kind, e.Pos, e.Fragment, e.Msg)
	}
	return fmt.Sprintf("%s: %s near %q: %s", e.Stage, e.Kind, e.Fragment, e.Msg)
}

// Unwrap lets errors.Is match the sentinel of the error's kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case MalformedPattern:
		return ErrMalformedPattern
	case MalformedPostfix:
		return ErrMalformedPostfix
	case UnsupportedOperator:
		return ErrUnsupportedOperator
	}
	return nil
}

func newError(kind ErrorKind, stage string, input string, pos int, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Stage:    stage,
		Pos:      pos,
		Fragment: fragment(input, pos),
		Msg:      fmt.Sprintf(format, args...),
	}
}

// fragment cuts a short window of input around pos.
func fragment(input string, pos int) string {
	if pos < 0 || pos > len(input) {
		return input
	}
	const window = 8
	from := pos - window
	if from < 0 {
		from = 0
	}
	to := pos + window
	if to > len(input) {
		to = len(input)
	}
	for from > 0 && !utf8.RuneStart(input[from]) {
		from--
	}
	for to < len(input) && !utf8.RuneStart(input[to]) {
		to++
	}
	return input[from:to]
}
