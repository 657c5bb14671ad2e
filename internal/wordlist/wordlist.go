// Package wordlist splits a command-line list of candidate words. Words are
// separated by blanks or commas; a double-quoted word may contain either,
// and "" stands for the empty word.
package wordlist

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var lexer = newLexer()

func newLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\n\r,]+`), skip)
	l.Add([]byte(`"[^"]*"`), quoted)
	l.Add([]byte(`[^ \t\n\r,"]+`), bare)
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

// Split returns the words of s in order.
func Split(s string) ([]string, error) {
	scanner, err := lexer.Scanner([]byte(s))
	if err != nil {
		return nil, err
	}
	var words []string
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, fmt.Errorf("word list: %w", err)
		}
		words = append(words, tok.(string))
	}
	return words, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func quoted(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes[1 : len(m.Bytes)-1]), nil
}

func bare(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes), nil
}
