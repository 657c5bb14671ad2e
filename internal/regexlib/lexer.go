package regexlib

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Epsilon marks the empty string in patterns and labels ε-edges in an NFA.
const Epsilon = 'ε'

type tokenKind int

const (
	tOperand  tokenKind = iota // alphabet symbol
	tEpsilon                   // ε
	tOperator                  // . | * + ? ^
	tLParen                    // (
	tRParen                    // )
)

type token struct {
	kind tokenKind
	sym  rune
	pos  int // byte offset in the text the token was read from
}

func (t token) String() string { return string(t.sym) }

func (t token) isPostfixOp() bool {
	return t.kind == tOperator && (t.sym == '*' || t.sym == '+' || t.sym == '?')
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Operator", Pattern: `[.|*+?^]`},
	{Name: "Symbol", Pattern: `(?s).`},
})

var tokenKinds = func() map[lexer.TokenType]tokenKind {
	syms := patternLexer.Symbols()
	return map[lexer.TokenType]tokenKind{
		syms["Epsilon"]:  tEpsilon,
		syms["LParen"]:   tLParen,
		syms["RParen"]:   tRParen,
		syms["Operator"]: tOperator,
		syms["Symbol"]:   tOperand,
	}
}()

func tokenize(text string) ([]token, error) {
	if i := invalidUTF8(text); i >= 0 {
		return nil, newError(MalformedPattern, StageTokenize, text, i, "invalid UTF-8 byte %#x", text[i])
	}
	lex, err := patternLexer.LexString("", text)
	if err != nil {
		return nil, newError(MalformedPattern, StageTokenize, text, -1, "%v", err)
	}
	var out []token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, newError(MalformedPattern, StageTokenize, text, -1, "%v", err)
		}
		if tok.EOF() {
			return out, nil
		}
		r, _ := utf8.DecodeRuneInString(tok.Value)
		out = append(out, token{kind: tokenKinds[tok.Type], sym: r, pos: tok.Pos.Offset})
	}
}

// invalidUTF8 returns the offset of the first byte of s that does not start
// a valid UTF-8 sequence, or -1.
func invalidUTF8(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}

func render(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteRune(t.sym)
	}
	return b.String()
}
