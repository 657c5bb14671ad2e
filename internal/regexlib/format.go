package regexlib

// Format makes concatenation explicit by inserting '.' between adjacent
// tokens, so "a*b" becomes "a*.b".
func Format(expanded string) (string, error) {
	toks, err := tokenize(expanded)
	if err != nil {
		return "", err
	}
	return render(formatTokens(toks)), nil
}

func formatTokens(toks []token) []token {
	out := make([]token, 0, 2*len(toks))
	for i, c1 := range toks {
		out = append(out, c1)
		if i+1 == len(toks) {
			break
		}
		c2 := toks[i+1]
		left := c1.kind == tOperand || c1.kind == tEpsilon || c1.kind == tRParen || c1.isPostfixOp()
		right := c2.kind == tOperand || c2.kind == tEpsilon || c2.kind == tLParen
		if left && right {
			out = append(out, token{kind: tOperator, sym: '.', pos: c2.pos})
		}
	}
	return out
}
