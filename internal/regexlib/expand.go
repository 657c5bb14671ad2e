package regexlib

// Expand rewrites the shorthand operators + and ? into *, . and |:
//
//	X+ → X.X*
//	X? → (X|ε)
//
// X is the operand, ε or parenthesized group right before the operator,
// together with any * already applied to it.
func Expand(pattern string) (string, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return "", err
	}
	out, err := expandTokens(pattern, toks)
	if err != nil {
		return "", err
	}
	return render(out), nil
}

func expandTokens(pattern string, toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if t.kind != tOperator || (t.sym != '+' && t.sym != '?') {
			out = append(out, t)
			continue
		}
		from, err := lastOperand(pattern, out, t)
		if err != nil {
			return nil, err
		}
		x := append([]token(nil), out[from:]...)
		out = out[:from]

		switch t.sym {
		case '+':
			wrap := i+1 < len(toks) && toks[i+1].isPostfixOp()
			if wrap {
				out = append(out, token{kind: tLParen, sym: '(', pos: t.pos})
			}
			out = append(out, x...)
			out = append(out, token{kind: tOperator, sym: '.', pos: t.pos})
			out = append(out, x...)
			out = append(out, token{kind: tOperator, sym: '*', pos: t.pos})
			if wrap {
				out = append(out, token{kind: tRParen, sym: ')', pos: t.pos})
			}
		case '?':
			out = append(out, token{kind: tLParen, sym: '(', pos: t.pos})
			out = append(out, x...)
			out = append(out,
				token{kind: tOperator, sym: '|', pos: t.pos},
				token{kind: tEpsilon, sym: Epsilon, pos: t.pos},
				token{kind: tRParen, sym: ')', pos: t.pos},
			)
		}
	}
	return out, nil
}

// lastOperand returns the index in out where the operand of op starts.
func lastOperand(pattern string, out []token, op token) (int, error) {
	i := len(out) - 1
	for i >= 0 && out[i].kind == tOperator && out[i].sym == '*' {
		i--
	}
	if i < 0 {
		return 0, newError(MalformedPattern, StageExpand, pattern, op.pos, "nothing to repeat before %q", op.sym)
	}
	switch out[i].kind {
	case tOperand, tEpsilon:
		return i, nil
	case tRParen:
		depth := 0
		for j := i; j >= 0; j-- {
			switch out[j].kind {
			case tRParen:
				depth++
			case tLParen:
				depth--
				if depth == 0 {
					return j, nil
				}
			}
		}
		return 0, newError(MalformedPattern, StageExpand, pattern, op.pos, "unbalanced parentheses before %q", op.sym)
	}
	return 0, newError(MalformedPattern, StageExpand, pattern, op.pos, "nothing to repeat before %q", op.sym)
}
