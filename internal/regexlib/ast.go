package regexlib

import "strings"

type Kind int

const (
	Literal Kind = iota
	Empty        // ε
	Concat
	Union
	Star
	Reserved // operator with no Thompson construction: + ? (unary), ^ (binary)
)

var kindNames = [...]string{"Literal", "Empty", "Concat", "Union", "Star", "Reserved"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is an AST node. Literal keeps its symbol in Sym, Reserved its
// operator. Star and unary Reserved nodes only use Left.
type Node struct {
	Kind  Kind
	Sym   rune
	Left  *Node
	Right *Node
}

func (n *Node) label() string {
	switch n.Kind {
	case Literal, Reserved:
		return string(n.Sym)
	case Empty:
		return string(Epsilon)
	case Concat:
		return "."
	case Union:
		return "|"
	case Star:
		return "*"
	}
	return "?"
}

// String renders the tree as fully parenthesized infix.
func (n *Node) String() string {
	var b strings.Builder
	n.writeInfix(&b)
	return b.String()
}

func (n *Node) writeInfix(b *strings.Builder) {
	if n == nil {
		return
	}
	switch {
	case n.Left == nil && n.Right == nil:
		b.WriteString(n.label())
	case n.Right == nil:
		b.WriteByte('(')
		n.Left.writeInfix(b)
		b.WriteByte(')')
		b.WriteString(n.label())
	default:
		b.WriteByte('(')
		n.Left.writeInfix(b)
		b.WriteString(n.label())
		n.Right.writeInfix(b)
		b.WriteByte(')')
	}
}

// Postfix renders the tree back into postfix notation.
func (n *Node) Postfix() string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Left != nil {
			walk(n.Left)
		}
		if n.Right != nil {
			walk(n.Right)
		}
		b.WriteString(n.label())
	}
	walk(n)
	return b.String()
}

// ParsePostfix builds the AST for a postfix pattern as produced by ToPostfix.
// An empty postfix denotes the empty string.
func ParsePostfix(postfix string) (*Node, error) {
	toks, err := tokenize(postfix)
	if err != nil {
		return nil, err
	}
	return buildAST(postfix, toks)
}

func buildAST(input string, toks []token) (*Node, error) {
	if len(toks) == 0 {
		return &Node{Kind: Empty}, nil
	}
	var stack []*Node
	pop := func(t token) (*Node, error) {
		if len(stack) == 0 {
			return nil, newError(MalformedPostfix, StageAST, input, t.pos, "operator %q is missing an operand", t.sym)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for _, t := range toks {
		switch t.kind {
		case tOperand:
			stack = append(stack, &Node{Kind: Literal, Sym: t.sym})
		case tEpsilon:
			stack = append(stack, &Node{Kind: Empty})
		case tOperator:
			switch t.sym {
			case '.', '|', '^':
				right, err := pop(t)
				if err != nil {
					return nil, err
				}
				left, err := pop(t)
				if err != nil {
					return nil, err
				}
				kind, sym := Reserved, t.sym
				switch t.sym {
				case '.':
					kind, sym = Concat, 0
				case '|':
					kind, sym = Union, 0
				}
				stack = append(stack, &Node{Kind: kind, Sym: sym, Left: left, Right: right})
			default:
				child, err := pop(t)
				if err != nil {
					return nil, err
				}
				n := &Node{Kind: Reserved, Sym: t.sym, Left: child}
				if t.sym == '*' {
					n = &Node{Kind: Star, Left: child}
				}
				stack = append(stack, n)
			}
		default:
			return nil, newError(MalformedPostfix, StageAST, input, t.pos, "parenthesis %q in postfix", t.sym)
		}
	}
	if len(stack) != 1 {
		return nil, newError(MalformedPostfix, StageAST, input, -1, "%d values left on the stack", len(stack))
	}
	return stack[0], nil
}
