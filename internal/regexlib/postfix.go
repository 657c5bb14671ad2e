package regexlib

import (
	"fmt"
	"strings"
)

// Step is one move of the shunting-yard parser: the token it moved and the
// sizes of the output and the operator stack after the move. Frames
// rebuilds the full snapshots.
type Step struct {
	Action    string `json:"action"`
	Token     string `json:"token"`
	OutputLen int    `json:"output_len"`
	StackLen  int    `json:"stack_len"`
}

// Shunting-yard moves recorded in Step.Action.
const (
	ActOperand = "operand"
	ActPush    = "push"
	ActPop     = "pop"
	ActDiscard = "discard"
	ActDrain   = "drain"
)

func (s Step) String() string {
	return fmt.Sprintf("%-7s %-2s output=%d stack=%d", s.Action, s.Token, s.OutputLen, s.StackLen)
}

// Frame is a step with the output and the operator stack it left behind.
type Frame struct {
	Step
	Output string `json:"output"`
	Stack  string `json:"stack"`
}

func (f Frame) String() string {
	return fmt.Sprintf("%-7s %-2s output=%s stack=[%s]", f.Action, f.Token, f.Output, f.Stack)
}

// Frames replays steps and returns the output and stack after each one.
func Frames(steps []Step) []Frame {
	var (
		output strings.Builder
		stack  []string
	)
	frames := make([]Frame, 0, len(steps))
	for _, s := range steps {
		switch s.Action {
		case ActOperand:
			output.WriteString(s.Token)
		case ActPush:
			stack = append(stack, s.Token)
		case ActPop, ActDrain:
			stack = dropTop(stack)
			output.WriteString(s.Token)
		case ActDiscard:
			stack = dropTop(stack)
		}
		frames = append(frames, Frame{Step: s, Output: output.String(), Stack: strings.Join(stack, "")})
	}
	return frames
}

func dropTop(stack []string) []string {
	if len(stack) == 0 {
		return stack
	}
	return stack[:len(stack)-1]
}

func precedence(t token) int {
	switch t.kind {
	case tLParen:
		return 1
	case tOperator:
		switch t.sym {
		case '|':
			return 2
		case '.':
			return 3
		case '*', '+', '?':
			return 4
		case '^':
			return 5
		}
	}
	return 6
}

// ToPostfix converts a formatted infix pattern (see Format) into postfix
// notation and returns every parser step taken.
func ToPostfix(formatted string) (string, []Step, error) {
	toks, err := tokenize(formatted)
	if err != nil {
		return "", nil, err
	}
	out, steps, err := postfixTokens(formatted, toks)
	if err != nil {
		return "", nil, err
	}
	return render(out), steps, nil
}

func postfixTokens(input string, toks []token) ([]token, []Step, error) {
	var (
		output []token
		stack  []token
		steps  []Step
	)
	record := func(action string, t token) {
		steps = append(steps, Step{Action: action, Token: t.String(), OutputLen: len(output), StackLen: len(stack)})
	}
	pop := func() token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}

	for _, t := range toks {
		switch t.kind {
		case tLParen:
			stack = append(stack, t)
			record(ActPush, t)
		case tRParen:
			for len(stack) > 0 && stack[len(stack)-1].kind != tLParen {
				op := pop()
				output = append(output, op)
				record(ActPop, op)
			}
			if len(stack) == 0 {
				return nil, nil, newError(MalformedPattern, StagePostfix, input, t.pos, "unmatched ')'")
			}
			record(ActDiscard, pop())
		case tOperator:
			for len(stack) > 0 && precedence(stack[len(stack)-1]) >= precedence(t) {
				op := pop()
				output = append(output, op)
				record(ActPop, op)
			}
			stack = append(stack, t)
			record(ActPush, t)
		default:
			output = append(output, t)
			record(ActOperand, t)
		}
	}
	for len(stack) > 0 {
		op := pop()
		if op.kind == tLParen {
			return nil, nil, newError(MalformedPattern, StagePostfix, input, op.pos, "unmatched '('")
		}
		output = append(output, op)
		record(ActDrain, op)
	}
	return output, steps, nil
}
