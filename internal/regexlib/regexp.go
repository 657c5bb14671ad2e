package regexlib

import "log/slog"

// Options configures compilation.
type Options struct {
	// Logger receives one debug event per pipeline stage. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{}
}

// Regex keeps every intermediate form of a compiled pattern.
type Regex struct {
	pattern   string
	expanded  string
	formatted string
	postfix   string
	trace     []Step

	ast    *Node
	nfa    *NFA
	rawDFA *DFA
	dfa    *DFA
}

func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, DefaultOptions())
}

func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileWithOptions runs the whole pipeline: expansion, explicit
// concatenation, shunting-yard, AST, Thompson NFA, subset construction and
// minimization. The first failing stage aborts compilation.
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("pattern", pattern)

	/* 1) + and ? ---------------------------------------------------------- */
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	expTok, err := expandTokens(pattern, toks)
	if err != nil {
		return nil, err
	}
	expanded := render(expTok)
	log.Debug("expanded", "expanded", expanded)

	/* 2) explicit concatenation ------------------------------------------- */
	fmtTok := formatTokens(expTok)
	formatted := render(fmtTok)
	log.Debug("formatted", "formatted", formatted)

	/* 3) shunting-yard ---------------------------------------------------- */
	// tokens keep their offsets in pattern, so errors point into pattern.
	pfxTok, trace, err := postfixTokens(pattern, fmtTok)
	if err != nil {
		return nil, err
	}
	postfix := render(pfxTok)
	log.Debug("postfix", "postfix", postfix, "steps", len(trace))

	/* 4) AST -------------------------------------------------------------- */
	ast, err := buildAST(pattern, pfxTok)
	if err != nil {
		return nil, err
	}
	log.Debug("ast", "tree", ast.String())

	/* 5) Thompson NFA ----------------------------------------------------- */
	nfa, err := Thompson(ast)
	if err != nil {
		return nil, err
	}
	log.Debug("nfa", "states", len(nfa.States()), "accepts", nfa.Accepting.String())

	/* 6) NFA → DFA -------------------------------------------------------- */
	raw := SubsetConstruction(nfa)
	log.Debug("dfa", "states", raw.NumStates(), "accepts", raw.Accepting.String())

	/* 7) minimization ----------------------------------------------------- */
	minimal := Minimize(raw)
	log.Debug("minimized", "states", minimal.NumStates(), "accepts", minimal.Accepting.String())

	return &Regex{
		pattern:   pattern,
		expanded:  expanded,
		formatted: formatted,
		postfix:   postfix,
		trace:     trace,
		ast:       ast,
		nfa:       nfa,
		rawDFA:    raw,
		dfa:       minimal,
	}, nil
}

// Match reports whether the minimal DFA accepts w.
func (r *Regex) Match(w string) bool { return r.dfa.Accepts(w) }

/* ----------- accessors ---------------------------------------------- */

func (r *Regex) Pattern() string   { return r.pattern }
func (r *Regex) Expanded() string  { return r.expanded }
func (r *Regex) Formatted() string { return r.formatted }
func (r *Regex) Postfix() string   { return r.postfix }
func (r *Regex) Trace() []Step     { return r.trace }
func (r *Regex) AST() *Node        { return r.ast }
func (r *Regex) NFA() *NFA         { return r.nfa }
func (r *Regex) RawDFA() *DFA      { return r.rawDFA }
func (r *Regex) DFA() *DFA         { return r.dfa }
