package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"regexdfa/internal/regexlib"
	"regexdfa/internal/wordlist"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	words := flag.String("words", "", `words to test, e.g. 'b ab "" ba'`)
	find := flag.String("find", "", "text to search for matches")
	nfaFlag := flag.Bool("nfa", false, "export Thompson NFA")
	rawFlag := flag.Bool("rawdfa", false, "export raw (non-minimized) DFA")
	outFile := flag.String("o", "", "DOT output file, - for stdout")
	jsonFlag := flag.Bool("json", false, "print the exported automaton as JSON")
	traceFlag := flag.Bool("trace", false, "print shunting-yard steps")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-words list] [-find text] [-nfa|-rawdfa] [-o file] [-json] [-trace] [-v]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := regexlib.DefaultOptions()
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	re, err := regexlib.CompileWithOptions(*pattern, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Expanded : %s\n", re.Expanded())
	fmt.Printf("Formatted: %s\n", re.Formatted())
	fmt.Printf("Postfix  : %s\n", re.Postfix())
	fmt.Printf("AST      : %s\n", re.AST())
	if *traceFlag {
		printTrace(os.Stdout, re.Trace())
	}
	fmt.Printf("NFA %d states, DFA %d states, minimal DFA %d states\n",
		len(re.NFA().States()), re.RawDFA().NumStates(), re.DFA().NumStates())
	printDFA(os.Stdout, re.DFA())

	if *words != "" {
		list, err := wordlist.Split(*words)
		if err != nil {
			log.Fatal(err)
		}
		printVerdicts(os.Stdout, re, list)
	}

	if *find != "" {
		for _, m := range re.FindAll(*find) {
			fmt.Printf("match [%d,%d) %q\n", m.Start, m.End, (*find)[m.Start:m.End])
		}
	}

	var graph any = re.DFA()
	switch {
	case *nfaFlag:
		graph = re.NFA()
	case *rawFlag:
		graph = re.RawDFA()
	}

	if *jsonFlag {
		data, err := json.MarshalIndent(graph, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
	}

	if *outFile == "" {
		return
	}
	if err := writeDOT(os.Stdout, *outFile, graph); err != nil {
		log.Fatal(err)
	}
	if *outFile != "-" {
		fmt.Printf("DOT written to %s (run: dot -Tpng %s -o graph.png)\n", *outFile, *outFile)
	}
}

// writeDOT renders graph and writes it to path, or to stdout when path is "-".
func writeDOT(stdout io.Writer, path string, graph any) error {
	var buf bytes.Buffer
	if err := regexlib.ExportDOT(&buf, graph); err != nil {
		return err
	}
	if path == "-" {
		if _, err := io.Copy(stdout, &buf); err != nil {
			return fmt.Errorf("cannot write DOT to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

func printTrace(w io.Writer, steps []regexlib.Step) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Action", "Token", "Output", "Stack"})
	for i, f := range regexlib.Frames(steps) {
		table.Append([]string{strconv.Itoa(i + 1), f.Action, f.Token, f.Output, f.Stack})
	}
	table.Render()
}

func printDFA(w io.Writer, d *regexlib.DFA) {
	header := []string{"State"}
	for _, c := range d.Alphabet {
		header = append(header, string(c))
	}
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, s := range d.States() {
		name := fmt.Sprintf("q%d", s)
		if s == d.Start {
			name = "→" + name
		}
		if d.Accepting.Has(s) {
			name += "*"
		}
		row := []string{name}
		for _, c := range d.Alphabet {
			cell := "-"
			if to, ok := d.Next(s, c); ok {
				cell = fmt.Sprintf("q%d", to)
			}
			row = append(row, cell)
		}
		table.Append(row)
	}
	table.Render()
}

func printVerdicts(w io.Writer, re *regexlib.Regex, list []string) {
	yes := color.New(color.FgGreen).SprintFunc()
	no := color.New(color.FgRed).SprintFunc()
	verdict := func(ok bool) string {
		if ok {
			return yes("yes")
		}
		return no("no")
	}
	for _, word := range list {
		n := re.NFA().Accepts(word)
		d := re.RawDFA().Accepts(word)
		m := re.Match(word)
		mark := ""
		if n != d || d != m {
			mark = color.YellowString("  mismatch")
		}
		fmt.Fprintf(w, "w=%-12q NFA=%s DFA=%s min=%s%s\n", word, verdict(n), verdict(d), verdict(m), mark)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "no words given")
	}
}
