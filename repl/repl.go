// Package repl implements Citrine's interactive read-eval-print loop and
// its websocket-based remote equivalent (see server.go), both built on
// the same citrine.EvalStr entry point a one-shot script run uses.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/citrine"
	"github.com/odvcencio/citrine/config"
	"github.com/odvcencio/citrine/value"
)

// REPL is a single interactive session: one environment, one history,
// one highlighter, read from in and echoed to out.
type REPL struct {
	cfg     config.Config
	env     *value.Environment
	hl      *Highlighter
	history []string
	in      *bufio.Scanner
	out     io.Writer
}

// New builds a REPL bound to the given streams and configuration.
func New(in io.Reader, out io.Writer, cfg config.Config) *REPL {
	return &REPL{
		cfg: cfg,
		env: citrine.StandardEnv(),
		hl:  NewHighlighter(cfg.HighlightTheme),
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run reads forms from the input stream one line at a time until EOF,
// evaluating and echoing each. A line is only submitted once its
// parens/brackets/braces balance, so a multi-line `fn` body can be typed
// naturally. The ":history" command lists previously submitted forms in
// order.
func (r *REPL) Run() {
	var pending string
	for {
		fmt.Fprint(r.out, r.prompt(pending))
		if !r.in.Scan() {
			return
		}
		line := r.in.Text()
		pending += line + "\n"

		if !balanced(pending) {
			continue
		}
		src := pending
		pending = ""

		if strings.TrimSpace(src) == ":history" {
			for i, h := range r.history {
				fmt.Fprintf(r.out, "%3d  %s", i+1, h)
			}
			continue
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		r.history = append(r.history, src)
		if len(r.history) > r.cfg.HistorySize && r.cfg.HistorySize > 0 {
			r.history = r.history[len(r.history)-r.cfg.HistorySize:]
		}

		v, err := citrine.EvalStr(src, r.env)
		if err != nil {
			fmt.Fprintf(r.out, "%s\n", err.Error())
			continue
		}
		fmt.Fprintf(r.out, "%s\n", r.hl.Render(v.String()))
	}
}

func (r *REPL) prompt(pending string) string {
	if pending == "" {
		return r.cfg.Prompt
	}
	return "...> "
}

// balanced reports whether every paren/bracket/brace in src is closed;
// unbalanced source keeps the REPL reading more lines instead of
// submitting a form the parser would only report as erroneous.
func balanced(src string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range src {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	return depth <= 0
}
