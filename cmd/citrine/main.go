// Command citrine is the Citrine language CLI: an interactive REPL, a
// one-shot file evaluator, token/tree dump modes for debugging the front
// end, and a websocket server mode for remote evaluation.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/odvcencio/citrine"
	"github.com/odvcencio/citrine/config"
	"github.com/odvcencio/citrine/repl"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	serveAddr := flag.String("serve", "", "run a websocket eval server on this address instead of a local REPL (e.g. :4747)")
	tokens := flag.Bool("tokens", false, "print the token stream for the given file and exit")
	tree := flag.Bool("tree", false, "print the parse tree for the given file and exit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "citrine: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *serveAddr != "" {
		cfg.ServeAddr = *serveAddr
	}

	args := flag.Args()

	switch {
	case *tokens:
		if err := dumpTokens(args); err != nil {
			fmt.Fprintf(os.Stderr, "citrine: %v\n", err)
			os.Exit(1)
		}
	case *tree:
		if err := dumpTree(args); err != nil {
			fmt.Fprintf(os.Stderr, "citrine: %v\n", err)
			os.Exit(1)
		}
	case *serveAddr != "":
		if err := serve(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "citrine: %v\n", err)
			os.Exit(1)
		}
	case len(args) > 0:
		if err := runFile(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "citrine: %v\n", err)
			os.Exit(1)
		}
	default:
		repl.New(os.Stdin, os.Stdout, cfg).Run()
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	v, err := citrine.EvalStr(string(src), citrine.StandardEnv())
	if err != nil {
		return err
	}
	fmt.Println(v.String())
	return nil
}

func dumpTokens(args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}
	fmt.Print(repl.DumpTokens(citrine.Tokenize(src)))
	return nil
}

func dumpTree(args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}
	fmt.Println(citrine.Parse(src).Dump())
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("expected a source file argument")
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func serve(cfg config.Config) error {
	server := repl.NewServer()
	fmt.Printf("citrine: serving websocket eval on %s\n", cfg.ServeAddr)
	return http.ListenAndServe(cfg.ServeAddr, server)
}
