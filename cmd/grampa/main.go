package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/emilianobovetti/grampa"
	"github.com/emilianobovetti/grampa/display"
	"github.com/emilianobovetti/grampa/source"
)

const (
	appName  = "grampa"
	prompt   = "grampa> "
	banner   = "grampa REPL: one document per line. Ctrl+D to exit, :help for commands."
	helpText = `
REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL
  :kind <doc>      Print the kind of a document
  :list <doc>      Print a document normalized to a list
`
)

type options struct {
	format    source.Format
	kindOnly  bool
	inherited bool
}

func main() {
	var (
		formatName  string
		expr        string
		interactive bool
		opts        options
	)
	flag.StringVar(&formatName, "format", "json", "input format: json or yaml")
	flag.StringVar(&expr, "e", "", "decode and print the given document instead of reading stdin")
	flag.BoolVar(&opts.kindOnly, "kind", false, "print the kind of each document instead of its rendering")
	flag.BoolVar(&opts.inherited, "inherited", false, "flatten promoted fields of embedded structs")
	flag.BoolVar(&interactive, "i", false, "start an interactive session")
	flag.Parse()

	f, err := source.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(2)
	}
	opts.format = f

	switch {
	case interactive:
		os.Exit(runREPL(opts))
	case expr != "":
		os.Exit(run(opts, strings.NewReader(expr), os.Stdout))
	default:
		os.Exit(run(opts, os.Stdin, os.Stdout))
	}
}

func newConsole(opts options, w io.Writer) (*display.Console, *display.WriterSurface) {
	surface := display.NewWriter(w)
	c := display.New(surface)
	c.Stringifier = &grampa.Stringifier{Inherited: opts.inherited}
	return c, surface
}

// run prints every document read from r.
func run(opts options, r io.Reader, w io.Writer) int {
	c, surface := newConsole(opts, w)
	dec, err := source.NewDecoder(opts.format, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}
	for {
		v, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		show(c, opts, v)
	}
	if err := surface.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: write: %v\n", appName, err)
		return 1
	}
	return 0
}

func show(c *display.Console, opts options, v any) {
	if opts.kindOnly {
		c.Add(grampa.KindOf(v).String())
		return
	}
	c.Add(v)
}

func decodeOne(opts options, text string) (any, error) {
	docs, err := source.DecodeBytes(opts.format, []byte(text))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return grampa.Undefined, nil
	}
	return docs[0], nil
}

func runREPL(opts options) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	c, _ := newConsole(opts, os.Stdout)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if exit := handleCommand(c, opts, line); exit {
				return 0
			}
			continue
		}
		v, err := decodeOne(opts, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			continue
		}
		show(c, opts, v)
	}
}

// handleCommand runs a ':' command and reports whether the session should end.
func handleCommand(c *display.Console, opts options, line string) (exit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Print(helpText)
	case ":kind", ":list":
		v, err := decodeOne(opts, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return false
		}
		if cmd == ":kind" {
			c.Add(grampa.KindOf(v).String())
		} else {
			c.Add(grampa.ToList(v))
		}
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %s (try :help)\n", appName, cmd)
	}
	return false
}
