package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emilianobovetti/grampa/source"
)

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	code := run(options{format: source.JSON}, strings.NewReader(`[1, {"a": "b"}] null`), &out)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if got, want := out.String(), "[ 1, { a: b } ]\nnull\n"; got != want {
		t.Fatalf("out=%q want %q", got, want)
	}
}

func TestRun_KindOnlyYAML(t *testing.T) {
	var out bytes.Buffer
	code := run(options{format: source.YAML, kindOnly: true}, strings.NewReader("a: 1\n---\nhello\n---\n3\n"), &out)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if got, want := out.String(), "object\nstring\nnumber\n"; got != want {
		t.Fatalf("out=%q want %q", got, want)
	}
}

func TestRun_DecodeError(t *testing.T) {
	var out bytes.Buffer
	if code := run(options{format: source.JSON}, strings.NewReader(`{`), &out); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestHandleCommand(t *testing.T) {
	var out bytes.Buffer
	c, _ := newConsole(options{format: source.JSON}, &out)
	if handleCommand(c, options{format: source.JSON}, `:list "ab"`) {
		t.Fatalf(":list must not exit")
	}
	if handleCommand(c, options{format: source.JSON}, `:kind true`) {
		t.Fatalf(":kind must not exit")
	}
	if !handleCommand(c, options{format: source.JSON}, ":quit") {
		t.Fatalf(":quit must exit")
	}
	if got, want := out.String(), "[ a, b ]\nboolean\n"; got != want {
		t.Fatalf("out=%q want %q", got, want)
	}
}
