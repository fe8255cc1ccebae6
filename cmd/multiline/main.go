// Package main is the entry point for the multiline input prompt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/multiline/clipboard"
	"github.com/dshills/multiline/editor"
	"github.com/dshills/multiline/internal/config"
	"github.com/dshills/multiline/keybind"
	"github.com/dshills/multiline/render"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	e, cleanup, err := buildEditor(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	if opts.initial != "" {
		e.SetContents(opts.initial)
	}

	contents, err := e.Read()
	if err != nil {
		if errors.Is(err, editor.ErrCancelled) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(contents)
	return 0
}

// buildEditor assembles the editor from config and flags. The returned
// cleanup closes whatever the build opened.
func buildEditor(cfg config.Config, opts options) (*editor.Editor, func(), error) {
	cleanup := func() {}

	var eopts []editor.Option
	eopts = append(eopts, editor.WithTabWidth(cfg.TabWidth))

	var compOpts []render.Option
	if cfg.Decorations == "classic" {
		compOpts = append(compOpts, render.WithClassic())
	}
	if opts.maxHeight > 0 {
		compOpts = append(compOpts, render.WithMaxHeight(opts.maxHeight))
	} else if cfg.MaxHeight > 0 {
		compOpts = append(compOpts, render.WithMaxHeight(cfg.MaxHeight))
	}
	eopts = append(eopts, editor.WithCompositor(render.NewCompositor(compOpts...)))

	if cfg.Keymap != "" {
		script, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			return nil, cleanup, fmt.Errorf("reading keymap: %w", err)
		}
		kb, err := keybind.NewLua(string(script), keybind.NewNormal())
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = kb.Close
		eopts = append(eopts, editor.WithKeybinding(kb))
	}

	if clip, err := clipboard.NewSystem(); err == nil {
		eopts = append(eopts, editor.WithClipboard(clip))
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening log file: %w", err)
		}
		level := editor.LogLevel(config.ParseLogLevel(cfg.LogLevel))
		eopts = append(eopts, editor.WithLogger(editor.NewLogger(f, level)))
		prev := cleanup
		cleanup = func() {
			prev()
			_ = f.Close()
		}
	}

	return editor.New(eopts...), cleanup, nil
}

type options struct {
	configPath string
	initial    string
	maxHeight  int
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.initial, "text", "", "Initial buffer contents")
	flag.IntVar(&opts.maxHeight, "max-height", 0, "Maximum visible lines (0 = unlimited)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "multiline - in-terminal multiline input prompt\n\n")
		fmt.Fprintf(os.Stderr, "Usage: multiline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Reads multiline input and prints it on stdout.\n")
		fmt.Fprintf(os.Stderr, "Enter on an empty last line submits; Alt-Enter forces a newline.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExit codes: 0 submitted, 2 cancelled, 1 error.\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("multiline %s\n", version)
		os.Exit(0)
	}

	return opts
}
