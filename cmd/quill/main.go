package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/JackWReid/quill/internal/config"
	"github.com/JackWReid/quill/internal/editor"
	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/theme"
)

var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	path        string
	accent      string
	logFile     string
	showVersion bool
	writeConfig bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("quill", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintf(stderr, "usage: quill [flags] [file]\n")
		fset.PrintDefaults()
	}
	accentHelp := "accent color, one of: " + strings.Join(theme.Names(), ", ")
	fset.StringVar(&opts.accent, "a", "", accentHelp+" (shorthand)")
	fset.StringVar(&opts.accent, "accent-color", "", accentHelp)
	fset.StringVar(&opts.logFile, "log", "", "append diagnostics to this file")
	fset.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	fset.BoolVar(&opts.writeConfig, "write-settings", false, "save the effective settings to settings.toml and exit")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}
	switch fset.NArg() {
	case 0:
	case 1:
		opts.path = fset.Arg(0)
	default:
		fset.Usage()
		return opts, fmt.Errorf("expected at most one file, got %d", fset.NArg())
	}
	if opts.accent != "" {
		if _, err := theme.Parse(opts.accent); err != nil {
			fset.Usage()
			return opts, err
		}
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "quill: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "quill %s\n", Version)
		return 0
	}

	settings, settingsPath, err := config.Load(config.Dir())
	if err != nil {
		fmt.Fprintf(stderr, "quill: %v\n", err)
		return 1
	}
	if opts.accent != "" {
		settings.AccentColor = opts.accent
	}
	if opts.logFile != "" {
		settings.LogFile = opts.logFile
	}
	accent, err := settings.Accent()
	if err != nil {
		fmt.Fprintf(stderr, "quill: %v\n", err)
		return 1
	}
	theme.Set(accent)

	if opts.writeConfig {
		if err := config.Save(settings, settingsPath); err != nil {
			fmt.Fprintf(stderr, "quill: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", settingsPath)
		return 0
	}

	logger, closeLog, err := openLog(settings.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "quill: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Printf("starting quill %s: file %q, accent %s, settings %s", Version, opts.path, accent.Name, settingsPath)

	// The file is read before the terminal is taken over so a read error
	// can be reported on a normal screen.
	var lines []string
	if opts.path != "" {
		lines, err = editor.ReadDocument(opts.path)
		if err != nil {
			fmt.Fprintf(stderr, "quill: %v\n", err)
			return 1
		}
	}

	if err := edit(opts.path, lines, editor.WithLogger(logger), editor.WithSettings(settings), editor.WithVersion(Version)); err != nil {
		logger.Printf("exit: %v", err)
		fmt.Fprintf(stderr, "quill: %v\n", err)
		return 1
	}
	logger.Printf("exit")
	return 0
}

// edit runs the editor on the real terminal, which is always restored
// before returning.
func edit(path string, lines []string, opts ...editor.Option) (err error) {
	t, err := terminal.Open()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, t.Restore())
	}()

	e := editor.New(t, opts...)
	if path != "" {
		e.LoadLines(path, lines)
	}
	return e.Run()
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "quill ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
