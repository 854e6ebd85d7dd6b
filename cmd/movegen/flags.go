// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/movegen-go/internal/config"
)

var (
	// General
	configFile = flag.String("config", "", "YAML configuration file")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console, json")
	logFile   = flag.String("log-file", "", "Write logs to this file (default: stderr)")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	ndjson     = flag.Bool("ndjson", false, "Output one JSON object per line as positions finish")
	noBoard    = flag.Bool("noboard", false, "Don't print the board diagram")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves")

	// Batch options
	workers           = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	perftDepth        = flag.Int("perft", 0, "Run perft to this depth on every batch position")
	detectDuplicates  = flag.Bool("D", false, "Flag positions repeated in batch input")
	exactDuplicates   = flag.Bool("exact", false, "Duplicates must also match move clocks")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// REPL options
	prompt      = flag.String("prompt", "movegen> ", "Interactive prompt")
	historyFile = flag.String("history", "", "Interactive history file")
)

// applyFlags applies command-line flags to the configuration. Only flags
// for which isSet reports true override values from the config file.
func applyFlags(cfg *config.Config, isSet func(name string) bool) {
	b := config.From(cfg)
	applyLogFlags(b, isSet)
	applyOutputFlags(b, isSet)
	applyBatchFlags(b, isSet)
	applyREPLFlags(b, isSet)
	*cfg = *b.Build()
}

func applyLogFlags(b *config.ConfigBuilder, isSet func(string) bool) {
	if isSet("log-level") {
		b.WithLogLevel(*logLevel)
	}
	if isSet("log-format") {
		b.WithLogFormat(*logFormat)
	}
	if isSet("log-file") {
		b.WithLogFile(*logFile)
	}
}

// applyOutputFlags lets -ndjson win over -J when both are given.
func applyOutputFlags(b *config.ConfigBuilder, isSet func(string) bool) {
	if isSet("J") {
		if *jsonOutput {
			b.WithOutputFormat(config.JSON)
		} else {
			b.WithOutputFormat(config.Text)
		}
	}
	if isSet("ndjson") && *ndjson {
		b.WithOutputFormat(config.NDJSON)
	}
	if isSet("noboard") {
		b.WithBoard(!*noBoard)
	}
	if isSet("nomoves") {
		b.WithMoves(!*noMoves)
	}
}

func applyBatchFlags(b *config.ConfigBuilder, isSet func(string) bool) {
	if isSet("workers") {
		b.WithWorkers(*workers)
	}
	if isSet("perft") {
		b.WithPerftDepth(*perftDepth)
	}
	if isSet("D") {
		b.WithDuplicates(*detectDuplicates)
	}
	if isSet("exact") {
		b.WithExactDuplicates(*exactDuplicates)
	}
	if isSet("duplicate-capacity") {
		b.WithDuplicateCapacity(*duplicateCapacity)
	}
}

func applyREPLFlags(b *config.ConfigBuilder, isSet func(string) bool) {
	if isSet("prompt") {
		b.WithPrompt(*prompt)
	}
	if isSet("history") {
		b.WithHistoryFile(*historyFile)
	}
}

// flagWasSet reports whether name was given on the command line.
func flagWasSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
