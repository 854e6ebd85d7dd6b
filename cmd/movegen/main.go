// movegen generates and analyses chess moves for positions given in FEN.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/logging"
)

const programVersion = "0.1.0"

// App carries what every command needs.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "movegen: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg, flagWasSet)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "movegen: %v\n", err)
		os.Exit(2)
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "movegen: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	app := &App{cfg: cfg, log: log, stdin: os.Stdin, stdout: os.Stdout}
	err = app.Run(ctx, flag.Args())
	stop()

	_ = log.Sync()
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "movegen: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the defaults, or path's contents over them.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.Load(path)
}

// Run dispatches to the named command. With no arguments it starts the
// interactive shell.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.runREPL(ctx)
	}

	cmd, rest := args[0], args[1:]
	a.log.Debug("command", zap.String("name", cmd), zap.Strings("args", rest))

	switch cmd {
	case "show":
		return a.cmdShow(rest)
	case "moves":
		return a.cmdMoves(rest)
	case "pseudo":
		return a.cmdPseudo(rest)
	case "perft":
		return a.cmdPerft(rest)
	case "divide":
		return a.cmdDivide(rest)
	case "batch":
		return a.cmdBatch(ctx, rest)
	case "repl":
		return a.runREPL(ctx)
	}
	return fmt.Errorf("unknown command %q (try -h)", cmd)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options] [command] [args...]\n\n")
	fmt.Fprintf(os.Stderr, "Generates chess moves for positions given in FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  show [fen]            Print the board, legal moves and status\n")
	fmt.Fprintf(os.Stderr, "  moves [fen]           List legal moves in UCI notation\n")
	fmt.Fprintf(os.Stderr, "  pseudo [fen]          List pseudo-legal moves in generation order\n")
	fmt.Fprintf(os.Stderr, "  perft <depth> [fen]   Count leaf nodes to depth\n")
	fmt.Fprintf(os.Stderr, "  divide <depth> [fen]  Perft split by root move\n")
	fmt.Fprintf(os.Stderr, "  batch [files...]      Analyse one FEN per line (stdin if no files)\n")
	fmt.Fprintf(os.Stderr, "  repl                  Interactive shell (default)\n\n")
	fmt.Fprintf(os.Stderr, "A missing fen, or \"startpos\", means the initial position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
