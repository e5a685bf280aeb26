package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/nacbot/internal/config"
	"github.com/rocketscienceinc/nacbot/internal/console"
	"github.com/rocketscienceinc/nacbot/internal/engine"
	"github.com/rocketscienceinc/nacbot/internal/entity"
	"github.com/rocketscienceinc/nacbot/internal/pkg"
)

// main - plays one game against the bot in the terminal.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load("config.yml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout belongs to the board
	logger := pkg.NewLogger(os.Stderr, conf.LogLevel)

	humanMark, err := entity.ParseMark(conf.Console.HumanMark)
	if err != nil {
		return fmt.Errorf("console human mark: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot := engine.New(logger, engine.Options{
		Heuristics: conf.Engine.Heuristics,
		Workers:    conf.Engine.Workers,
	})

	loop := console.NewLoop(logger, bot, console.NewRenderer(os.Stdout, conf.Console.Color), os.Stdin, console.Options{
		HumanMark:   humanMark,
		Suggestions: conf.Console.Suggestions,
	})

	verdict, err := loop.Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	logger.Debug("game finished", "verdict", verdict.String())

	return nil
}
