package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Epitech-CI/Gomoku/config"
	"github.com/Epitech-CI/Gomoku/engine"
)

const usage = `gomoku brain - five-in-a-row move selection engine

The engine speaks a line-oriented protocol on stdin/stdout: the manager
sends one command per line (START, TURN, BEGIN, BOARD ... DONE, INFO,
ABOUT, END, ...) and the engine answers one line per command. All
diagnostics go to stderr.

usage:
  gomoku            run the protocol loop
  gomoku --help     show this message

configuration is read from an optional ./gomoku.yaml file and from
GOMOKU_* environment variables (search_depth, min_board_size,
turn_margin_ms, log_level, and the ABOUT identity fields).
`

func main() {
	if len(os.Args) > 1 {
		for _, arg := range os.Args[1:] {
			if arg == "--help" || arg == "-h" {
				fmt.Print(usage)
				return
			}
		}
		fmt.Fprintln(os.Stderr, "unrecognized arguments, try --help")
		os.Exit(1)
	}

	cfg, err := config.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the protocol; logging must stay on stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	switch cfg.LogLevel {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "disabled":
		logger = logger.Level(zerolog.Disabled)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	log.Logger = logger

	brain := engine.New(cfg, os.Stdout)
	if err := brain.Run(context.Background(), os.Stdin); err != nil {
		log.Error().Err(err).Msg("engine stopped with error")
		os.Exit(1)
	}
}
