package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pga-swindle/internal/app/tracker"
	"pga-swindle/internal/config"
	"pga-swindle/internal/logging"
	"pga-swindle/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs one command and returns the process exit code, so deferred
// cleanup always runs before the process exits.
func realMain(args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "load .env: %v\n", err)
	}
	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	closer := logging.Init(cfg.Log)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Store.Backend).Msg("store init failed")
		return 1
	}
	defer st.Close()

	svc := tracker.NewService(cfg, st)
	if err := svc.Load(ctx); err != nil {
		if !errors.Is(err, tracker.ErrNoSavedData) {
			log.Error().Err(err).Msg("load snapshot failed")
			return 1
		}
		log.Info().Str("key", cfg.Store.Key).Msg("no saved data, starting empty")
	}

	if err := run(ctx, svc, args, stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
			return 2
		}
		log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
