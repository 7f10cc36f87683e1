package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SoySerhio507/Search-Filter/internal/api"
	"github.com/SoySerhio507/Search-Filter/internal/config"
	"github.com/SoySerhio507/Search-Filter/internal/suggest"
	"github.com/SoySerhio507/Search-Filter/internal/wordlist"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	wordsPath := flag.String("wordlist", "", "path to the word list (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *wordsPath != "" {
		cfg.Wordlist.Path = *wordsPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setupLogging(cfg.Log, *debug)

	listenAddr := cfg.Server.Addr()
	if *addr != "" {
		listenAddr = *addr
	}

	words, err := wordlist.Load(cfg.Wordlist.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Wordlist.Path).Msg("failed to load wordlist")
	}

	svc := suggest.NewService(log.Logger)
	svc.Load(words)

	server := api.NewServer(listenAddr, svc, log.Logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}

	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.LogConfig, debug bool) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
