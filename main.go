package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbomb79/Reel/internal"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/joho/godotenv"
)

var log = logger.Get("Bootstrap")

type flags struct {
	configPath string
	envPath    string
	logLevel   string
}

func parseFlags() flags {
	f := flags{}
	flag.StringVar(&f.configPath, "config", "./config.yaml", "path to the YAML configuration file (optional)")
	flag.StringVar(&f.envPath, "env", ".env", "path to a dotenv file to load before reading the environment (optional)")
	flag.StringVar(&f.logLevel, "log-level", "", "overrides the configured minimum log level")
	flag.Parse()

	return f
}

// main is the entry point to Reel: configuration is loaded from the
// YAML file and environment, and the services are run until an interrupt
// or termination signal is received.
func main() {
	opts := parseFlags()

	if err := godotenv.Load(opts.envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Emit(logger.WARNING, "Failed to load dotenv file %s: %v\n", opts.envPath, err)
	}

	config, err := internal.LoadConfig(opts.configPath)
	if err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	levelName := config.LogLevel
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	if level, err := logger.ParseLevel(levelName); err == nil {
		logger.SetMinLoggingLevel(level.Level())
	} else {
		log.Emit(logger.WARNING, "Ignoring unknown log level %q\n", levelName)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := internal.New(*config).Run(ctx); err != nil {
		log.Emit(logger.FATAL, "Reel stopped unexpectedly: %v\n", err)
		cancel()
		os.Exit(1)
	}

	log.Emit(logger.STOP, "Reel shutdown complete\n")
}
