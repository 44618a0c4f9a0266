package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"

	"github.com/kris27x/ElevatorControlSystem/internal/config"
	"github.com/kris27x/ElevatorControlSystem/internal/controller"
	"github.com/kris27x/ElevatorControlSystem/internal/httpapi"
	"github.com/kris27x/ElevatorControlSystem/internal/logging"
)

const instanceNameLen = 10

var Logger = logging.GetLogger()

func main() {
	configPath := flag.String("config", "elevatord.yaml", "Path to the yaml configuration file")
	addr := flag.String("addr", "", "Listen address, overrides the configuration file")
	name := flag.String("name", "", "Instance name, defaults to a random string")
	debug := flag.Bool("debug", false, "Force debug logging")
	flag.Parse()

	// .env is optional; when present its values feed the ELEVATORD_*
	// overrides below.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			Logger.Fatal().Err(err).Msg("loading configuration failed")
		}
		Logger.Warn().Str("path", *configPath).Msg("no configuration file, using defaults")
		cfg = config.Default()
	}
	if err := cfg.ApplyEnv(); err != nil {
		Logger.Fatal().Err(err).Msg("applying environment overrides failed")
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *name != "" {
		cfg.InstanceName = *name
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if cfg.InstanceName == "" {
		cfg.InstanceName = randomstring.EnglishFrequencyString(instanceNameLen)
		Logger.Warn().Msgf("no instance name provided, generated \"%v\"", cfg.InstanceName)
	}

	Logger.Info().
		Str("instance", cfg.InstanceName).
		Int("numberOfFloors", cfg.NumberOfFloors).
		Int("activeElevatorCount", cfg.ActiveElevatorCount).
		Msg("starting elevator dispatch daemon")

	ctrl, err := controller.New(cfg.Building(), *Logger)
	if err != nil {
		Logger.Fatal().Err(err).Msg("creating dispatch engine failed")
	}

	srv := httpapi.NewServer(ctrl, cfg.ListenAddr, cfg.InstanceName, *Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		Logger.Fatal().Err(err).Msg("http server failed")
	}
	Logger.Info().Msg("shutdown complete")
}
