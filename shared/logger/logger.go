package logger

import (
	"io"
	"os"
	"time"
	"tripseat/config"
	"tripseat/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up the global zerolog logger. Production writes JSON lines,
// everything else a console writer.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(Output(cfg, os.Stdout)).With().Str("service", cfg.App.Name).Logger()
	log.Trace().Msg("Zerolog initialized.")
}

// Output picks the writer for the configured environment.
func Output(cfg *config.Config, out io.Writer) io.Writer {
	if cfg.Server.Env == constant.ServerEnvProduction {
		return out
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
