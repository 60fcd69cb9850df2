package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"tripseat/config"
	"tripseat/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.App.Name = "tripseat"

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestOutput_ProductionWritesJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"

	var buf bytes.Buffer
	log.Logger = zerolog.New(logger.Output(cfg, &buf))

	log.Info().Str("bookingID", "b-1").Msg("deposit confirmed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "b-1", line["bookingID"])
	assert.Equal(t, "deposit confirmed", line["message"])
}

func TestOutput_DevelopmentUsesConsole(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "development"

	var buf bytes.Buffer

	_, isConsole := logger.Output(cfg, &buf).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("reserve failed"))

	assert.Contains(t, buf.String(), "reserve failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
		{name: "empty level defaults to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
