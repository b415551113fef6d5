package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func InitLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("service", "clefmusic-api").
		Logger()
}
