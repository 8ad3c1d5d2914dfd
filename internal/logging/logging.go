package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes the zerolog.Logger shared by every mbsload subcommand.
// format "text" gets a human-friendly console writer; anything else emits
// structured JSON for log collectors.
func Setup(format string) zerolog.Logger {
	if format == "text" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
